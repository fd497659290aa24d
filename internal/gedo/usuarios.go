package gedo

import (
	"context"
	"net/http"
	"strconv"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// UsuarioService is the user-administration façade.
type UsuarioService struct {
	t *transport.Client
}

// NovoUsuario is the user-creation form.
type NovoUsuario struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	ObraID   *int   `json:"obra_id,omitempty"`
}

func (s *UsuarioService) Listar(ctx context.Context) ([]User, error) {
	return fetch[[]User](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/users/",
	})
}

func (s *UsuarioService) Obter(ctx context.Context, id int) (User, error) {
	return fetch[User](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/users/" + strconv.Itoa(id),
	})
}

// Criar creates a user. Unlike the other admin routes this one answers
// with the bare user object, no envelope.
func (s *UsuarioService) Criar(ctx context.Context, novo NovoUsuario) (User, error) {
	return fetch[User](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/users/",
		Body:   novo,
	})
}

func (s *UsuarioService) Atualizar(ctx context.Context, id int, campos map[string]any) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   "/api/users/" + strconv.Itoa(id),
		Body:   campos,
	})
	return err
}

func (s *UsuarioService) Deletar(ctx context.Context, id int) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/api/users/" + strconv.Itoa(id),
	})
	return err
}
