package gedo

import (
	"context"
	"net/http"
	"strconv"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// TipoRegistroService is the record-type façade.
type TipoRegistroService struct {
	t *transport.Client
}

type tiposPayload struct {
	TiposRegistro []TipoRegistro `json:"tipos_registro"`
}

// Listar returns the active record types.
func (s *TipoRegistroService) Listar(ctx context.Context) ([]TipoRegistro, error) {
	p, err := fetch[tiposPayload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/tipos-registro/",
	})
	return p.TiposRegistro, err
}

// ListarTodos returns every record type, inactive ones included.
func (s *TipoRegistroService) ListarTodos(ctx context.Context) ([]TipoRegistro, error) {
	p, err := fetch[tiposPayload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/tipos-registro/all",
	})
	return p.TiposRegistro, err
}

func (s *TipoRegistroService) Obter(ctx context.Context, id int) (TipoRegistro, error) {
	type payload struct {
		TipoRegistro TipoRegistro `json:"tipo_registro"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/tipos-registro/" + strconv.Itoa(id),
	})
	return p.TipoRegistro, err
}

func (s *TipoRegistroService) Criar(ctx context.Context, tipo TipoRegistro) (TipoRegistro, error) {
	type payload struct {
		TipoRegistro TipoRegistro `json:"tipo_registro"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/tipos-registro/",
		Body:   tipo,
	})
	return p.TipoRegistro, err
}

func (s *TipoRegistroService) Atualizar(ctx context.Context, id int, tipo TipoRegistro) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   "/api/tipos-registro/" + strconv.Itoa(id),
		Body:   tipo,
	})
	return err
}

func (s *TipoRegistroService) Deletar(ctx context.Context, id int) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/api/tipos-registro/" + strconv.Itoa(id),
	})
	return err
}
