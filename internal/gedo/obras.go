package gedo

import (
	"context"
	"net/http"
	"strconv"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// ObraService is the works/sites façade.
type ObraService struct {
	t *transport.Client
}

func (s *ObraService) Listar(ctx context.Context) ([]Obra, error) {
	type payload struct {
		Obras []Obra `json:"obras"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/obras/",
	})
	return p.Obras, err
}

func (s *ObraService) Obter(ctx context.Context, id int) (Obra, error) {
	type payload struct {
		Obra Obra `json:"obra"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/obras/" + strconv.Itoa(id),
	})
	return p.Obra, err
}

func (s *ObraService) Criar(ctx context.Context, obra Obra) (Obra, error) {
	type payload struct {
		Obra Obra `json:"obra"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/obras/",
		Body:   obra,
	})
	return p.Obra, err
}

func (s *ObraService) Atualizar(ctx context.Context, id int, obra Obra) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   "/api/obras/" + strconv.Itoa(id),
		Body:   obra,
	})
	return err
}

func (s *ObraService) Deletar(ctx context.Context, id int) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/api/obras/" + strconv.Itoa(id),
	})
	return err
}
