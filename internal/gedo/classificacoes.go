package gedo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// ClassificacaoService is the classification façade. Grupos and Subgrupos
// back the cascading selects (group → subgroup) of the record form.
type ClassificacaoService struct {
	t *transport.Client
}

// ClassificacaoResumo is one leaf of the classification tree.
type ClassificacaoResumo struct {
	ID       int    `json:"id"`
	Subgrupo string `json:"subgrupo"`
}

// ArvoreClassificacoes is the active classifications organized as
// grupo → subgrupo → entries.
type ArvoreClassificacoes map[string]map[string][]ClassificacaoResumo

// Listar returns the full classification tree.
func (s *ClassificacaoService) Listar(ctx context.Context) (ArvoreClassificacoes, error) {
	type payload struct {
		Classificacoes ArvoreClassificacoes `json:"classificacoes"`
		Total          int                  `json:"total"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/classificacoes/",
	})
	return p.Classificacoes, err
}

// Grupos returns the distinct classification groups.
func (s *ClassificacaoService) Grupos(ctx context.Context) ([]string, error) {
	type payload struct {
		Grupos []string `json:"grupos"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/classificacoes/grupos",
	})
	return p.Grupos, err
}

// Subgrupos returns the subgroups of one group.
func (s *ClassificacaoService) Subgrupos(ctx context.Context, grupo string) ([]string, error) {
	type payload struct {
		Subgrupos []string `json:"subgrupos"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/classificacoes/subgrupos/" + url.PathEscape(grupo),
	})
	return p.Subgrupos, err
}

func (s *ClassificacaoService) Criar(ctx context.Context, c Classificacao) (Classificacao, error) {
	type payload struct {
		Classificacao Classificacao `json:"classificacao"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/classificacoes/",
		Body:   c,
	})
	return p.Classificacao, err
}

func (s *ClassificacaoService) Atualizar(ctx context.Context, id int, c Classificacao) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   "/api/classificacoes/" + strconv.Itoa(id),
		Body:   c,
	})
	return err
}

func (s *ClassificacaoService) Deletar(ctx context.Context, id int) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/api/classificacoes/" + strconv.Itoa(id),
	})
	return err
}
