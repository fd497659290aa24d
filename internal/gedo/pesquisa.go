package gedo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// Filtro carries the advanced-search criteria. Zero values mean "not
// filtered". Dates use YYYY-MM-DD, as the backend expects.
type Filtro struct {
	Texto              string `json:"q,omitempty"`
	ObraID             int    `json:"obra_id,omitempty"`
	TipoRegistroID     int    `json:"tipo_registro_id,omitempty"`
	Autor              int    `json:"autor_id,omitempty"`
	DataInicio         string `json:"data_inicio,omitempty"`
	DataFim            string `json:"data_fim,omitempty"`
	DataRegistroInicio string `json:"data_registro_inicio,omitempty"`
	DataRegistroFim    string `json:"data_registro_fim,omitempty"`
	Ordenacao          string `json:"ordenacao,omitempty"`
	Page               int    `json:"page,omitempty"`
	PerPage            int    `json:"per_page,omitempty"`
}

func (f Filtro) query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	setInt := func(key string, value int) {
		if value > 0 {
			q.Set(key, strconv.Itoa(value))
		}
	}
	set("q", f.Texto)
	setInt("obra_id", f.ObraID)
	setInt("tipo_registro_id", f.TipoRegistroID)
	setInt("autor_id", f.Autor)
	set("data_inicio", f.DataInicio)
	set("data_fim", f.DataFim)
	set("data_registro_inicio", f.DataRegistroInicio)
	set("data_registro_fim", f.DataRegistroFim)
	set("ordenacao", f.Ordenacao)
	setInt("page", f.Page)
	setInt("per_page", f.PerPage)
	return q
}

// PesquisaService is the advanced-search façade.
type PesquisaService struct {
	t *transport.Client
}

// Filtros returns the metadata that populates the search filters.
func (s *PesquisaService) Filtros(ctx context.Context) (FiltrosDisponiveis, error) {
	return fetch[FiltrosDisponiveis](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/pesquisa/filtros",
	})
}

// Pesquisar runs a paginated search with the given criteria.
func (s *PesquisaService) Pesquisar(ctx context.Context, filtro Filtro) (ResultadoPesquisa, error) {
	return fetch[ResultadoPesquisa](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/pesquisa/",
		Query:  filtro.query(),
	})
}

// Visualizar returns the full detail of one search hit.
func (s *PesquisaService) Visualizar(ctx context.Context, id int) (Registro, error) {
	type payload struct {
		Registro Registro `json:"registro"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/pesquisa/" + strconv.Itoa(id) + "/visualizar",
	})
	return p.Registro, err
}

// Exportar downloads the current result set as a spreadsheet. Exports get
// the extended 60s deadline.
func (s *PesquisaService) Exportar(ctx context.Context, filtro Filtro) (*transport.Response, error) {
	return s.t.Do(ctx, transport.Request{
		Method:  http.MethodPost,
		Path:    "/api/pesquisa/exportar",
		Body:    filtro,
		Timeout: 60 * time.Second,
	})
}
