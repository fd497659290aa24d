// Package gedo exposes the GEDO backend as typed feature façades. Each
// façade method is one HTTP call through the shared transport; façades
// never retry and surface transport errors unchanged.
package gedo

import (
	"context"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// API bundles every façade over one shared transport, so all of them
// observe the same session.
type API struct {
	Auth           *AuthService
	Dashboard      *DashboardService
	Pesquisa       *PesquisaService
	Registros      *RegistroService
	Obras          *ObraService
	Usuarios       *UsuarioService
	TiposRegistro  *TipoRegistroService
	Classificacoes *ClassificacaoService
	Configuracoes  *ConfiguracaoService
	Workflow       *WorkflowService
	Importacao     *ImportacaoService
	Relatorios     *RelatorioService
}

// New builds the façade bundle on top of t.
func New(t *transport.Client) *API {
	return &API{
		Auth:           &AuthService{t: t},
		Dashboard:      &DashboardService{t: t},
		Pesquisa:       &PesquisaService{t: t},
		Registros:      &RegistroService{t: t},
		Obras:          &ObraService{t: t},
		Usuarios:       &UsuarioService{t: t},
		TiposRegistro:  &TipoRegistroService{t: t},
		Classificacoes: &ClassificacaoService{t: t},
		Configuracoes:  &ConfiguracaoService{t: t},
		Workflow:       &WorkflowService{t: t},
		Importacao:     &ImportacaoService{t: t},
		Relatorios:     &RelatorioService{t: t},
	}
}

// fetch issues req and decodes the JSON body into T. An empty body yields
// the zero value.
func fetch[T any](ctx context.Context, t *transport.Client, req transport.Request) (T, error) {
	var out T
	resp, err := t.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if len(resp.Body) == 0 {
		return out, nil
	}
	if err := resp.DecodeJSON(&out); err != nil {
		return out, err
	}
	return out, nil
}
