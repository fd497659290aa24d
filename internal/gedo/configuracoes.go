package gedo

import (
	"context"
	"net/http"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// ConfiguracaoService is the settings façade.
type ConfiguracaoService struct {
	t *transport.Client
}

// Listar returns the settings grouped by category, filtered server-side by
// the caller's role.
func (s *ConfiguracaoService) Listar(ctx context.Context) (Configuracoes, error) {
	return fetch[Configuracoes](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/configuracoes/",
	})
}

// Atualizar saves changed settings as a chave→valor map.
func (s *ConfiguracaoService) Atualizar(ctx context.Context, valores map[string]any) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   "/api/configuracoes/",
		Body:   map[string]any{"configuracoes": valores},
	})
	return err
}

// Backup asks the backend to snapshot the current settings.
func (s *ConfiguracaoService) Backup(ctx context.Context) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/configuracoes/backup",
	})
	return err
}

// Reset restores the default settings.
func (s *ConfiguracaoService) Reset(ctx context.Context) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/configuracoes/reset",
	})
	return err
}
