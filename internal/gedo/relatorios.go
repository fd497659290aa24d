package gedo

import (
	"context"
	"time"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// RelatorioService is the reports façade. Reports are exports of the
// search result set; the service wraps the export endpoint and derives a
// dated default filename the way the reports screen did.
type RelatorioService struct {
	t *transport.Client
}

// Exportar generates a report for the given criteria (binary, 60s).
func (s *RelatorioService) Exportar(ctx context.Context, filtro Filtro) (Anexo, error) {
	resp, err := (&PesquisaService{t: s.t}).Exportar(ctx, filtro)
	if err != nil {
		return Anexo{}, err
	}
	fallback := "relatorio_" + time.Now().Format("20060102")
	return Anexo{
		Filename: resp.Filename(fallback),
		Data:     resp.Body,
	}, nil
}
