package gedo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// DashboardService serves the dashboard panels. Panels are independent
// calls; Resumo fetches them in parallel and degrades per panel.
type DashboardService struct {
	t *transport.Client
}

// obraQuery builds the optional obra_id filter shared by all panels. Zero
// means "todas" (no filter).
func obraQuery(obraID int) url.Values {
	q := url.Values{}
	if obraID > 0 {
		q.Set("obra_id", strconv.Itoa(obraID))
	}
	return q
}

// Estatisticas returns the headline counters.
func (s *DashboardService) Estatisticas(ctx context.Context, obraID int) (Estatisticas, error) {
	return fetch[Estatisticas](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/dashboard/estatisticas",
		Query:  obraQuery(obraID),
	})
}

// AtividadesRecentes returns the latest limit activity entries.
func (s *DashboardService) AtividadesRecentes(ctx context.Context, limit, obraID int) ([]Atividade, error) {
	q := obraQuery(obraID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return fetch[[]Atividade](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/dashboard/atividades-recentes",
		Query:  q,
	})
}

// Timeline returns the per-day record counts over the last dias days.
func (s *DashboardService) Timeline(ctx context.Context, dias, obraID int) ([]TimelinePonto, error) {
	q := obraQuery(obraID)
	if dias > 0 {
		q.Set("dias", strconv.Itoa(dias))
	}
	return fetch[[]TimelinePonto](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/dashboard/timeline",
		Query:  q,
	})
}

// TopTiposRegistro returns the record-type distribution.
func (s *DashboardService) TopTiposRegistro(ctx context.Context, obraID int) ([]TopTipo, error) {
	return fetch[[]TopTipo](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/dashboard/top-tipos-registro",
		Query:  obraQuery(obraID),
	})
}

// Resumo is the aggregated dashboard view.
type Resumo struct {
	Estatisticas Estatisticas
	Atividades   []Atividade
	Timeline     []TimelinePonto
	TopTipos     []TopTipo
}

// Resumo loads all panels in parallel. A panel that fails keeps its zero
// value and the rest of the dashboard still renders; the aggregate call
// itself only fails when the context is cancelled.
func (s *DashboardService) Resumo(ctx context.Context, obraID int) (Resumo, error) {
	var out Resumo

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if v, err := s.Estatisticas(gctx, obraID); err == nil {
			out.Estatisticas = v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := s.AtividadesRecentes(gctx, 10, obraID); err == nil {
			out.Atividades = v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := s.Timeline(gctx, 30, obraID); err == nil {
			out.Timeline = v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := s.TopTiposRegistro(gctx, obraID); err == nil {
			out.TopTipos = v
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, ctx.Err()
}
