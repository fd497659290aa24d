package gedo

import (
	"context"
	"net/http"
	"strconv"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// WorkflowService configures the notification workflows (which record
// types trigger which e-mails, per obra).
type WorkflowService struct {
	t *transport.Client
}

// NovoWorkflow is the workflow create/update form.
type NovoWorkflow struct {
	ObraID             int      `json:"obra_id"`
	Nome               string   `json:"nome"`
	Descricao          string   `json:"descricao,omitempty"`
	ResponsaveisEmails []string `json:"responsaveis_emails"`
	TiposRegistroIDs   []int    `json:"tipos_registro_ids"`
	AssuntoEmail       string   `json:"assunto_email,omitempty"`
	TemplateEmail      string   `json:"template_email,omitempty"`
	Ativo              bool     `json:"ativo"`
	NotificarCriacao   bool     `json:"notificar_criacao"`
	NotificarEdicao    bool     `json:"notificar_edicao"`
	NotificarExclusao  bool     `json:"notificar_exclusao"`
}

// DadosAuxiliares feeds the workflow form's selects.
type DadosAuxiliares struct {
	Obras         []Obra         `json:"obras"`
	TiposRegistro []TipoRegistro `json:"tipos_registro"`
}

func (s *WorkflowService) Listar(ctx context.Context) ([]Workflow, error) {
	type payload struct {
		Workflows []Workflow `json:"workflows"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/workflow/",
	})
	return p.Workflows, err
}

// ListarPorObra returns the workflows configured for one obra.
func (s *WorkflowService) ListarPorObra(ctx context.Context, obraID int) ([]Workflow, error) {
	type payload struct {
		Workflows []Workflow `json:"workflows"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/workflow/obra/" + strconv.Itoa(obraID),
	})
	return p.Workflows, err
}

func (s *WorkflowService) Criar(ctx context.Context, novo NovoWorkflow) (Workflow, error) {
	type payload struct {
		Workflow Workflow `json:"workflow"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/workflow/",
		Body:   novo,
	})
	return p.Workflow, err
}

func (s *WorkflowService) Atualizar(ctx context.Context, id int, novo NovoWorkflow) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   "/api/workflow/" + strconv.Itoa(id),
		Body:   novo,
	})
	return err
}

func (s *WorkflowService) Deletar(ctx context.Context, id int) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/api/workflow/" + strconv.Itoa(id),
	})
	return err
}

// DadosAuxiliares returns the obras and record types available to the
// workflow form.
func (s *WorkflowService) DadosAuxiliares(ctx context.Context) (DadosAuxiliares, error) {
	return fetch[DadosAuxiliares](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/workflow/dados-auxiliares",
	})
}

// Testar sends a test notification through one workflow.
func (s *WorkflowService) Testar(ctx context.Context, id int) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/workflow/" + strconv.Itoa(id) + "/testar",
	})
	return err
}
