package gedo

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// ImportacaoService is the batch-import façade: download the spreadsheet
// template, validate a filled spreadsheet, then finalize the batch.
type ImportacaoService struct {
	t *transport.Client
}

// LinhaImportacao is one validated spreadsheet row.
type LinhaImportacao struct {
	Linha          int      `json:"linha"`
	Titulo         string   `json:"titulo"`
	TipoRegistroID int      `json:"tipo_registro_id"`
	DataRegistro   string   `json:"data_registro"`
	CodigoNumero   string   `json:"codigo_numero"`
	Descricao      string   `json:"descricao"`
	ObraID         int      `json:"obra_id"`
	Erros          []string `json:"erros,omitempty"`
}

// ResultadoProcessamento is the validation report for an uploaded
// spreadsheet.
type ResultadoProcessamento struct {
	Message       string            `json:"message"`
	TotalLinhas   int               `json:"total_linhas"`
	LinhasValidas []LinhaImportacao `json:"linhas_validas"`
	LinhasComErro []LinhaImportacao `json:"linhas_com_erro"`
	PodeFinalizar bool              `json:"pode_finalizar"`
}

// ResultadoImportacao is the outcome of a finalized batch.
type ResultadoImportacao struct {
	Message          string   `json:"message"`
	RegistrosCriados int      `json:"registros_criados"`
	Erros            []string `json:"erros,omitempty"`
}

// DownloadTemplate fetches the import spreadsheet template (binary, 60s).
func (s *ImportacaoService) DownloadTemplate(ctx context.Context) (Anexo, error) {
	resp, err := s.t.Do(ctx, transport.Request{
		Method:  http.MethodGet,
		Path:    "/api/importacao/template",
		Timeout: 60 * time.Second,
	})
	if err != nil {
		return Anexo{}, err
	}
	return Anexo{
		Filename: resp.Filename("template_importacao_registros"),
		Data:     resp.Body,
	}, nil
}

// Processar uploads a filled spreadsheet for validation.
func (s *ImportacaoService) Processar(ctx context.Context, nome string, planilha io.Reader) (ResultadoProcessamento, error) {
	return fetch[ResultadoProcessamento](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/importacao/processar",
		Form: &transport.MultipartForm{
			FileField: "arquivo",
			FileName:  nome,
			File:      planilha,
		},
	})
}

// Finalizar creates the records from previously validated rows. Bulk
// creation gets the extended 120s deadline.
func (s *ImportacaoService) Finalizar(ctx context.Context, linhas []LinhaImportacao) (ResultadoImportacao, error) {
	return fetch[ResultadoImportacao](ctx, s.t, transport.Request{
		Method:  http.MethodPost,
		Path:    "/api/importacao/finalizar",
		Body:    map[string]any{"registros": linhas},
		Timeout: 120 * time.Second,
	})
}

// UploadAnexoTemp stages an attachment for a row before finalization.
func (s *ImportacaoService) UploadAnexoTemp(ctx context.Context, nome string, anexo io.Reader) (string, error) {
	type payload struct {
		CaminhoTemporario string `json:"caminho_temporario"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/importacao/upload-anexo",
		Form: &transport.MultipartForm{
			FileField: "anexo",
			FileName:  nome,
			File:      anexo,
		},
	})
	return p.CaminhoTemporario, err
}
