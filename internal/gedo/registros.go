package gedo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// RegistroService is the records façade.
type RegistroService struct {
	t *transport.Client
}

// NovoRegistro is the record-creation form. Anexo, when set, is uploaded
// as the multipart file part.
type NovoRegistro struct {
	Titulo                string
	Descricao             string
	TipoRegistroID        int
	ClassificacaoGrupo    string
	ClassificacaoSubgrupo string
	DataRegistro          string
	CodigoNumero          string
	ObraID                int

	AnexoNome string
	Anexo     io.Reader
}

func (n NovoRegistro) form() *transport.MultipartForm {
	fields := map[string]string{
		"titulo":        n.Titulo,
		"descricao":     n.Descricao,
		"tipo_registro": strconv.Itoa(n.TipoRegistroID),
		"data_registro": n.DataRegistro,
		"codigo_numero": n.CodigoNumero,
	}
	if n.ObraID > 0 {
		fields["obra_id"] = strconv.Itoa(n.ObraID)
	}
	if n.ClassificacaoGrupo != "" {
		fields["classificacao_grupo"] = n.ClassificacaoGrupo
	}
	if n.ClassificacaoSubgrupo != "" {
		fields["classificacao_subgrupo"] = n.ClassificacaoSubgrupo
	}
	form := &transport.MultipartForm{Fields: fields}
	if n.Anexo != nil {
		form.FileField = "anexo"
		form.FileName = n.AnexoNome
		form.File = n.Anexo
	}
	return form
}

// Listar returns records filtered and paginated like the search endpoint.
func (s *RegistroService) Listar(ctx context.Context, filtro Filtro) (ResultadoPesquisa, error) {
	return fetch[ResultadoPesquisa](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/registros/",
		Query:  filtro.query(),
	})
}

// Obter returns one record.
func (s *RegistroService) Obter(ctx context.Context, id int) (Registro, error) {
	type payload struct {
		Registro Registro `json:"registro"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/registros/" + strconv.Itoa(id),
	})
	return p.Registro, err
}

// Criar creates a record; the attachment (if any) rides along as
// multipart form data.
func (s *RegistroService) Criar(ctx context.Context, novo NovoRegistro) (Registro, error) {
	type payload struct {
		Registro Registro `json:"registro"`
	}
	p, err := fetch[payload](ctx, s.t, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/registros/",
		Form:   novo.form(),
	})
	return p.Registro, err
}

// Atualizar updates the editable fields of a record.
func (s *RegistroService) Atualizar(ctx context.Context, id int, campos map[string]any) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   "/api/registros/" + strconv.Itoa(id),
		Body:   campos,
	})
	return err
}

// Deletar removes a record.
func (s *RegistroService) Deletar(ctx context.Context, id int) error {
	_, err := s.t.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/api/registros/" + strconv.Itoa(id),
	})
	return err
}

// Anexo is a downloaded attachment.
type Anexo struct {
	Filename string
	Data     []byte
}

// DownloadAnexo fetches a record's attachment through the backend proxy.
// The filename comes from content-disposition when the backend sends one,
// falling back to anexo_<id> plus a content-type-derived extension.
// Downloads get the extended 60s deadline.
func (s *RegistroService) DownloadAnexo(ctx context.Context, id int) (Anexo, error) {
	resp, err := s.t.Do(ctx, transport.Request{
		Method:  http.MethodGet,
		Path:    "/api/registros/" + strconv.Itoa(id) + "/download",
		Timeout: 60 * time.Second,
	})
	if err != nil {
		return Anexo{}, err
	}
	return Anexo{
		Filename: resp.Filename(fmt.Sprintf("anexo_%d", id)),
		Data:     resp.Body,
	}, nil
}
