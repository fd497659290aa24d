package gedo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAnexoUsesDispositionFilename(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/registros/7/download", r.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="contrato.pdf"`)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	store.SetToken("jwt-xyz")

	anexo, err := api.Registros.DownloadAnexo(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "contrato.pdf", anexo.Filename)
	assert.Equal(t, []byte("%PDF-1.4 fake"), anexo.Data)
}

func TestDownloadAnexoFallbackFilename(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	store.SetToken("jwt-xyz")

	anexo, err := api.Registros.DownloadAnexo(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "anexo_7.pdf", anexo.Filename)
}

func TestCriarSendsMultipartWhenAnexoPresent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Medição agosto", r.FormValue("titulo"))
		assert.Equal(t, "3", r.FormValue("tipo_registro"))
		assert.Equal(t, "2", r.FormValue("obra_id"))

		file, header, err := r.FormFile("anexo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "medicao.xlsx", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"registro": {"id": 99, "titulo": "Medição agosto"}}`))
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	store.SetToken("jwt-xyz")

	reg, err := api.Registros.Criar(context.Background(), NovoRegistro{
		Titulo:         "Medição agosto",
		TipoRegistroID: 3,
		ObraID:         2,
		DataRegistro:   "2025-08-14",
		AnexoNome:      "medicao.xlsx",
		Anexo:          strings.NewReader("fake sheet"),
	})
	require.NoError(t, err)
	assert.Equal(t, 99, reg.ID)
}
