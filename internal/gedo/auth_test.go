package gedo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/session"
	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

// newTestAPI wires an API bundle against ts with a fresh in-memory
// session store.
func newTestAPI(ts *httptest.Server) (*API, *session.MemStore) {
	store := session.NewMemStore()
	client := transport.New(transport.Config{
		BaseURL: ts.URL,
		Store:   store,
	})
	return New(client), store
}

func TestLoginStoresToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "admin@gedo.com", creds["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Login realizado com sucesso",
			"token":   "jwt-xyz",
			"user": map[string]any{
				"id":       1,
				"username": "admin",
				"email":    "admin@gedo.com",
				"role":     "administrador",
			},
			"warning": "Você deve alterar sua senha para continuar.",
		})
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	result, err := api.Auth.Login(context.Background(), "admin@gedo.com", "s3nha")
	require.NoError(t, err)

	assert.Equal(t, "jwt-xyz", result.Token)
	assert.Equal(t, "admin", result.User.Username)
	assert.NotEmpty(t, result.Warning)

	tok, ok := store.Token()
	require.True(t, ok, "login must store the token")
	assert.Equal(t, "jwt-xyz", tok)
}

func TestLoginRejectedLeavesStoreUntouched(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Credenciais inválidas"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	_, err := api.Auth.Login(context.Background(), "admin@gedo.com", "errada")

	var httpErr *transport.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Credenciais inválidas", httpErr.Message)

	_, ok := store.Token()
	assert.False(t, ok, "a rejected login must not store a token")
}

func TestRejectedReloginKeepsCurrentSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Credenciais inválidas"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	store.SetToken("jwt-atual")

	_, err := api.Auth.Login(context.Background(), "admin@gedo.com", "errada")
	require.Error(t, err)

	tok, ok := store.Token()
	require.True(t, ok, "the active session must survive a failed re-login")
	assert.Equal(t, "jwt-atual", tok)
}

func TestLogoutClearsEvenWhenBackendFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Erro interno do servidor"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	store.SetToken("jwt-xyz")

	err := api.Auth.Logout(context.Background())
	require.Error(t, err, "the backend failure still surfaces")

	_, ok := store.Token()
	assert.False(t, ok, "the local session must be gone regardless")
}

func TestMe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-xyz", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{
				"id":       7,
				"username": "maria",
				"email":    "maria@gedo.com",
				"role":     "usuario_padrao",
			},
		})
	}))
	defer ts.Close()

	api, store := newTestAPI(ts)
	store.SetToken("jwt-xyz")

	user, err := api.Auth.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "maria", user.Username)
}
