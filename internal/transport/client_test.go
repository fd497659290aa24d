package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(ts *httptest.Server, store session.Store, onExpired func()) *Client {
	return New(Config{
		BaseURL:          ts.URL,
		Store:            store,
		OnSessionExpired: onExpired,
	})
}

func TestBearerAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	store := session.NewMemStore()
	if err := store.SetToken("tok-123"); err != nil {
		t.Fatal(err)
	}
	c := newTestClient(ts, store, nil)

	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestNoCredentialAfterClear(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	store := session.NewMemStore()
	store.SetToken("tok-123")
	store.Clear()
	c := newTestClient(ts, store, nil)

	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestSetTokenVisibleToImmediateCall(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	store := session.NewMemStore()
	c := newTestClient(ts, store, nil)

	store.SetToken("first")
	c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	store.SetToken("second")
	c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})

	want := []string{"Bearer first", "Bearer second"}
	for i, w := range want {
		if seen[i] != w {
			t.Errorf("request %d Authorization = %q, want %q", i, seen[i], w)
		}
	}
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Token expirado"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	var expired atomic.Int32
	store := session.NewMemStore()
	store.SetToken("stale")
	c := newTestClient(ts, store, func() { expired.Add(1) })

	// Two concurrent authenticated calls both receive 401.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
			var httpErr *HTTPError
			if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnauthorized {
				t.Errorf("expected 401 HTTPError, got %v", err)
			}
		}()
	}
	wg.Wait()

	if n := expired.Load(); n != 1 {
		t.Errorf("session-expired callback fired %d times, want 1", n)
	}
	if _, ok := store.Token(); ok {
		t.Error("token still present after 401")
	}

	// A later 401 with the session already cleared must be a plain error,
	// no second callback.
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}); err == nil {
		t.Error("expected error")
	}
	if n := expired.Load(); n != 1 {
		t.Errorf("callback fired %d times after post-clear 401, want 1", n)
	}
}

func TestUnauthorizedLoginKeepsExistingSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Credenciais inválidas"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	var expired atomic.Int32
	store := session.NewMemStore()
	store.SetToken("valid-session")
	c := newTestClient(ts, store, func() { expired.Add(1) })

	// A rejected re-login while a session is active is a credentials
	// failure; the active session must survive it.
	_, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/api/auth/login"})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}

	if tok, ok := store.Token(); !ok || tok != "valid-session" {
		t.Errorf("Token() = %q, %v; the session must survive a failed login", tok, ok)
	}
	if expired.Load() != 0 {
		t.Error("failed login must not fire the session-expired callback")
	}
}

func TestUnauthorizedOnAnonymousRequestKeepsQuiet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Credenciais inválidas"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	var expired atomic.Int32
	c := newTestClient(ts, session.NewMemStore(), func() { expired.Add(1) })

	_, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/api/auth/login"})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Message != "Credenciais inválidas" {
		t.Errorf("Message = %q", httpErr.Message)
	}
	if expired.Load() != 0 {
		t.Error("failed login must not fire the session-expired callback")
	}
}

func TestTimeoutError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestClient(ts, session.NewMemStore(), nil)

	_, err := c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/slow",
		Timeout: 30 * time.Millisecond,
	})
	var toErr *TimeoutError
	if !errors.As(err, &toErr) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
}

func TestNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	c := newTestClient(ts, session.NewMemStore(), nil)

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestHTTPErrorCarriesBackendMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusForbidden, `{"message": "Acesso negado"}`, "Acesso negado"},
		{"error field", http.StatusInternalServerError, `{"error": "Erro interno do servidor"}`, "Erro interno do servidor"},
		{"non-json body", http.StatusBadGateway, `upstream down`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			}))
			defer ts.Close()

			c := newTestClient(ts, session.NewMemStore(), nil)
			_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", httpErr.Status, tt.status)
			}
			if httpErr.Message != tt.message {
				t.Errorf("Message = %q, want %q", httpErr.Message, tt.message)
			}
		})
	}
}

func TestMultipartUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("titulo"); got != "Contrato Principal" {
			t.Errorf("titulo = %q", got)
		}
		file, header, err := r.FormFile("anexo")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "contrato.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestClient(ts, session.NewMemStore(), nil)
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/api/registros/",
		Form: &MultipartForm{
			Fields:    map[string]string{"titulo": "Contrato Principal"},
			FileField: "anexo",
			FileName:  "contrato.pdf",
			File:      strings.NewReader("%PDF-1.4 fake"),
		},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"total_registros": 42})
	}))
	defer ts.Close()

	c := newTestClient(ts, session.NewMemStore(), nil)
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	var payload struct {
		Total int `json:"total_registros"`
	}
	if err := resp.DecodeJSON(&payload); err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if payload.Total != 42 {
		t.Errorf("Total = %d, want 42", payload.Total)
	}
}
