package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"missing", "", "", false},
		{"basic scheme", "Basic abc", "", false},
		{"empty token", "Bearer   ", "", false},
		{"valid", "Bearer abc.def", "abc.def", true},
		{"case insensitive scheme", "bearer xyz", "xyz", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			token, ok := httpx.BearerToken(req)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.token, token)
		})
	}
}

func TestRequireAnyRole(t *testing.T) {
	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	h := httpx.RequireAnyRole(deny, "BEWINDVOERDER")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(httpx.ContextWithIdentity(req.Context(), "u1", "CLIENT")))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(httpx.ContextWithIdentity(req.Context(), "u2", "BEWINDVOERDER")))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Message string `json:"message"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, httpx.DecodeJSON(req, &body), "empty body is allowed")
	require.Empty(t, body.Message)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"Goed bezig!"}`))
	require.NoError(t, httpx.DecodeJSON(req, &body))
	require.Equal(t, "Goed bezig!", body.Message)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":`))
	require.Error(t, httpx.DecodeJSON(req, &body))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
