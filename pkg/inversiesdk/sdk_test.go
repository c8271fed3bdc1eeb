package inversiesdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAmountsEncodeAsNumbers(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Potje{MonthlyBudget: decimal.RequireFromString("250.50")})
	require.NoError(t, err)
	require.Contains(t, string(b), `"monthlyBudget":250.5`)
	require.Contains(t, string(b), `"icon":null`)

	var p Potje
	require.NoError(t, json.Unmarshal([]byte(`{"monthlyBudget":12.34,"currentSpent":"1.5"}`), &p))
	require.Equal(t, "12.34", p.MonthlyBudget.String())
	require.Equal(t, "1.5", p.CurrentSpent.String())
}

func TestAPIErrorRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			ErrInvalidCredentials.WriteError(w)
		case "/api/potjes":
			if r.Header.Get("Authorization") != "Bearer tok" {
				ErrUnauthenticated.WriteError(w)
				return
			}
			ErrSessionInvalid.WriteError(w)
		default:
			http.Error(w, "nope", http.StatusBadGateway)
		}
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL + "/")
	ctx := context.Background()

	_, err := client.Login(ctx, "jan@test.nl", "0000")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, ErrorCodeInvalidCredentials, apiErr.Code)

	_, err = client.NewSession("tok").ListPotjes(ctx)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, ErrorCodeSessionInvalid, apiErr.Code)
	require.Contains(t, apiErr.Message, "Session")

	_, err = client.GetLiveness(ctx)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeInternal, apiErr.Code)
}

func TestTransactionQueryEncoding(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	s := NewSDKClient(srv.URL).NewSession("tok")
	list, err := s.ListTransactions(context.Background(), TransactionQuery{StartDate: "2025-03-01", Category: "Vrije tijd"})
	require.NoError(t, err)
	require.Empty(t, list)
	require.Equal(t, "category=Vrije+tijd&startDate=2025-03-01", gotQuery)
}
