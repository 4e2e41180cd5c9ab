package firefly

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khmm12/firefly-exporter/internal/ports"
)

func TestClient_SendsBearerTokenAndAcceptHeader(t *testing.T) {
	var got *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		writeJSON(w, http.StatusOK, `{"meta":{"pagination":{"total":3,"current_page":1,"total_pages":1}}}`)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	total, err := client.CountBills(t.Context())
	require.NoError(t, err)
	require.Equal(t, 3, total)

	require.NotNil(t, got)
	require.Equal(t, "/api/v1/bills", got.URL.Path)
	require.Equal(t, "Bearer secret-token", got.Header.Get("Authorization"))
	require.Equal(t, "application/vnd.api+json", got.Header.Get("Accept"))
	require.Equal(t, "firefly-exporter/test", got.Header.Get("User-Agent"))
}

func TestClient_CountTransactions_ZeroTotalIsReported(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/transactions": `{"data":[],"meta":{"pagination":{"total":0,"current_page":1,"total_pages":1}}}`,
	})

	client := newTestClient(t, srv.URL)

	total, err := client.CountTransactions(t.Context(), ports.DateRange{})
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestClient_CountAccountTransactions_SendsDateRange(t *testing.T) {
	var query string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/42/transactions", r.URL.Path)
		query = r.URL.RawQuery
		writeJSON(w, http.StatusOK, `{"meta":{"pagination":{"total":7}}}`)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)
	day := time.Date(2024, time.March, 5, 13, 0, 0, 0, time.UTC)

	total, err := client.CountAccountTransactions(t.Context(), "42", ports.Day(day))
	require.NoError(t, err)
	require.Equal(t, 7, total)
	require.Equal(t, "end=2024-03-05&start=2024-03-05", query)

	_, err = client.CountAccountTransactions(t.Context(), "42", ports.DateRange{})
	require.NoError(t, err)
	require.Empty(t, query)
}

func TestClient_CountCategoryTransactions(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/categories/9/transactions": `{"meta":{"pagination":{"total":12}}}`,
	})

	client := newTestClient(t, srv.URL)

	total, err := client.CountCategoryTransactions(t.Context(), "9", ports.DateRange{})
	require.NoError(t, err)
	require.Equal(t, 12, total)
}

func TestClient_ListAccounts_FollowsPagesAndDropsOtherTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts", r.URL.Path)
		assert.Equal(t, "asset", r.URL.Query().Get("type"))

		switch r.URL.Query().Get("page") {
		case "":
			writeJSON(w, http.StatusOK, `{
				"data":[
					{"id":"1","attributes":{"name":"Checking","type":"asset","current_balance":"100.50"}},
					{"id":"2","attributes":{"name":"Shop","type":"expense","current_balance":"0"}}
				],
				"meta":{"pagination":{"total":3,"current_page":1,"total_pages":2}}
			}`)
		case "2":
			writeJSON(w, http.StatusOK, `{
				"data":[{"id":"3","attributes":{"name":"Savings","type":"asset","current_balance":-20}}],
				"meta":{"pagination":{"total":3,"current_page":2,"total_pages":2}}
			}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	accounts, total, err := client.ListAccounts(t.Context(), ports.AccountTypeAsset)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, []ports.Account{
		{ID: "1", Name: "Checking", Type: "asset", CurrentBalance: 100.50},
		{ID: "3", Name: "Savings", Type: "asset", CurrentBalance: -20},
	}, accounts)
}

func TestClient_GetAccount_ParsesNegativeBalance(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/accounts/A2": `{"data":{"id":"A2","attributes":{"name":"Card","type":"asset","current_balance":"-20.00"}}}`,
	})

	client := newTestClient(t, srv.URL)

	account, err := client.GetAccount(t.Context(), "A2")
	require.NoError(t, err)
	require.Equal(t, ports.Account{ID: "A2", Name: "Card", Type: "asset", CurrentBalance: -20}, account)
}

func TestClient_GetAccount_MissingBalanceIsMalformed(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/accounts/A1": `{"data":{"id":"A1","attributes":{"name":"Card","type":"asset","current_balance":null}}}`,
	})

	client := newTestClient(t, srv.URL)

	_, err := client.GetAccount(t.Context(), "A1")

	var malformed *ports.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "/accounts/A1", malformed.Endpoint)
}

func TestClient_PiggyBanks(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/piggy_banks": `{
			"data":[
				{"id":"P1","attributes":{"name":"Holiday","target_amount":"500","current_amount":"125"}},
				{"id":"P2","attributes":{"name":"Rainy day","target_amount":null,"current_amount":"10.25"}}
			],
			"meta":{"pagination":{"total":2,"current_page":1,"total_pages":1}}
		}`,
		"/api/v1/piggy_banks/P1": `{"data":{"id":"P1","attributes":{"name":"Holiday","target_amount":"500","current_amount":"125"}}}`,
		"/api/v1/piggy_banks/P2": `{"data":{"id":"P2","attributes":{"name":"Rainy day","target_amount":null,"current_amount":"10.25"}}}`,
	})

	client := newTestClient(t, srv.URL)

	piggyBanks, total, err := client.ListPiggyBanks(t.Context())
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, piggyBanks, 2)

	p1, err := client.GetPiggyBank(t.Context(), "P1")
	require.NoError(t, err)
	require.NotNil(t, p1.TargetAmount)
	require.InDelta(t, 500.0, *p1.TargetAmount, 0.001)
	require.InDelta(t, 125.0, p1.CurrentAmount, 0.001)

	p2, err := client.GetPiggyBank(t.Context(), "P2")
	require.NoError(t, err)
	require.Nil(t, p2.TargetAmount)
	require.InDelta(t, 10.25, p2.CurrentAmount, 0.001)
}

func TestClient_ListCategories(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/categories": `{
			"data":[{"id":"5","attributes":{"name":"Groceries"}}],
			"meta":{"pagination":{"total":1,"current_page":1,"total_pages":1}}
		}`,
	})

	client := newTestClient(t, srv.URL)

	categories, total, err := client.ListCategories(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, []ports.Category{{ID: "5", Name: "Groceries"}}, categories)
}

func TestClient_About(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/about": `{"data":{"version":"6.1.0","api_version":"2.1.0","php_version":"8.3.4","os":"Linux","driver":"mysql"}}`,
	})

	client := newTestClient(t, srv.URL)

	info, err := client.About(t.Context())
	require.NoError(t, err)
	require.Equal(t, ports.SystemInfo{
		Version:    "6.1.0",
		APIVersion: "2.1.0",
		PHPVersion: "8.3.4",
		OS:         "Linux",
		Driver:     "mysql",
	}, info)
}

func TestClient_NonJSONBodyIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	_, err := client.CountTransactions(t.Context(), ports.DateRange{})

	var malformed *ports.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "/transactions", malformed.Endpoint)
	require.ErrorContains(t, err, "status 502")
}

func TestClient_NonSuccessJSONBodyIsDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"meta":{"pagination":{"total":4}}}`)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	total, err := client.CountBills(t.Context())
	require.NoError(t, err)
	require.Equal(t, 4, total)
}

func TestClient_MissingPaginationIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Unauthenticated."}`)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)

	_, err := client.CountTransactions(t.Context(), ports.DateRange{})

	var malformed *ports.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	require.ErrorContains(t, err, "missing meta.pagination")
}

func TestClient_ConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := newTestClient(t, url)

	_, err := client.CountBills(t.Context())

	var transport *ports.TransportError
	require.ErrorAs(t, err, &transport)
	require.Equal(t, "/bills", transport.Endpoint)
}

func TestClient_TimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client, err := New(discardLogger(), Config{
		BaseURL: srv.URL,
		Token:   "secret-token",
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	_, err = client.CountBills(t.Context())

	var transport *ports.TransportError
	require.ErrorAs(t, err, &transport)
}

func TestClient_TLSVerification(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"meta":{"pagination":{"total":1}}}`)
	}))
	t.Cleanup(srv.Close)

	verifying, err := New(discardLogger(), Config{
		BaseURL:   srv.URL,
		Token:     "secret-token",
		VerifyTLS: true,
		Timeout:   time.Second,
	})
	require.NoError(t, err)

	_, err = verifying.CountBills(t.Context())

	var transport *ports.TransportError
	require.ErrorAs(t, err, &transport)

	insecure, err := New(discardLogger(), Config{
		BaseURL:   srv.URL,
		Token:     "secret-token",
		VerifyTLS: false,
		Timeout:   time.Second,
	})
	require.NoError(t, err)

	total, err := insecure.CountBills(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, total)
}

func TestClient_BaseURLWithPathPrefix(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/firefly/api/v1/bills": `{"meta":{"pagination":{"total":2}}}`,
	})

	client := newTestClient(t, srv.URL+"/firefly/")
	require.Equal(t, srv.URL+"/firefly", client.BaseURL())

	total, err := client.CountBills(t.Context())
	require.NoError(t, err)
	require.Equal(t, 2, total)
}

func TestClient_TransportWrapperIsApplied(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/bills": `{"meta":{"pagination":{"total":2}}}`,
	})

	var calls int

	client, err := New(discardLogger(), testConfig(srv.URL), WithTransportWrapper(func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			calls++
			return next.RoundTrip(r)
		})
	}))
	require.NoError(t, err)

	_, err = client.CountBills(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestClient_CanceledContextIsTransportError(t *testing.T) {
	srv := newRoutedServer(t, map[string]string{
		"/api/v1/bills": `{"meta":{"pagination":{"total":2}}}`,
	})

	cfg := testConfig(srv.URL)
	cfg.RateLimit = 1

	client, err := New(discardLogger(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = client.CountBills(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(discardLogger(), Config{Token: "x", Timeout: time.Second})

	var cfgErr *ports.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "base url", cfgErr.Field)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newRoutedServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			writeJSON(w, http.StatusNotFound, `{"message":"Resource not found"}`)
			return
		}

		writeJSON(w, http.StatusOK, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(discardLogger(), testConfig(baseURL))
	require.NoError(t, err)

	return client
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		Token:     "secret-token",
		VerifyTLS: true,
		Timeout:   5 * time.Second,
		UserAgent: "firefly-exporter/test",
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
