package prometheus

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/khmm12/firefly-exporter/internal/ports"
)

func TestExporter_HandlerServesTextExposition(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	require.NoError(t, publisher.PublishAccountBalance(ctx, ports.Account{ID: "A1", Name: "Checking"}, 100.50))
	require.NoError(t, publisher.PublishAccountBalance(ctx, ports.Account{ID: "A2", Name: "Savings"}, -20))
	require.NoError(t, publisher.PublishResourceTotal(ctx, ports.ResourceTransactions, 0))

	rec := httptest.NewRecorder()
	exporter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `firefly_account_current_balance{account_id="A1",account_name="Checking",baseurl="https://firefly.example.com"} 100.5`)
	require.Contains(t, body, `firefly_account_current_balance{account_id="A2",account_name="Savings",baseurl="https://firefly.example.com"} -20`)
	require.Contains(t, body, `firefly_transactions_count{baseurl="https://firefly.example.com"} 0`)
	require.Contains(t, body, "firefly_exporter_build_info")
	require.Contains(t, body, "go_goroutines")
}

func TestExporter_InstrumentRoundTripperCountsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	exporter, err := NewExporter()
	require.NoError(t, err)

	client := &http.Client{Transport: exporter.InstrumentRoundTripper(http.DefaultTransport)}

	for range 2 {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}

	m := exporter.metrics

	require.InDelta(t, 2.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("200", "get")), 0.001)
	require.InDelta(t, 0.0, testutil.ToFloat64(m.apiInFlight), 0.001)
	require.Equal(t, 1, testutil.CollectAndCount(m.apiRequestDuration))
}
