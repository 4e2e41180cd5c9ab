package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const programName = "firefly_exporter"

type Exporter struct {
	reg     *prometheus.Registry
	metrics *metrics
}

func NewExporter() (*Exporter, error) {
	reg := prometheus.NewRegistry()

	metrics, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	err = register(reg,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		versioncollector.NewCollector(programName),
	)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		reg:     reg,
		metrics: metrics,
	}, nil
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(e.reg, promhttp.HandlerFor(e.reg, promhttp.HandlerOpts{
		Registry: e.reg,
	}))
}

// InstrumentRoundTripper wraps next so that every upstream API request is
// counted and timed.
func (e *Exporter) InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	m := e.metrics

	return promhttp.InstrumentRoundTripperInFlight(m.apiInFlight,
		promhttp.InstrumentRoundTripperCounter(m.apiRequests,
			promhttp.InstrumentRoundTripperDuration(m.apiRequestDuration, next),
		),
	)
}
