package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics bundles the meter provider with the HTTP handler that exposes the
// Prometheus scrape endpoint.
type Metrics struct {
	Provider *sdkmetric.MeterProvider
	Handler  http.Handler
}

// InitMetrics initializes the Prometheus metrics exporter and returns a
// Metrics handle. Callers obtain instrument scopes via Meter.
func InitMetrics() (*Metrics, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return &Metrics{
		Provider: provider,
		Handler:  promhttp.Handler(),
	}, nil
}

// Meter returns a named instrument scope from the provider.
func (m *Metrics) Meter(name string) metric.Meter {
	return m.Provider.Meter(name)
}
