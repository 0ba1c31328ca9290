package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns its own registry so the default one stays clean.
// All methods are nil-safe: a nil collector disables instrumentation.
type Collector struct {
	reg *prometheus.Registry

	WeatherLookups *prometheus.CounterVec // endpoint label: forecast|archive
	WeatherErrors  prometheus.Counter
	Exports        *prometheus.CounterVec // format label: text|pdf|ics|image
	Entries        prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		WeatherLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripmap_weather_lookups_total",
			Help: "Weather API lookups by endpoint.",
		}, []string{"endpoint"}),
		WeatherErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripmap_weather_errors_total",
			Help: "Weather lookups that resolved to an error string.",
		}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripmap_exports_total",
			Help: "Itinerary exports by format.",
		}, []string{"format"}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tripmap_entries",
			Help: "Current number of trip entries.",
		}),
	}

	reg.MustRegister(c.WeatherLookups, c.WeatherErrors, c.Exports, c.Entries)
	return c
}

// Handler serves the collector's registry.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveLookup(endpoint string) {
	if c == nil {
		return
	}
	c.WeatherLookups.WithLabelValues(endpoint).Inc()
}

func (c *Collector) ObserveWeatherError() {
	if c == nil {
		return
	}
	c.WeatherErrors.Inc()
}

func (c *Collector) ObserveExport(format string) {
	if c == nil {
		return
	}
	c.Exports.WithLabelValues(format).Inc()
}

func (c *Collector) SetEntries(n int) {
	if c == nil {
		return
	}
	c.Entries.Set(float64(n))
}
