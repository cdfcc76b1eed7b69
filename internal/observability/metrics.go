package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics of the HTTP surface and of the
// handover evaluations.
type Collector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec

	CoverageEvaluations *prometheus.CounterVec
	A3Evaluations       *prometheus.CounterVec
	EventTableRows      *prometheus.GaugeVec
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.Requests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests, labeled by route, method and status code.",
	}, []string{"route", "method", "code"})); err != nil {
		return nil, err
	}
	if c.Durations, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})); err != nil {
		return nil, err
	}
	if c.CoverageEvaluations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coverage_evaluations_total",
		Help: "Coverage evaluations, labeled by nearest site and band.",
	}, []string{"site", "band"})); err != nil {
		return nil, err
	}
	if c.A3Evaluations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "a3_evaluations_total",
		Help: "A3 condition evaluations, labeled by outcome.",
	}, []string{"met"})); err != nil {
		return nil, err
	}
	if c.EventTableRows, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "event_table_rows",
		Help: "Rows of the stored event table, labeled by source.",
	}, []string{"source"})); err != nil {
		return nil, err
	}
	return c, nil
}

// Handler exposes the registered metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route template
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.Requests.WithLabelValues(route, method, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.Durations.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// ObserveCoverage counts one coverage evaluation. A nil collector is a no-op.
func (c *Collector) ObserveCoverage(siteID, band string) {
	if c == nil {
		return
	}
	c.CoverageEvaluations.WithLabelValues(siteID, band).Inc()
}

// ObserveA3 counts one A3 evaluation
func (c *Collector) ObserveA3(met bool) {
	if c == nil {
		return
	}
	c.A3Evaluations.WithLabelValues(strconv.FormatBool(met)).Inc()
}

// SetEventTable records the size of the stored event table. Only the
// current source carries a non-zero value.
func (c *Collector) SetEventTable(source string, rows int) {
	if c == nil {
		return
	}
	c.EventTableRows.Reset()
	c.EventTableRows.WithLabelValues(source).Set(float64(rows))
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return col, nil
}
