// metrics - prometheus-коллекторы пайплайна сборки портфолио.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "portfolio"

// Исходы загрузки одного ресурса.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics - набор коллекторов. Нулевой *Metrics допустим: все методы no-op.
type Metrics struct {
	upstreamFetch    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	assemble         *prometheus.CounterVec
	pipelineDuration prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
}

// New создаёт коллекторы и регистрирует их в reg (nil - без регистрации).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamFetch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_fetch_total",
			Help:      "Fetches of portfolio resources from the profile API by outcome.",
		}, []string{"resource", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of HTTP calls to the profile API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
		assemble: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assemble_total",
			Help:      "Portfolio pipeline runs by terminal state.",
		}, []string{"state"}),
		pipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of the fetch-normalize-assemble pipeline.",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by kind and result.",
		}, []string{"kind", "result"}),
	}

	if reg != nil {
		reg.MustRegister(m.upstreamFetch, m.upstreamDuration, m.assemble, m.pipelineDuration, m.cacheLookups)
	}

	return m
}

func (m *Metrics) FetchResult(resource string, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}

	m.upstreamFetch.WithLabelValues(resource, outcome).Inc()
}

// UpstreamRequest - code=0 означает транспортную ошибку без ответа.
func (m *Metrics) UpstreamRequest(method string, code int, d time.Duration) {
	if m == nil {
		return
	}

	m.upstreamDuration.WithLabelValues(method, strconv.Itoa(code)).Observe(d.Seconds())
}

func (m *Metrics) Assembled(state string, d time.Duration) {
	if m == nil {
		return
	}

	m.assemble.WithLabelValues(state).Inc()
	m.pipelineDuration.Observe(d.Seconds())
}

func (m *Metrics) CacheLookup(kind string, hit bool) {
	if m == nil {
		return
	}

	result := "miss"
	if hit {
		result = "hit"
	}

	m.cacheLookups.WithLabelValues(kind, result).Inc()
}
