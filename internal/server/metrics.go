package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"openform/internal/classify"
	"openform/internal/pipeline"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	tokens   *prometheus.CounterVec
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openform_http_requests_total",
				Help: "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "openform_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		tokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openform_tokens_total",
				Help: "Normalized tokens emitted, by kind (word, tagged, nonsense, no_text).",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(
		m.requests, m.duration, m.tokens,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observeTokens(tokens []string) {
	for _, t := range tokens {
		m.tokens.WithLabelValues(tokenKind(t)).Inc()
	}
}

func tokenKind(t string) string {
	switch {
	case t == pipeline.NoText:
		return "no_text"
	case t == pipeline.NonsenseWord:
		return "nonsense"
	case classify.IsReserved(t):
		return "tagged"
	}
	return "word"
}
