package providers

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented wraps a Generator and records request counts and latency.
type Instrumented struct {
	next     Generator
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumented registers the model metrics on reg and wraps next.
func NewInstrumented(next Generator, reg prometheus.Registerer) (*Instrumented, error) {
	m := &Instrumented{
		next: next,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "model_requests_total",
				Help: "Total number of generative model requests.",
			},
			[]string{"provider", "operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "model_request_duration_seconds",
				Help:    "Latency of generative model requests.",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
			},
			[]string{"provider", "operation"},
		),
	}
	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Instrumented) Info() ProviderInfo {
	return m.next.Info()
}

func (m *Instrumented) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	start := time.Now()
	resp, info, err := m.next.Generate(ctx, req)

	outcome := "ok"
	if err != nil {
		outcome = string(ClassifyError(err))
	}
	m.requests.WithLabelValues(info.Name, req.Operation, outcome).Inc()
	m.duration.WithLabelValues(info.Name, req.Operation).Observe(time.Since(start).Seconds())

	return resp, info, err
}
