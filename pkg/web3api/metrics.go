package web3api

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/team-magi/web3game-go/internal/constants"
)

// Request metadata keys.
const (
	// MetadataEndpoint holds the "group.name" of the endpoint being called.
	MetadataEndpoint = "endpoint"

	metadataStartTime = "start_time"
	unknownEndpoint   = "unknown"
	transportFailure  = "error"
)

// Metrics records client-side request metrics in prometheus.
type Metrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics creates the request metrics and registers them with registerer.
// Collectors already registered by an earlier call are reused.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: constants.MetricsNamespace,
		Subsystem: constants.MetricsSubsystem,
		Name:      "requests_total",
		Help:      "Web3 API requests by endpoint and status code.",
	}, []string{"endpoint", "code"})

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: constants.MetricsNamespace,
		Subsystem: constants.MetricsSubsystem,
		Name:      "errors_total",
		Help:      "Web3 API requests that failed in transport or returned a non-2xx status.",
	}, []string{"endpoint"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: constants.MetricsNamespace,
		Subsystem: constants.MetricsSubsystem,
		Name:      "request_duration_seconds",
		Help:      "Web3 API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	var err error

	metrics := &Metrics{}

	metrics.requests, err = register(registerer, requests)
	if err != nil {
		return nil, err
	}

	metrics.errors, err = register(registerer, failures)
	if err != nil {
		return nil, err
	}

	metrics.latency, err = register(registerer, latency)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	already := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	var zero T

	return zero, err
}

// RequestInterceptor records the request start time.
func (m *Metrics) RequestInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// ResponseInterceptor counts the response and observes its latency.
func (m *Metrics) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		endpoint := unknownEndpoint

		if name, ok := req.Metadata[MetadataEndpoint].(string); ok && name != "" {
			endpoint = name
		}

		code := strconv.Itoa(resp.StatusCode)
		if resp.StatusCode == 0 {
			code = transportFailure
		}

		m.requests.WithLabelValues(endpoint, code).Inc()

		if resp.Error != nil || resp.StatusCode >= 400 {
			m.errors.WithLabelValues(endpoint).Inc()
		}

		if startTime, ok := req.Metadata[metadataStartTime].(time.Time); ok {
			m.latency.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
		}

		return nil
	}
}
