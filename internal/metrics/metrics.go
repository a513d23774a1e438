package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "asset_token"

const (
	OutcomeSuccess      = "success"
	OutcomeFailed       = "failed"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// Service owns the gateway's Prometheus registry.
type Service struct {
	Registry *prometheus.Registry

	mintRequests     *prometheus.CounterVec
	balanceRequests  *prometheus.CounterVec
	transferRequests *prometheus.CounterVec
	historyRequests  *prometheus.CounterVec
	chainDuration    *prometheus.HistogramVec
}

func New() (*Service, error) {
	reg := prometheus.NewRegistry()

	s := &Service{
		Registry: reg,
		mintRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mint_requests_total",
			Help:      "Mint requests handled by the gateway, by outcome.",
		}, []string{"outcome"}),
		balanceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_requests_total",
			Help:      "Balance requests handled by the gateway, by outcome.",
		}, []string{"outcome"}),
		transferRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfer_requests_total",
			Help:      "Transfer requests handled by the gateway, by outcome.",
		}, []string{"outcome"}),
		historyRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_requests_total",
			Help:      "Historical transfer queries handled by the gateway, by outcome.",
		}, []string{"outcome"}),
		chainDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chain_call_duration_seconds",
			Help:      "Duration of token contract calls including waiting for receipts.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"method"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.mintRequests,
		s.balanceRequests,
		s.transferRequests,
		s.historyRequests,
		s.chainDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Service) ObserveMint(outcome string) {
	s.mintRequests.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveBalance(outcome string) {
	s.balanceRequests.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveTransfer(outcome string) {
	s.transferRequests.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveHistory(outcome string) {
	s.historyRequests.WithLabelValues(outcome).Inc()
}

// ObserveChainCall records the time since start for the given contract method.
func (s *Service) ObserveChainCall(method string, start time.Time) {
	s.chainDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
