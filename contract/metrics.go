package contract

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Invocation outcomes, used as metric labels
const (
	OutcomeOk               = "ok"
	OutcomeContractError    = "contract_error"
	OutcomeInvalidArguments = "invalid_arguments"
	OutcomeInvalidResult    = "invalid_result"
	OutcomeUnknownFunction  = "unknown_function"
)

const (
	metricsSubsystem = "contract"
	unknownFunction  = "unknown"
)

type prometheusMetrics struct {
	invocations *prometheus.CounterVec
}

// NewPrometheusMetrics creates a metrics handler counting invocations by function and outcome.
// The counter is registered on the provided registerer.
func NewPrometheusMetrics(namespace string, registerer prometheus.Registerer) (*prometheusMetrics, error) {
	if registerer == nil {
		return nil, ErrNilMetricsHandler
	}

	invocations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "invocations_total",
			Help:      "Total number of contract invocations by function and outcome",
		},
		[]string{"function", "outcome"},
	)

	err := registerer.Register(invocations)
	if err != nil {
		return nil, err
	}

	return &prometheusMetrics{
		invocations: invocations,
	}, nil
}

// AddInvocation increments the invocations counter
func (pm *prometheusMetrics) AddInvocation(function string, outcome string) {
	if outcome == OutcomeUnknownFunction {
		// unknown function names share a single label
		function = unknownFunction
	}

	pm.invocations.WithLabelValues(function, outcome).Inc()
}

// Invocations returns the counter of a function and outcome
func (pm *prometheusMetrics) Invocations(function string, outcome string) prometheus.Counter {
	return pm.invocations.WithLabelValues(function, outcome)
}

// IsInterfaceNil returns true if there is no value under the interface
func (pm *prometheusMetrics) IsInterfaceNil() bool {
	return pm == nil
}

type disabledMetrics struct {
}

// NewDisabledMetrics creates a metrics handler that records nothing
func NewDisabledMetrics() *disabledMetrics {
	return &disabledMetrics{}
}

// AddInvocation does nothing
func (dm *disabledMetrics) AddInvocation(_ string, _ string) {
}

// IsInterfaceNil returns true if there is no value under the interface
func (dm *disabledMetrics) IsInterfaceNil() bool {
	return dm == nil
}
