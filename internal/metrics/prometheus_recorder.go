package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry         *prom.Registry
	stepDuration     *prom.HistogramVec
	stepResults      *prom.CounterVec
	scenarioDuration *prom.HistogramVec
	scenarioOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the texpress metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		stepDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "texpress",
			Name:      "step_duration_seconds",
			Help:      "Duration of individual scenario steps",
			Buckets:   prom.DefBuckets,
		}, []string{"step"}),
		stepResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "texpress",
			Name:      "step_results_total",
			Help:      "Step result counts by outcome",
		}, []string{"step", "result"}),
		scenarioDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "texpress",
			Name:      "scenario_duration_seconds",
			Help:      "Total scenario duration",
			Buckets:   prom.DefBuckets,
		}, []string{"scenario"}),
		scenarioOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "texpress",
			Name:      "scenario_outcomes_total",
			Help:      "Scenario outcomes by final status",
		}, []string{"scenario", "result"}),
	}
	reg.MustRegister(pr.stepDuration, pr.stepResults, pr.scenarioDuration, pr.scenarioOutcome)
	return pr
}

func (p *PrometheusRecorder) ObserveStepDuration(step string, d time.Duration) {
	if p == nil {
		return
	}
	p.stepDuration.WithLabelValues(step).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStepResult(step string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stepResults.WithLabelValues(step, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveScenarioDuration(scenario string, d time.Duration) {
	if p == nil {
		return
	}
	p.scenarioDuration.WithLabelValues(scenario).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncScenarioOutcome(scenario string, result ResultLabel) {
	if p == nil {
		return
	}
	p.scenarioOutcome.WithLabelValues(scenario, string(result)).Inc()
}

// Registry exposes the underlying registry.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// WriteTextfile writes every collected metric to path in the text exposition
// format, atomically, for a node_exporter textfile collector to pick up.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.registry)
}
