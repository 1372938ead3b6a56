package metrics

import "time"

// ResultLabel enumerates step and scenario result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// ResultFor maps an error onto a ResultLabel.
func ResultFor(err error) ResultLabel {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}

// Recorder defines observability hooks for scenario runs.
type Recorder interface {
	ObserveStepDuration(step string, d time.Duration)
	IncStepResult(step string, result ResultLabel)
	ObserveScenarioDuration(scenario string, d time.Duration)
	IncScenarioOutcome(scenario string, result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStepDuration(string, time.Duration)     {}
func (NoopRecorder) IncStepResult(string, ResultLabel)             {}
func (NoopRecorder) ObserveScenarioDuration(string, time.Duration) {}
func (NoopRecorder) IncScenarioOutcome(string, ResultLabel)        {}
