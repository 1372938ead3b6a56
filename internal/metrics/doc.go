// Package metrics records how long each scenario step took and how it ended.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default and does nothing; PrometheusRecorder collects into a registry
// that can be written to a node_exporter textfile after the run:
//
//	recorder := metrics.NewPrometheusRecorder(nil)
//	dispatcher := scenario.NewDispatcher(cfg, ops).WithRecorder(recorder)
//	...
//	_ = recorder.WriteTextfile(cfg.MetricsFile)
package metrics
