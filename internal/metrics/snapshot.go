package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Snapshot is a point-in-time summary of the run metrics, used for the
// debug exit summary.
type Snapshot struct {
	Successes      float64
	Failures       float64
	LinesStreamed  float64
	IndicatorTicks float64
	DurationSum    float64 // seconds, across all observed runs
}

// TakeSnapshot gathers the default registry and extracts the spinrun
// metric families.
func TakeSnapshot() (*Snapshot, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	for _, mf := range families {
		switch mf.GetName() {
		case "spinrun_runs_total":
			for _, m := range mf.GetMetric() {
				switch labelValue(m, "outcome") {
				case "success":
					snap.Successes = m.GetCounter().GetValue()
				case "failure":
					snap.Failures = m.GetCounter().GetValue()
				}
			}
		case "spinrun_lines_streamed_total":
			for _, m := range mf.GetMetric() {
				snap.LinesStreamed = m.GetCounter().GetValue()
			}
		case "spinrun_indicator_ticks_total":
			for _, m := range mf.GetMetric() {
				snap.IndicatorTicks = m.GetCounter().GetValue()
			}
		case "spinrun_run_duration_seconds":
			for _, m := range mf.GetMetric() {
				snap.DurationSum = m.GetHistogram().GetSampleSum()
			}
		}
	}

	return snap, nil
}

// labelValue returns the value of the named label, or "".
func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
