package server

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"word-history-project/chart"
	"word-history-project/metrics"
	"word-history-project/view"
)

// snapshot is a chart configuration delivered to the browser, which draws it
type snapshot struct {
	kind     chart.Kind
	body     []byte
	released atomic.Bool
}

func (s *snapshot) Release() error {
	if s.released.Swap(true) {
		return nil
	}
	metrics.RecordRelease(string(s.kind))
	return nil
}

// snapshotRenderer hands chart configurations to the browser charting component
type snapshotRenderer struct{}

func (snapshotRenderer) Render(cfg chart.Config) (view.Handle, error) {
	body, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s chart: %w", cfg.Chart.Type, err)
	}
	return &snapshot{kind: cfg.Chart.Type, body: body}, nil
}
