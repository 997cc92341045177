package tui

import (
	"github.com/statax/statax/internal/output"
)

// Message types for the Bubble Tea update cycle.

// ChartReadyMsg carries a freshly computed chart dataset.
type ChartReadyMsg struct {
	Data *output.ChartData
}

// ErrorMsg surfaces a recoverable calculation error. The previous chart
// stays on screen; the error is shown as a banner until dismissed or the
// next successful recalculation.
type ErrorMsg struct {
	Err error
}
