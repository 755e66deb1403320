package inlay

import (
	"fmt"
	"strings"
)

// Warning codes raised by the planner itself. Validation and
// placement warning codes pass through from their packages.
const (
	// WarnCalibrationAbsent means no calibration profile exists for
	// the requested printer/paper key and placements passed through
	// uncalibrated. Operationally different from an explicit identity
	// calibration.
	WarnCalibrationAbsent = "calibration-absent"
)

// Warning is a non-fatal condition raised while planning a render
// run.
type Warning struct {
	// Page is the 1-indexed number of the page the warning concerns.
	// 0 marks a run-level warning, so page numbering must start at 1.
	Page    int    `json:"page,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormatWarnings renders warnings one per line for display or
// logging.
func FormatWarnings(warnings []Warning) string {
	var b strings.Builder
	for i, w := range warnings {
		if i > 0 {
			b.WriteByte('\n')
		}
		if w.Page > 0 {
			fmt.Fprintf(&b, "page %d: %s: %s", w.Page, w.Code, w.Message)
		} else {
			fmt.Fprintf(&b, "%s: %s", w.Code, w.Message)
		}
	}
	return b.String()
}
