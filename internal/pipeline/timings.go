package pipeline

import (
	"fmt"
	"io"
	"time"
)

// Порядок вывода стадий.
var timingStages = []Stage{StageScan, StageDecode, StageRender}

// WriteTimings prints the recorded stage durations in a fixed order,
// skipping stages that never ran.
func WriteTimings(w io.Writer, kind string, t Timings) {
	total := t.Sum(timingStages...)
	fmt.Fprintf(w, "timings (%s): total %.2f ms\n", kind, millis(total))
	for _, stage := range timingStages {
		if !t.Has(stage) {
			continue
		}
		fmt.Fprintf(w, "  %-6s %8.2f ms\n", stage, millis(t.Duration(stage)))
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
