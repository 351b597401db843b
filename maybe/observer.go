package maybe

import (
	"time"
)

// Observer is notified as a Pipeline runs. Implementations must be safe for
// concurrent use when the Pipeline is shared.
type Observer interface {
	// StageDone is called after each invoked stage.
	StageDone(pipeline string, index int, kind Kind, d time.Duration)
	// PipelineDone is called once per run with the final outcome.
	PipelineDone(pipeline string, kind Kind, d time.Duration)
}
