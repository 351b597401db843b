package maybe

import (
	"sync/atomic"

	"github.com/lowlandresearch/larc/config"
)

var (
	stackDepth atomic.Int32
	quiet      atomic.Bool
)

func init() {
	stackDepth.Store(config.DefaultStackDepth)
}

// Configure applies pipeline settings process-wide.
func Configure(cfg config.PipelineConfig) {
	if cfg.StackDepth > 0 {
		stackDepth.Store(int32(cfg.StackDepth))
	}
	quiet.Store(cfg.Quiet)
}

// StackDepth is the number of frames kept when a stage panics.
func StackDepth() int {
	return int(stackDepth.Load())
}

// Quiet reports whether failed stages skip the error log.
func Quiet() bool {
	return quiet.Load()
}
