package maybe

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/logger"
)

const (
	defaultPipelineName = "pipeline"
	pipeName            = "pipe"
)

// Pipe runs v through stages and returns the last value, or Absent if v is
// absent or any stage stops or fails.
func Pipe(v any, stages ...Stage) any {
	return New(stages, WithName(pipeName)).Run(v)
}

// PipeOr is Pipe with def substituted for Absent.
func PipeOr(v, def any, stages ...Stage) any {
	return New(stages, WithName(pipeName), WithDefault(def)).Run(v)
}

// Pipeline is a reusable, immutable sequence of stages.
type Pipeline struct {
	idOnce   sync.Once
	id       string
	name     string
	stages   []Stage
	names    []string
	def      any
	log      *logger.Logger
	observer Observer
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithDefault sets the value returned in place of Absent.
func WithDefault(def any) PipelineOption {
	return func(p *Pipeline) { p.def = def }
}

// WithName sets the pipeline name used in logs and metrics.
func WithName(name string) PipelineOption {
	return func(p *Pipeline) { p.name = name }
}

// WithStageNames labels stages by position in logs and reports.
func WithStageNames(names ...string) PipelineOption {
	return func(p *Pipeline) { p.names = append([]string(nil), names...) }
}

// WithLogger replaces the "maybe" component logger.
func WithLogger(l *logger.Logger) PipelineOption {
	return func(p *Pipeline) { p.log = l }
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) PipelineOption {
	return func(p *Pipeline) { p.observer = o }
}

// New builds a Pipeline from stages. The stage slice is copied.
func New(stages []Stage, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		name:   defaultPipelineName,
		stages: append([]Stage(nil), stages...),
		def:    Absent,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID is the run id attached to this pipeline's log lines. It is generated
// on first use.
func (p *Pipeline) ID() string {
	p.idOnce.Do(func() { p.id = uuid.NewString() })
	return p.id
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Run evaluates v and returns only the value.
func (p *Pipeline) Run(v any) any {
	return p.Evaluate(v).Value
}

// Report describes one pipeline run.
type Report struct {
	// Value is the final value, the default, or Absent.
	Value any
	// Kind is Continued when every stage ran.
	Kind Kind
	// Stage is the index of the stage that stopped the run, or -1.
	Stage int
	// StageName labels Stage; empty when Stage is -1.
	StageName string
	// Cause is the error of a Failed stage.
	Cause error
	// Stack is an excerpt of the goroutine stack where a Failed stage
	// returned its error or panicked.
	Stack string
	// Duration is the wall time of the run.
	Duration time.Duration
}

// Err wraps Cause as STAGE_FAILED, or returns nil unless Kind is Failed.
func (r Report) Err() error {
	if r.Kind != Failed {
		return nil
	}
	err := errors.StageFailed(r.StageName, r.Cause)
	if r.Stack != "" {
		err = err.WithDetail("stack", r.Stack)
	}
	return err
}

// Evaluate runs v through the stages and reports how the run ended.
func (p *Pipeline) Evaluate(v any) Report {
	start := time.Now()
	rep := p.fold(v)
	rep.Duration = time.Since(start)

	if rep.Kind != Continued {
		rep.Value = Maybe(p.def)
		p.logShortCircuit(rep)
	}
	if p.observer != nil {
		p.observer.PipelineDone(p.name, rep.Kind, rep.Duration)
	}
	return rep
}

// fold threads v through the stages, stopping at the first result that is
// not Continued.
func (p *Pipeline) fold(v any) Report {
	if IsAbsent(v) {
		return Report{Value: Absent, Kind: Empty, Stage: -1}
	}
	cur := v
	for i, stage := range p.stages {
		res := p.step(i, stage, cur)
		if res.kind != Continued {
			return Report{
				Value:     Absent,
				Kind:      res.kind,
				Stage:     i,
				StageName: p.stageName(i),
				Cause:     res.err,
				Stack:     res.stack,
			}
		}
		cur = res.value
	}
	return Report{Value: cur, Kind: Continued, Stage: -1}
}

func (p *Pipeline) step(i int, stage Stage, v any) Result {
	start := time.Now()
	res := protect(func() Result { return stage(v) })
	if res.kind == Continued && IsAbsent(res.value) {
		res = Stop()
	}
	if p.observer != nil {
		p.observer.StageDone(p.name, i, res.kind, time.Since(start))
	}
	return res
}

func (p *Pipeline) stageName(i int) string {
	if i < len(p.names) && p.names[i] != "" {
		return p.names[i]
	}
	return fmt.Sprintf("stage-%d", i)
}

func (p *Pipeline) getLogger() *logger.Logger {
	if p.log != nil {
		return p.log
	}
	return logger.Get("maybe")
}

// logShortCircuit writes one line per short-circuit. The run id is only
// generated once a line is actually written.
func (p *Pipeline) logShortCircuit(rep Report) {
	log := p.getLogger()
	switch rep.Kind {
	case Failed:
		if Quiet() || !log.Enabled(zerolog.ErrorLevel) {
			return
		}
		fields := logger.StageFields(p.name, p.ID(), rep.Stage)
		fields[logger.FieldStage] = rep.StageName
		fields[logger.FieldError] = rep.Cause.Error()
		if rep.Stack != "" {
			fields[logger.FieldStack] = rep.Stack
		}
		log.Error("pipeline stage failed", fields)
	case Empty:
		if !log.Enabled(zerolog.DebugLevel) {
			return
		}
		fields := logger.StageFields(p.name, p.ID(), rep.Stage)
		if rep.Stage < 0 {
			log.Debug("pipeline input absent", fields)
			return
		}
		fields[logger.FieldStage] = rep.StageName
		log.Debug("pipeline stage produced no value", fields)
	}
}
