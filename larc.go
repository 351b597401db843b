package larc

import (
	"context"

	"github.com/lowlandresearch/larc/config"
	"github.com/lowlandresearch/larc/csvrows"
	larcerrors "github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/ipaddr"
	"github.com/lowlandresearch/larc/logger"
	"github.com/lowlandresearch/larc/maybe"
	"github.com/lowlandresearch/larc/observability"
	"github.com/lowlandresearch/larc/version"
)

// Runtime is the process state built by Setup.
type Runtime struct {
	Config   *config.Config
	Observer maybe.Observer

	telemetry *observability.Telemetry
}

// Setup loads the configuration for name, applies defaults, validates it
// and configures every package from it.
func Setup(ctx context.Context, name string, opts ...config.LoaderOption) (*Runtime, error) {
	cfg := &config.Config{}
	if err := config.LoadConfig(name, cfg, opts...); err != nil {
		return nil, larcerrors.New(larcerrors.ErrCodeInvalidInput, "loading configuration").WithCause(err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return Start(ctx, cfg)
}

// Start configures every package from an already validated cfg.
func Start(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	Apply(cfg)
	rt := &Runtime{Config: cfg}
	if !cfg.Telemetry.Enabled {
		return rt, nil
	}

	svc := observability.Service{
		Name:        cfg.Name,
		Version:     version.Get().Short(),
		Environment: cfg.Environment,
	}
	tel, err := observability.Start(ctx, svc, cfg.Telemetry)
	if err != nil {
		return nil, larcerrors.Internal(err)
	}
	rt.telemetry = tel
	rt.Observer = tel.Observer
	return rt, nil
}

// Apply pushes cfg into the process-wide settings of the logger, maybe,
// ipaddr and csvrows packages.
func Apply(cfg *config.Config) {
	logger.Init(&cfg.Logging)
	maybe.Configure(cfg.Pipeline)
	ipaddr.Configure(cfg.IP)
	csvrows.Configure(cfg.CSV)
}

// Pipeline builds a named pipeline reporting to the runtime observer.
func (r *Runtime) Pipeline(name string, stages []maybe.Stage, opts ...maybe.PipelineOption) *maybe.Pipeline {
	all := []maybe.PipelineOption{maybe.WithName(name)}
	if r.Observer != nil {
		all = append(all, maybe.WithObserver(r.Observer))
	}
	return maybe.New(stages, append(all, opts...)...)
}

// Evaluate runs p on v, inside a span when telemetry is enabled.
func (r *Runtime) Evaluate(ctx context.Context, p *maybe.Pipeline, v any) maybe.Report {
	if r.telemetry == nil {
		return p.Evaluate(v)
	}
	return observability.EvaluateTraced(ctx, p, v)
}

// Shutdown flushes and stops telemetry export.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r.telemetry == nil {
		return nil
	}
	return r.telemetry.Shutdown(ctx)
}
