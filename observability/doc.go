// Package observability wires larc pipelines into OpenTelemetry.
//
// Start builds OTLP HTTP trace and metric providers from the telemetry
// section of the configuration and installs them globally:
//
//	tel, err := observability.Start(ctx, observability.Service{Name: "larc"}, cfg.Telemetry)
//	defer tel.Shutdown(ctx)
//
//	p := maybe.New(stages, maybe.WithObserver(tel.Observer))
//	rep := observability.EvaluateTraced(ctx, p, input)
//
// The observer records larc.pipeline.runs, larc.pipeline.stage.duration and
// larc.pipeline.short_circuits.
package observability
