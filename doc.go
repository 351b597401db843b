// Package larc wires the larc helper packages to one configuration.
//
// Setup loads the configuration, initialises the global logger, applies the
// pipeline, IP and CSV settings process-wide and, when telemetry is
// enabled, starts OTLP trace and metric export:
//
//	rt, err := larc.Setup(ctx, "larc")
//	if err != nil {
//		return err
//	}
//	defer rt.Shutdown(ctx)
//
//	p := rt.Pipeline("lookup", []maybe.Stage{maybe.Key("a"), maybe.Key("b")})
//	v := p.Run(data)
package larc
