package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Attribute keys.
const (
	AttrServiceName    = "service.name"
	AttrServiceVersion = "service.version"
	AttrEnvironment    = "environment"
	AttrPipeline       = "larc.pipeline"
	AttrRunID          = "larc.run_id"
	AttrStage          = "larc.stage"
	AttrStageIndex     = "larc.stage_index"
	AttrOutcome        = "larc.outcome"
	AttrErrorMessage   = "error.message"
	AttrDurationMs     = "duration_ms"
)

// newResource creates an OpenTelemetry resource with service metadata.
// The attributes are schemaless so the merge with resource.Default never
// conflicts on schema URLs.
func newResource(serviceName, serviceVersion, environment string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String(AttrServiceName, serviceName),
			attribute.String(AttrServiceVersion, serviceVersion),
			attribute.String(AttrEnvironment, environment),
		),
	)
}
