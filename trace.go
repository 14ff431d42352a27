package widgets

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "impractical.co/widgets"

// tracer returns the package's named tracer from the globally registered
// TracerProvider. Without one registered, spans are no-ops.
func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
