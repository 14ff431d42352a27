package widgets

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// Widget is an interface for a unit of UI that contributes content to the
// page it's composed into.
type Widget interface {
	// Contribute returns the Contributions this Widget is making to the
	// page: its title, resources, and markup. Contributions are appended
	// in the order returned.
	Contribute(ctx context.Context) []Contribution
}

// WidgetUser is an interface that a Widget can optionally implement to list
// the Widgets it relies upon. Collect walks them automatically, so a Widget
// returning its children from UseWidgets doesn't need to include their
// Contributions in its own Contribute output. A Widget that uses other
// Widgets but doesn't return them through this interface is responsible for
// including their Contributions itself.
type WidgetUser interface {
	// UseWidgets returns the Widgets that this Widget relies on.
	UseWidgets(ctx context.Context) []Widget
}

// Collect builds an Accumulator from the passed Widgets, walking each
// Widget's UseWidgets tree depth-first and appending every Contribution
// found: a Widget's own Contributions first, then each of its children's in
// turn. The result is ready to Reduce, or to Compose with other
// Accumulators first.
func Collect(ctx context.Context, widgets ...Widget) *Accumulator {
	ctx, span := tracer().Start(ctx, "Collect")
	defer span.End()

	accumulator := New()
	for _, widget := range widgets {
		collect(ctx, accumulator, widget)
	}

	span.SetAttributes(attribute.Int("widgets.contributions", len(accumulator.contributions)))
	return accumulator
}

func collect(ctx context.Context, accumulator *Accumulator, widget Widget) {
	accumulator.Append(widget.Contribute(ctx)...)
	if user, ok := widget.(WidgetUser); ok {
		for _, child := range user.UseWidgets(ctx) {
			collect(ctx, accumulator, child)
		}
	}
}
