package widgets_test

import (
	"context"
	"testing"

	"impractical.co/widgets"
)

func buildAccumulator(contributions ...widgets.Contribution) *widgets.Accumulator {
	accumulator := widgets.New()
	accumulator.Append(contributions...)
	return accumulator
}

func TestComposeAssociativity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := buildAccumulator(
		widgets.Title("first"),
		widgets.CSSLink("/a.css"),
		widgets.BodyHTML("<p>a</p>"),
	)
	b := buildAccumulator(
		widgets.CSSLink("/a.css"),
		widgets.JSInline("console.log('b')", widgets.PlacementHead),
		widgets.Title("second"),
	)
	c := buildAccumulator(
		widgets.BodyHTML("<p>c</p>"),
		widgets.CSSInlineMedia("p { display: none; }", "print"),
	)

	left := widgets.Reduce(ctx, widgets.Compose(widgets.Compose(a, b), c))
	right := widgets.Reduce(ctx, widgets.Compose(a, widgets.Compose(b, c)))
	if left != right {
		t.Errorf("Expected both groupings to reduce to %+v, got %+v", left, right)
	}
}

func TestComposeIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	accumulator := buildAccumulator(
		widgets.Title("T"),
		widgets.BodyHTML("<p>hi</p>"),
	)
	empty := widgets.New()

	want := widgets.Reduce(ctx, widgets.Compose(accumulator))
	if got := widgets.Reduce(ctx, widgets.Compose(empty, accumulator)); got != want {
		t.Errorf("Expected left identity to reduce to %+v, got %+v", want, got)
	}
	if got := widgets.Reduce(ctx, widgets.Compose(accumulator, empty)); got != want {
		t.Errorf("Expected right identity to reduce to %+v, got %+v", want, got)
	}
	if got := widgets.Reduce(ctx, widgets.Compose(accumulator, nil)); got != want {
		t.Errorf("Expected nil operand to act as identity, reducing to %+v, got %+v", want, got)
	}

	content := widgets.Reduce(ctx, widgets.Compose())
	if content.Title != "" || content.Head != "" || content.Body != "" {
		t.Errorf("Expected Compose of nothing to reduce to empty PageContent, got %+v", content)
	}
}

func TestComposeCopiesOperands(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	accumulator := buildAccumulator(widgets.BodyHTML("<p>1</p>"))

	combined := widgets.Compose(accumulator)
	combined.Append(widgets.BodyHTML("<p>2</p>"))

	if got, expected := string(widgets.Reduce(ctx, accumulator).Body), "<p>1</p>"; got != expected {
		t.Errorf("Expected to get %q, got %q", expected, got)
	}
	if got, expected := string(widgets.Reduce(ctx, combined).Body), "<p>1</p><p>2</p>"; got != expected {
		t.Errorf("Expected to get %q, got %q", expected, got)
	}
}

func TestEmptyAccumulator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	content := widgets.Reduce(ctx, widgets.New())
	if content.Title != "" || content.Head != "" || content.Body != "" {
		t.Errorf("Expected empty accumulator to reduce to empty PageContent, got %+v", content)
	}

	content = widgets.Reduce(ctx, nil)
	if content.Title != "" || content.Head != "" || content.Body != "" {
		t.Errorf("Expected nil accumulator to reduce to empty PageContent, got %+v", content)
	}
}

func TestZeroContributionIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	accumulator := buildAccumulator(
		widgets.Title("T"),
		widgets.Contribution{},
	)
	if got, expected := widgets.Reduce(ctx, accumulator).Title, "T"; got != expected {
		t.Errorf("Expected to get %q, got %q", expected, got)
	}
}
