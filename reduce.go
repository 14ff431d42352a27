package widgets

import (
	"context"
	"html/template"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// PageContent is the reduced output of an Accumulator: the three pieces of
// page content that a layout renderer embeds into the final document. It is
// derived once by Reduce and read-only afterward.
type PageContent struct {
	// Title is the page title. Empty if no title was contributed.
	Title string

	// Head is the markup destined for the document head: stylesheet and
	// script references, style blocks, and any head-destined fragments,
	// in the order described by the HeadLayout the page was reduced with.
	Head template.HTML

	// Body is the markup destined for the document body: body-destined
	// fragments and scripts, concatenated in append order.
	Body template.HTML
}

// HeadSection identifies one section of the reduced head content.
type HeadSection string

const (
	// HeadSectionCSSLinks is the <link> elements referencing external
	// stylesheets, in first-seen order.
	HeadSectionCSSLinks HeadSection = "css-links"

	// HeadSectionJSLinks is the <script src> elements referencing
	// external scripts, in first-seen order.
	HeadSectionJSLinks HeadSection = "js-links"

	// HeadSectionStyles is the style blocks, one per distinct media
	// attribute, in first-appearance order of the media attribute.
	HeadSectionStyles HeadSection = "styles"

	// HeadSectionMarkup is the head-destined markup and inline scripts,
	// interleaved in append order.
	HeadSectionMarkup HeadSection = "markup"
)

// HeadLayout is the order the sections of the head are emitted in. Reduce
// uses DefaultHeadLayout; pages needing a different policy can pass their
// own to ReduceWithLayout. A section not named in the layout is omitted
// from the head entirely.
type HeadLayout []HeadSection

// DefaultHeadLayout emits external stylesheet references, then external
// script references, then style blocks, then head markup and scripts.
var DefaultHeadLayout = HeadLayout{
	HeadSectionCSSLinks,
	HeadSectionJSLinks,
	HeadSectionStyles,
	HeadSectionMarkup,
}

// Reduce scans the Accumulator once, in append order, and merges its
// contributions into a PageContent using DefaultHeadLayout. It never fails;
// a nil or empty Accumulator reduces to an all-empty PageContent.
//
// Reduce is the single read in an Accumulator's lifecycle; the Accumulator
// should be discarded afterward.
func Reduce(ctx context.Context, accumulator *Accumulator) PageContent {
	return ReduceWithLayout(ctx, accumulator, DefaultHeadLayout)
}

// ReduceWithLayout is Reduce with an explicit ordering policy for the head
// sections.
func ReduceWithLayout(ctx context.Context, accumulator *Accumulator, layout HeadLayout) PageContent {
	ctx, span := tracer().Start(ctx, "ReduceWithLayout")
	defer span.End()

	var contributions []Contribution
	if accumulator != nil {
		contributions = accumulator.contributions
	}

	var title string
	cssLinks := newOrderedSet()
	jsLinks := newOrderedSet()
	styles := newStyleBuckets()
	var headMarkup, body strings.Builder
	duplicates := 0

	for _, contribution := range contributions {
		switch contribution.kind {
		case kindTitle:
			title = contribution.payload
		case kindCSSLink:
			if !cssLinks.add(contribution.payload) {
				duplicates++
				logger(ctx).DebugContext(ctx, "dropping duplicate stylesheet reference", "href", contribution.payload)
			}
		case kindJSLink:
			if !jsLinks.add(contribution.payload) {
				duplicates++
				logger(ctx).DebugContext(ctx, "dropping duplicate script reference", "src", contribution.payload)
			}
		case kindCSSInline:
			styles.add(contribution.media, contribution.payload)
		case kindJSInline:
			if contribution.placement == PlacementBody {
				writeInlineScript(&body, contribution.payload)
			} else {
				writeInlineScript(&headMarkup, contribution.payload)
			}
		case kindHeadHTML:
			headMarkup.WriteString(contribution.payload)
		case kindBodyHTML:
			body.WriteString(contribution.payload)
		}
	}

	var head strings.Builder
	for _, section := range layout {
		switch section {
		case HeadSectionCSSLinks:
			for _, href := range cssLinks.values {
				head.WriteString(`<link rel="stylesheet" href="`)
				head.WriteString(href)
				head.WriteString(`">`)
			}
		case HeadSectionJSLinks:
			for _, src := range jsLinks.values {
				head.WriteString(`<script src="`)
				head.WriteString(src)
				head.WriteString(`"></script>`)
			}
		case HeadSectionStyles:
			for _, media := range styles.order {
				head.WriteString(`<style`)
				if media != "" {
					head.WriteString(` media="`)
					head.WriteString(media)
					head.WriteString(`"`)
				}
				head.WriteString(`>`)
				head.WriteString(strings.Join(styles.chunks[media], "\n"))
				head.WriteString(`</style>`)
			}
		case HeadSectionMarkup:
			head.WriteString(headMarkup.String())
		}
	}

	span.SetAttributes(
		attribute.Int("widgets.contributions", len(contributions)),
		attribute.Int("widgets.duplicate_references", duplicates),
	)

	return PageContent{
		Title: title,
		Head:  template.HTML(head.String()), // #nosec G203
		Body:  template.HTML(body.String()), // #nosec G203
	}
}

func writeInlineScript(out *strings.Builder, js string) {
	out.WriteString(`<script>`)
	out.WriteString(js)
	out.WriteString(`</script>`)
}

// orderedSet is an insertion-order-deduplicated set of strings. Values are
// compared exactly; no normalization.
type orderedSet struct {
	values []string
	seen   map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}}
}

// add reports whether the value was inserted; false means it was already
// present.
func (s *orderedSet) add(value string) bool {
	if _, ok := s.seen[value]; ok {
		return false
	}
	s.values = append(s.values, value)
	s.seen[value] = struct{}{}
	return true
}

// styleBuckets groups inline CSS chunks by media attribute, remembering the
// order the media attributes were first seen in. The unscoped bucket is
// keyed by the empty string.
type styleBuckets struct {
	order  []string
	chunks map[string][]string
}

func newStyleBuckets() *styleBuckets {
	return &styleBuckets{chunks: map[string][]string{}}
}

func (b *styleBuckets) add(media, css string) {
	if _, ok := b.chunks[media]; !ok {
		b.order = append(b.order, media)
	}
	b.chunks[media] = append(b.chunks[media], css)
}
