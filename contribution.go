package widgets

import "html/template"

// Placement controls where an inline script is emitted in the final page.
type Placement string

const (
	// PlacementHead indicates that the script should be emitted as part
	// of the document head.
	PlacementHead Placement = "head"

	// PlacementBody indicates that the script should be emitted as part
	// of the document body.
	PlacementBody Placement = "body"
)

type contributionKind int

const (
	kindInvalid contributionKind = iota
	kindTitle
	kindCSSLink
	kindJSLink
	kindCSSInline
	kindJSInline
	kindHeadHTML
	kindBodyHTML
)

// Contribution is one atomic fragment of page content emitted by a Widget.
// Contributions are opaque values; construct them with Title, CSSLink,
// JSLink, CSSInline, CSSInlineMedia, JSInline, HeadHTML, or BodyHTML and
// append them to an Accumulator. The zero Contribution is inert; Reduce
// ignores it.
type Contribution struct {
	kind      contributionKind
	payload   string
	media     string
	placement Placement
}

// Title contributes the page title. If a page's composition contributes
// more than one title, the last one appended wins.
func Title(text string) Contribution {
	return Contribution{kind: kindTitle, payload: text}
}

// CSSLink contributes a reference to an external stylesheet, rendered in
// the head as a <link> element. Equal hrefs are idempotent: however many
// times an href is contributed, it is rendered once, at the position of its
// first appearance. Hrefs are compared as-is, with no normalization.
func CSSLink(href string) Contribution {
	return Contribution{kind: kindCSSLink, payload: href}
}

// JSLink contributes a reference to an external script, rendered in the
// head as a <script> element with a src attribute. Equal srcs are
// idempotent the same way CSSLink hrefs are.
func JSLink(src string) Contribution {
	return Contribution{kind: kindJSLink, payload: src}
}

// CSSInline contributes CSS, without <style> tags, to be embedded in the
// head. All inline CSS contributed without a media attribute shares a
// single style block, concatenating in append order.
func CSSInline(css template.CSS) Contribution {
	return Contribution{kind: kindCSSInline, payload: string(css)}
}

// CSSInlineMedia contributes CSS scoped to a media query, rendered in its
// own style block carrying the media attribute. CSS contributed with the
// same media attribute shares a block, concatenating in append order. An
// empty media attribute is identical to CSSInline.
func CSSInlineMedia(css template.CSS, media string) Contribution {
	return Contribution{kind: kindCSSInline, payload: string(css), media: media}
}

// JSInline contributes JavaScript, without <script> tags, to be embedded at
// the requested Placement. Inline scripts are never deduplicated; each one
// is emitted, wrapped in <script> tags, in append order relative to the
// other head-destined or body-destined fragments. Placements other than
// PlacementBody are treated as PlacementHead.
func JSInline(js template.JS, place Placement) Contribution {
	return Contribution{kind: kindJSInline, payload: string(js), placement: place}
}

// HeadHTML contributes raw markup to be appended to the document head,
// after the stylesheet references, script references, and style blocks. It
// shares its ordering with JSInline(PlacementHead) contributions.
func HeadHTML(fragment template.HTML) Contribution {
	return Contribution{kind: kindHeadHTML, payload: string(fragment)}
}

// BodyHTML contributes raw markup to be appended to the document body. It
// shares its ordering with JSInline(PlacementBody) contributions.
func BodyHTML(fragment template.HTML) Contribution {
	return Contribution{kind: kindBodyHTML, payload: string(fragment)}
}
