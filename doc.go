// Package widgets provides a deterministic aggregation engine for assembling
// the content of an HTML page from independently authored fragments.
//
// widgets is organized around Contributions, Accumulators, and Widgets. A
// Contribution is one atomic fragment of page content: the page title, a
// reference to an external stylesheet or script, a block of inline CSS or
// JavaScript, or raw markup destined for the document head or body. An
// Accumulator is an ordered collection of Contributions, built up by
// appending for the duration of composing a single page and consumed exactly
// once by Reduce, which merges everything into a PageContent holding the
// title, head markup, and body markup for the page.
//
// The merge rules are fixed. The last title appended wins. Each external
// stylesheet or script URL is emitted exactly once, at the position of its
// first appearance; later duplicates are dropped silently. Everything else
// concatenates in append order, with head-destined and body-destined
// fragments each keeping their order within their own destination. Inline
// CSS is grouped into style blocks by media attribute. The order of the
// sections within the head is a policy, not a law; see HeadLayout.
//
// Widgets are the composition surface. A Widget is anything that can emit
// Contributions; a Widget that relies on other Widgets, a page including a
// navbar for example, can return them from a UseWidgets method and Collect
// will walk the whole tree, appending every Contribution it finds in
// composition order. Accumulators also combine directly through Compose,
// which is associative and treats the empty Accumulator as its identity, so
// larger fragments can be assembled from smaller ones in any grouping
// without changing the result.
//
// An Accumulator belongs to the render that creates it. Build one per
// request, append from a single goroutine, Reduce it once, and throw it
// away; the package never shares state between accumulators.
//
// The engine treats every fragment as an opaque string. Escaping,
// validation, and well-formedness are the responsibility of whatever
// produces the Contributions, usually a templating layer.
package widgets
