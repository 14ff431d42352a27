package widgets

import (
	"strconv"

	"github.com/google/uuid"
)

// TokenSource hands out unique string tokens, suitable for use as class
// names or element IDs, so fragments composed into the same page can avoid
// colliding with each other. The engine itself never consults a
// TokenSource; it exists for fragment authors, who bake the tokens into
// their markup and CSS before constructing Contributions.
//
// Like an Accumulator, a TokenSource is request-scoped with a single
// writer: create one per render and don't share it between goroutines.
// Tokens from different TokenSources are kept apart by a random per-source
// prefix.
type TokenSource struct {
	prefix string
	next   int
}

// NewTokenSource returns a TokenSource ready to hand out tokens.
func NewTokenSource() *TokenSource {
	return &TokenSource{prefix: "w" + uuid.NewString()[:8]}
}

// Token returns a string that no other call to Token on this TokenSource
// will return. Tokens contain only letters, digits, and hyphens, and never
// start with a digit.
func (t *TokenSource) Token() string {
	t.next++
	return t.prefix + "-" + strconv.Itoa(t.next)
}
