package widgets

// Accumulator is an ordered collection of Contributions, built while
// composing a single page or reusable fragment and consumed exactly once by
// Reduce. The zero Accumulator and New() are both empty and ready to use.
//
// An Accumulator has exactly one writer. It must not be shared between
// concurrently rendering requests, reused after Reduce, or appended to from
// multiple goroutines; give each in-flight render its own.
type Accumulator struct {
	contributions []Contribution
}

// New returns an empty Accumulator. The empty Accumulator is the identity
// for Compose.
func New() *Accumulator {
	return &Accumulator{}
}

// Append adds contributions to the end of the Accumulator, in the order
// given. It never fails and accepts any Contribution value.
func (a *Accumulator) Append(contributions ...Contribution) {
	a.contributions = append(a.contributions, contributions...)
}

// Compose returns a new Accumulator holding the contributions of every
// passed Accumulator, in order: combining a then b is equivalent to
// appending all of b's contributions after all of a's. Compose is
// associative and nil or empty Accumulators are its identity, so fragments
// can be combined in any grouping without changing the result of Reduce;
// only the left-to-right order of the leaf contributions matters.
//
// The operands are copied, not aliased; appending to the result doesn't
// modify them, and vice versa.
func Compose(accumulators ...*Accumulator) *Accumulator {
	result := New()
	for _, accumulator := range accumulators {
		if accumulator == nil {
			continue
		}
		result.contributions = append(result.contributions, accumulator.contributions...)
	}
	return result
}
