// Package selector implements the compound-fragment selector model of
// the style pipeline (component C): an ordered sequence of fragments
// joined by combinators, each fragment carrying a tag/id/class/attribute
// matcher set plus pseudo-class/element lists. It is matched against an
// abstract Node contract (see matcher.go), never against a concrete DOM
// type, so any tree shape (golang.org/x/net/html, a test fixture, a
// host-owned tree) can be matched without this package depending on it.
package selector

// Combinator relates a fragment to the fragment before it.
type Combinator uint8

const (
	// None marks the first fragment of a selector; it has no
	// relation to a previous fragment.
	None Combinator = iota
	Ancestor         // descendant combinator: "A B"
	DirectParent     // child combinator: "A > B"
	NextSibling      // adjacent sibling: "A + B"
	SubsequentSibling // general sibling: "A ~ B"
)

// AttrOperator is the attribute-matcher comparison kind.
type AttrOperator uint8

const (
	AttrSet AttrOperator = iota // [attr]
	AttrExact                   // [attr=val]
	AttrContain                 // [attr*=val]
	AttrHyphen                  // [attr|=val]
	AttrBegin                   // [attr^=val]
	AttrEnd                     // [attr$=val]
	AttrList                    // [attr~=val]
)

// AttributeMatcher is one `[...]` matcher in a compound selector.
type AttributeMatcher struct {
	Name          string
	Operator      AttrOperator
	Value         string
	CaseSensitive bool

	// NeverMatches is set by the parser for syntactically valid but
	// semantically vacuous matchers (e.g. an empty Begin/End/Contain
	// value), so the matcher short-circuits without special-casing
	// every operator at match time.
	NeverMatches bool
}

// PseudoClassKind discriminates PseudoClass.
type PseudoClassKind uint8

const (
	PseudoFirstChild PseudoClassKind = iota
	PseudoLastChild
	PseudoOnlyChild
	PseudoEmpty
	PseudoHost
	PseudoNthChild
	PseudoNthOfType
	PseudoNot
)

// PseudoClass is {FirstChild, LastChild, OnlyChild, Empty, Host,
// NthChild(a,b,of?), NthOfType(a,b), Not(nested fragments)}, per §3.
type PseudoClass struct {
	Kind PseudoClassKind

	// NthChild / NthOfType: selects the 1-based index i such that
	// i = A*n + B for some n >= 0.
	A, B int
	// NthChild may carry an "of <selector-list>" qualifier.
	Of []Selector

	// Not
	Not []Fragment
}

func NthChild(a, b int) PseudoClass { return PseudoClass{Kind: PseudoNthChild, A: a, B: b} }
func NthOfType(a, b int) PseudoClass { return PseudoClass{Kind: PseudoNthOfType, A: a, B: b} }
func Not(frags []Fragment) PseudoClass { return PseudoClass{Kind: PseudoNot, Not: frags} }

// PseudoElementKind discriminates pseudo-elements (`::before`, etc).
type PseudoElementKind uint8

const (
	PseudoElementNone PseudoElementKind = iota
	PseudoElementBefore
	PseudoElementAfter
	PseudoElementFirstLine
	PseudoElementFirstLetter
)

// Fragment is a compound selector fragment: everything that must match
// a single node, plus its relation to the preceding fragment.
type Fragment struct {
	Relation Combinator

	Tag   string // "" means unspecified (matches any tag)
	ID    string // "" means unspecified
	Classes []string

	Attributes []AttributeMatcher

	PseudoElement PseudoElementKind
	PseudoClasses []PseudoClass
}

// HasTag reports whether the fragment constrains the tag name.
func (f Fragment) HasTag() bool { return f.Tag != "" }

// Selector is an ordered sequence of fragments joined by combinators,
// read left (outermost ancestor) to right (the matched node itself).
type Selector struct {
	Fragments []Fragment
}

// Last returns the rightmost fragment — the one that must match the
// node itself — or the zero Fragment if the selector is empty.
func (s Selector) Last() Fragment {
	if len(s.Fragments) == 0 {
		return Fragment{}
	}
	return s.Fragments[len(s.Fragments)-1]
}

// Specificity computes the standard (id-count, class/attr/pseudo-class
// count, type-count) CSS specificity triple used to order the cascade.
func (s Selector) Specificity() (ids, classes, types int) {
	for _, f := range s.Fragments {
		if f.ID != "" {
			ids++
		}
		classes += len(f.Classes) + len(f.Attributes)
		for _, pc := range f.PseudoClasses {
			if pc.Kind == PseudoNot {
				for _, nf := range pc.Not {
					if nf.ID != "" {
						ids++
					}
					classes += len(nf.Classes) + len(nf.Attributes) + len(nf.PseudoClasses)
					if nf.Tag != "" {
						types++
					}
				}
				continue
			}
			classes++
		}
		if f.Tag != "" {
			types++
		}
	}
	return
}

// Less orders two selectors by specificity, ids first, ascending —
// callers invert for cascade order (highest specificity wins ties by
// source order, handled by the caller, not here).
func Less(a, b Selector) bool {
	ai, ac, at := a.Specificity()
	bi, bc, bt := b.Specificity()
	if ai != bi {
		return ai < bi
	}
	if ac != bc {
		return ac < bc
	}
	return at < bt
}
