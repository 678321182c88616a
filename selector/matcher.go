package selector

import "strings"

// Node is the abstract contract §6 requires: the selector-matching
// query engine "is specified only by its contract, not its
// implementation strategy." Any tree (golang.org/x/net/html nodes via
// an adapter, a host-owned layout tree, a test fixture) can satisfy
// this without selector importing it.
type Node interface {
	TagName() string
	ID() string
	Classes() []string
	Attr(name string) (string, bool)
	Parent() (Node, bool)
	PrecedingSibling() (Node, bool)
	ChildIndex() int // 1-based position among element siblings
	SiblingCount() int
	ChildCount() int // number of element children, for :empty
}

// Matches reports whether sel matches n, walking the combinator chain
// from the rightmost fragment outward/backward per standard CSS
// selector-matching direction.
func Matches(sel Selector, n Node) bool {
	if len(sel.Fragments) == 0 {
		return false
	}
	return matchFrom(sel.Fragments, len(sel.Fragments)-1, n)
}

func matchFrom(frags []Fragment, i int, n Node) bool {
	f := frags[i]
	if !matchFragment(f, n) {
		return false
	}
	if i == 0 {
		return true
	}
	prevRelation := f.Relation
	switch prevRelation {
	case Ancestor:
		p, ok := n.Parent()
		for ok {
			if matchFrom(frags, i-1, p) {
				return true
			}
			p, ok = p.Parent()
		}
		return false
	case DirectParent:
		p, ok := n.Parent()
		if !ok {
			return false
		}
		return matchFrom(frags, i-1, p)
	case NextSibling:
		s, ok := n.PrecedingSibling()
		if !ok {
			return false
		}
		return matchFrom(frags, i-1, s)
	case SubsequentSibling:
		s, ok := n.PrecedingSibling()
		for ok {
			if matchFrom(frags, i-1, s) {
				return true
			}
			s, ok = s.PrecedingSibling()
		}
		return false
	}
	return false
}

func matchFragment(f Fragment, n Node) bool {
	if f.Tag != "" && !strings.EqualFold(f.Tag, n.TagName()) {
		return false
	}
	if f.ID != "" && f.ID != n.ID() {
		return false
	}
	if len(f.Classes) > 0 {
		have := n.Classes()
		for _, want := range f.Classes {
			if !containsStr(have, want) {
				return false
			}
		}
	}
	for _, am := range f.Attributes {
		if !matchAttribute(am, n) {
			return false
		}
	}
	for _, pc := range f.PseudoClasses {
		if !matchPseudoClass(pc, n) {
			return false
		}
	}
	return true
}

func matchAttribute(am AttributeMatcher, n Node) bool {
	if am.NeverMatches {
		return false
	}
	v, ok := n.Attr(am.Name)
	if !ok {
		return false
	}
	if am.Operator == AttrSet {
		return true
	}
	cmp := func(a, b string) bool {
		if !am.CaseSensitive {
			a, b = strings.ToLower(a), strings.ToLower(b)
		}
		return a == b
	}
	hv, wv := v, am.Value
	if !am.CaseSensitive {
		hv, wv = strings.ToLower(hv), strings.ToLower(wv)
	}
	switch am.Operator {
	case AttrExact:
		return cmp(v, am.Value)
	case AttrContain:
		return wv != "" && strings.Contains(hv, wv)
	case AttrBegin:
		return wv != "" && strings.HasPrefix(hv, wv)
	case AttrEnd:
		return wv != "" && strings.HasSuffix(hv, wv)
	case AttrHyphen:
		return hv == wv || strings.HasPrefix(hv, wv+"-")
	case AttrList:
		for _, tok := range strings.Fields(hv) {
			if tok == wv {
				return true
			}
		}
		return false
	}
	return false
}

func matchPseudoClass(pc PseudoClass, n Node) bool {
	switch pc.Kind {
	case PseudoFirstChild:
		return n.ChildIndex() == 1
	case PseudoLastChild:
		return n.ChildIndex() == n.SiblingCount()
	case PseudoOnlyChild:
		return n.ChildIndex() == 1 && n.SiblingCount() == 1
	case PseudoEmpty:
		return n.ChildCount() == 0
	case PseudoHost:
		_, hasParent := n.Parent()
		return !hasParent
	case PseudoNthChild:
		return matchesNth(pc.A, pc.B, n.ChildIndex())
	case PseudoNthOfType:
		return matchesNth(pc.A, pc.B, n.ChildIndex())
	case PseudoNot:
		for _, f := range pc.Not {
			if matchFragment(f, n) {
				return false
			}
		}
		return true
	}
	return false
}

// matchesNth reports whether index (1-based) satisfies index = a*k + b
// for some integer k >= 0.
func matchesNth(a, b, index int) bool {
	if a == 0 {
		return index == b
	}
	k := index - b
	if k%a != 0 {
		return false
	}
	return k/a >= 0
}

func containsStr(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}
