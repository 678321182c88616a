package selector_test

import (
	"testing"

	"github.com/npillmayer/wxcss/selector"
	"github.com/npillmayer/wxcss/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode is a minimal selector.Node for exercising the matcher without
// pulling in a real DOM tree.
type fakeNode struct {
	tag      string
	id       string
	classes  []string
	attrs    map[string]string
	parent   *fakeNode
	index    int // 1-based position among siblings
	siblings int
	children int
	prev     *fakeNode
}

func (n *fakeNode) TagName() string   { return n.tag }
func (n *fakeNode) ID() string        { return n.id }
func (n *fakeNode) Classes() []string { return n.classes }
func (n *fakeNode) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}
func (n *fakeNode) Parent() (selector.Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}
func (n *fakeNode) PrecedingSibling() (selector.Node, bool) {
	if n.prev == nil {
		return nil, false
	}
	return n.prev, true
}
func (n *fakeNode) ChildIndex() int  { return n.index }
func (n *fakeNode) SiblingCount() int { return n.siblings }
func (n *fakeNode) ChildCount() int  { return n.children }

func parseSel(t *testing.T, src string) selector.Selector {
	t.Helper()
	c := token.NewCursor(src)
	sels, err := selector.ParseList(c)
	require.NoError(t, err)
	require.Len(t, sels, 1)
	return sels[0]
}

func TestMatchTagClassID(t *testing.T) {
	sel := parseSel(t, "div.card#main")
	n := &fakeNode{tag: "div", id: "main", classes: []string{"card"}, index: 1, siblings: 1}
	assert.True(t, selector.Matches(sel, n))

	n2 := &fakeNode{tag: "span", id: "main", classes: []string{"card"}, index: 1, siblings: 1}
	assert.False(t, selector.Matches(sel, n2))
}

func TestMatchDescendantCombinator(t *testing.T) {
	sel := parseSel(t, "section .item")
	parent := &fakeNode{tag: "section", index: 1, siblings: 1}
	child := &fakeNode{tag: "div", classes: []string{"item"}, parent: parent, index: 1, siblings: 1}
	assert.True(t, selector.Matches(sel, child))

	orphan := &fakeNode{tag: "div", classes: []string{"item"}, index: 1, siblings: 1}
	assert.False(t, selector.Matches(sel, orphan))
}

func TestMatchDirectChildCombinator(t *testing.T) {
	sel := parseSel(t, "ul > li")
	ul := &fakeNode{tag: "ul", index: 1, siblings: 1}
	li := &fakeNode{tag: "li", parent: ul, index: 1, siblings: 1}
	assert.True(t, selector.Matches(sel, li))

	grandchild := &fakeNode{tag: "li", parent: &fakeNode{tag: "div", parent: ul}, index: 1, siblings: 1}
	assert.False(t, selector.Matches(sel, grandchild))
}

func TestMatchAttribute(t *testing.T) {
	sel := parseSel(t, `a[href^="https://"]`)
	n := &fakeNode{tag: "a", attrs: map[string]string{"href": "https://example.com"}, index: 1, siblings: 1}
	assert.True(t, selector.Matches(sel, n))

	n2 := &fakeNode{tag: "a", attrs: map[string]string{"href": "http://example.com"}, index: 1, siblings: 1}
	assert.False(t, selector.Matches(sel, n2))
}

func TestMatchNthChild(t *testing.T) {
	sel := parseSel(t, "li:nth-child(2n+1)")
	n1 := &fakeNode{tag: "li", index: 1, siblings: 4}
	n2 := &fakeNode{tag: "li", index: 2, siblings: 4}
	n3 := &fakeNode{tag: "li", index: 3, siblings: 4}
	assert.True(t, selector.Matches(sel, n1))
	assert.False(t, selector.Matches(sel, n2))
	assert.True(t, selector.Matches(sel, n3))
}

func TestMatchNot(t *testing.T) {
	sel := parseSel(t, "li:not(.disabled)")
	ok := &fakeNode{tag: "li", classes: []string{"enabled"}, index: 1, siblings: 1}
	bad := &fakeNode{tag: "li", classes: []string{"disabled"}, index: 1, siblings: 1}
	assert.True(t, selector.Matches(sel, ok))
	assert.False(t, selector.Matches(sel, bad))
}

func TestSpecificityOrdering(t *testing.T) {
	a := parseSel(t, "div")
	b := parseSel(t, ".card")
	c := parseSel(t, "#main")
	assert.True(t, selector.Less(a, b))
	assert.True(t, selector.Less(b, c))
}
