package dom_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/npillmayer/wxcss/dom"
	"github.com/npillmayer/wxcss/selector"
	"github.com/npillmayer/wxcss/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func parseSelector(t *testing.T, src string) selector.Selector {
	t.Helper()
	sels, err := selector.ParseList(token.NewCursor(src))
	require.NoError(t, err)
	require.Len(t, sels, 1)
	return sels[0]
}

func TestQueryAllMatchesByTagAndClass(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<ul class="list">
			<li class="item">one</li>
			<li class="item active">two</li>
			<li>three</li>
		</ul>
	</body></html>`)

	sel := parseSelector(t, "li.item")
	got := dom.QueryAll(doc, sel)
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].FirstChild.Data)
	assert.Equal(t, "two", got[1].FirstChild.Data)
}

func TestQueryAllDescendantCombinator(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<div id="a"><span>x</span></div>
		<span>y</span>
	</body></html>`)

	sel := parseSelector(t, "#a span")
	got := dom.QueryAll(doc, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].FirstChild.Data)
}

func TestQueryAllFirstChildPseudoClass(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<p>first</p>
		<p>second</p>
	</body></html>`)

	sel := parseSelector(t, "p:first-child")
	got := dom.QueryAll(doc, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].FirstChild.Data)
}

func TestNodeWrapNilIsSafe(t *testing.T) {
	n := dom.Wrap(nil)
	assert.Equal(t, "", n.TagName())
	assert.Equal(t, "", n.ID())
	assert.Nil(t, n.Classes())
	_, ok := n.Parent()
	assert.False(t, ok)
}

func TestQueryAllCascadiaAgreesWithSelector(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<a href="/x" class="link">one</a>
		<a href="/y">two</a>
	</body></html>`)

	sel := parseSelector(t, "a.link")
	viaSelector := dom.QueryAll(doc, sel)

	viaCascadia, err := dom.QueryAllCascadia(doc, "a.link")
	require.NoError(t, err)

	require.Len(t, viaSelector, 1)
	require.Len(t, viaCascadia, 1)
	assert.Same(t, viaSelector[0], viaCascadia[0])
}
