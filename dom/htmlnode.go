package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/wxcss/selector"
)

// Node wraps an *html.Node so it satisfies selector.Node — the
// decoupling point the selector package's matcher was designed
// around (see selector/matcher.go's Node contract). The teacher's
// w3cdom.Node played the analogous role against its own styledtree;
// here the wrapping is thinner because html.Node already carries its
// own Parent/FirstChild/NextSibling/PrevSibling pointers, so there is
// no separate tree package to bridge.
type Node struct {
	n *html.Node
}

var _ selector.Node = Node{}

// Wrap returns a selector.Node view of an html.Node, or the zero Node
// if n is nil.
func Wrap(n *html.Node) Node {
	return Node{n: n}
}

// HTMLNode returns the underlying html.Node.
func (w Node) HTMLNode() *html.Node { return w.n }

func (w Node) TagName() string {
	if w.n == nil || w.n.Type != html.ElementNode {
		return ""
	}
	return w.n.Data
}

func (w Node) ID() string {
	v, _ := w.Attr("id")
	return v
}

func (w Node) Classes() []string {
	v, ok := w.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

func (w Node) Attr(name string) (string, bool) {
	if w.n == nil {
		return "", false
	}
	for _, a := range w.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Parent returns the nearest ancestor that is itself an element,
// skipping over the document node so matching never has to special
// case it.
func (w Node) Parent() (selector.Node, bool) {
	if w.n == nil {
		return nil, false
	}
	for p := w.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return Node{p}, true
		}
	}
	return nil, false
}

// PrecedingSibling returns the nearest preceding sibling that is
// itself an element, skipping over text/comment nodes.
func (w Node) PrecedingSibling() (selector.Node, bool) {
	if w.n == nil {
		return nil, false
	}
	for s := w.n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return Node{s}, true
		}
	}
	return nil, false
}

// ChildIndex returns w's 1-based position among its parent's element
// children, per the :nth-child/:first-child/:last-child family.
func (w Node) ChildIndex() int {
	siblings := w.elementSiblings()
	for i, s := range siblings {
		if s == w.n {
			return i + 1
		}
	}
	return 1
}

// SiblingCount returns the number of element siblings (including w
// itself) under w's parent.
func (w Node) SiblingCount() int {
	return len(w.elementSiblings())
}

// ChildCount returns the number of w's element children, for :empty.
func (w Node) ChildCount() int {
	if w.n == nil {
		return 0
	}
	n := 0
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n++
		}
	}
	return n
}

func (w Node) elementSiblings() []*html.Node {
	if w.n == nil || w.n.Parent == nil {
		return []*html.Node{w.n}
	}
	var out []*html.Node
	for c := w.n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// QueryAll walks the subtree rooted at root and returns every element
// node that sel matches, in document order.
func QueryAll(root *html.Node, sel selector.Selector) []*html.Node {
	if root == nil {
		return nil
	}
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && selector.Matches(sel, Node{n}) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// QueryAllCascadia is a convenience escape hatch for ad-hoc raw CSS
// selector strings that never flow through the typed sheet pipeline
// (e.g. a one-off debug query), using cascadia rather than re-deriving
// selector text parsing that selector.ParseList already owns for
// stylesheet rules.
func QueryAllCascadia(root *html.Node, cssSelector string) ([]*html.Node, error) {
	if root == nil {
		return nil, errNilNode
	}
	sel, err := cascadia.Compile(cssSelector)
	if err != nil {
		tracer().Errorf("dom: compiling cascadia selector %q: %v", cssSelector, err)
		return nil, err
	}
	return sel.MatchAll(root), nil
}
