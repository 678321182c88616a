package abi

import (
	"fmt"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/wxcss/layout"
	"github.com/npillmayer/wxcss/value"
)

// DumpOptions controls what Dump renders, per §4.6's "dump-to-string
// (options: recursive, include-layout, include-style)".
type DumpOptions struct {
	Recursive     bool
	IncludeLayout bool
	IncludeStyle  bool
}

// Dump renders h (and, if Recursive, its whole subtree) as an indented
// tree, grounded on the teacher's pack-mate btree.printTree/ppt pattern
// (persistent/btree/tree_test.go) over github.com/xlab/treeprint rather
// than the teacher's own GraphViz dumper (domdbg), since a host-facing
// debug string needs to be read in a log line, not rendered by `dot`.
func Dump(h Handle, opts DumpOptions) (string, error) {
	n, err := resolve(h)
	if err != nil {
		return "", err
	}
	root := tp.New()
	dumpNode(root, h, n, opts)
	return root.String(), nil
}

func dumpNode(p tp.Tree, h Handle, n *layout.LayoutNode, opts DumpOptions) {
	label := nodeLabel(h, n, opts)
	children := n.Children()
	if !opts.Recursive || len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range children {
		chh, _ := handleOf(ch)
		dumpNode(branch, chh, ch, opts)
	}
}

func nodeLabel(h Handle, n *layout.LayoutNode, opts DumpOptions) string {
	kind := "element"
	if n.Kind() == layout.NodeText {
		kind = "text"
	}
	label := fmt.Sprintf("%s %s", kind, h)
	if opts.IncludeLayout {
		r := n.Result()
		label += fmt.Sprintf(" [%.1f,%.1f %.1fx%.1f]", r.X, r.Y, r.Width, r.Height)
	}
	if opts.IncludeStyle {
		for _, p := range n.Properties() {
			label += fmt.Sprintf(" %s", describeProperty(p))
		}
	}
	return label
}

func describeProperty(p value.Property) string {
	if p.IsCustom() {
		return fmt.Sprintf("%s:%s", p.CustomName, p.RawText)
	}
	if !isLengthID(p.ID) {
		return p.ID.String()
	}
	switch p.Length.Kind {
	case value.LengthAuto:
		return p.ID.String() + ":auto"
	case value.LengthPx:
		return fmt.Sprintf("%s:%gpx", p.ID, p.Length.V)
	case value.LengthRatio:
		return fmt.Sprintf("%s:%g%%", p.ID, p.Length.V*100)
	default:
		return p.ID.String() + ":-"
	}
}

func isLengthID(id value.PropertyID) bool {
	for _, lid := range lengthProperties {
		if lid == id {
			return true
		}
	}
	return false
}
