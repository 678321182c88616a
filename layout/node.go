package layout

import (
	"github.com/npillmayer/wxcss/tree"
	"github.com/npillmayer/wxcss/value"
)

// NodeKind discriminates a LayoutNode: an Element participates in its
// parent's formatting context and runs a formatting algorithm over its
// own children; a Text leaf has no children and is always sized
// through its measure callback (or, absent one, collapses to zero).
type NodeKind uint8

const (
	NodeElement NodeKind = iota
	NodeText
)

// MeasureFunc sizes a leaf the layout core has no intrinsic size for
// (text runs, images, embedded host views), given the constraints the
// solver computed for it.
type MeasureFunc func(Constraints) Size

// BaselineFunc reports a box's baseline offset from its top edge. The
// solver calls it after each layout of the node and stores the answer
// in Result.Baseline; flex cross-axis placement does not read it.
type BaselineFunc func(width, height float32) float32

// ResolveCalcFunc resolves a host-opaque calc() handle against a
// percentage basis, for style values the ABI boundary represents as an
// unevaluated handle rather than an already-resolved Length.
type ResolveCalcFunc func(handle uint64, basis float32) (float32, bool)

// LayoutNode is one node of the retained layout tree: style overrides,
// a layout-result cache, and the callback slots a host installs to
// size/position content the solver itself has no model for.
type LayoutNode struct {
	kind NodeKind
	self *tree.Node[*LayoutNode]

	style map[value.PropertyID]value.Property
	mq    value.MediaQueryStatus

	dirty         bool
	dirtyCallback func(*LayoutNode)

	measure     MeasureFunc
	baseline    BaselineFunc
	resolveCalc ResolveCalcFunc

	host any

	cache  []cacheEntry
	result Result
}

// New creates a layout node of the given kind. It starts dirty: no
// layout has ever been computed for it.
func New(kind NodeKind) *LayoutNode {
	n := &LayoutNode{kind: kind, style: make(map[value.PropertyID]value.Property), dirty: true}
	n.self = tree.NewNode[*LayoutNode](n)
	return n
}

func (n *LayoutNode) Kind() NodeKind { return n.kind }

// AppendChild adds ch as n's last child and marks n (and its
// ancestors) dirty.
func (n *LayoutNode) AppendChild(ch *LayoutNode) {
	n.self.AddChild(ch.self)
	ch.MarkDirty()
	n.MarkDirty()
}

// InsertChildAt inserts ch at position i, shifting later children.
func (n *LayoutNode) InsertChildAt(i int, ch *LayoutNode) {
	n.self.InsertChildAt(i, ch.self)
	ch.MarkDirty()
	n.MarkDirty()
}

// InsertBefore inserts ch immediately before ref. If ref is nil or not
// currently a child of n, ch is appended instead.
func (n *LayoutNode) InsertBefore(ch, ref *LayoutNode) {
	idx := -1
	if ref != nil {
		idx = n.self.IndexOfChild(ref.self)
	}
	if idx < 0 {
		n.AppendChild(ch)
		return
	}
	n.InsertChildAt(idx, ch)
}

// RemoveChild isolates ch from n's children. It marks n dirty; ch
// itself is left intact (still a valid, now-rootless tree) in case the
// caller intends to reinsert it elsewhere.
func (n *LayoutNode) RemoveChild(ch *LayoutNode) {
	ch.self.Isolate()
	n.MarkDirty()
}

// Parent returns n's parent, or nil if n is a tree root.
func (n *LayoutNode) Parent() *LayoutNode {
	p := n.self.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

func (n *LayoutNode) ChildCount() int { return len(n.self.Children(true)) }

func (n *LayoutNode) Child(i int) (*LayoutNode, bool) {
	ch, ok := n.self.Child(i)
	if !ok || ch == nil {
		return nil, false
	}
	return ch.Payload, true
}

// Children returns n's children in document order, omitting any
// isolated slots left behind by a removal.
func (n *LayoutNode) Children() []*LayoutNode {
	raw := n.self.Children(true)
	out := make([]*LayoutNode, 0, len(raw))
	for _, r := range raw {
		if r != nil {
			out = append(out, r.Payload)
		}
	}
	return out
}

// SetProperty installs one style property by ID, invalidating n's
// cache and marking it dirty. The ABI's per-longhand setter overloads
// (pixel/percentage/auto/undefined/calc-handle) construct the
// value.Property before calling this; LayoutNode itself only knows
// about the typed value model, not the wire-level overload surface.
func (n *LayoutNode) SetProperty(p value.Property) {
	n.style[p.ID] = p
	n.invalidate()
}

func (n *LayoutNode) ClearProperty(id value.PropertyID) {
	delete(n.style, id)
	n.invalidate()
}

func (n *LayoutNode) invalidate() {
	n.cache = n.cache[:0]
	n.MarkDirty()
}

// SetMediaStatus installs the viewport/font/inset environment style
// values on this subtree resolve against. Because every descendant's
// percentage/viewport-relative lengths may now resolve differently,
// this dirties the whole subtree rather than just n.
func (n *LayoutNode) SetMediaStatus(mq value.MediaQueryStatus) {
	var apply func(*LayoutNode)
	apply = func(x *LayoutNode) {
		x.mq = mq
		for _, ch := range x.Children() {
			apply(ch)
		}
	}
	apply(n)
	n.MarkDirtyPropagateToDescendants()
}

func (n *LayoutNode) SetHost(h any) { n.host = h }
func (n *LayoutNode) Host() any     { return n.host }

func (n *LayoutNode) SetMeasureFunc(f MeasureFunc) {
	n.measure = f
	n.invalidate()
}

func (n *LayoutNode) ClearMeasureFunc() {
	n.measure = nil
	n.invalidate()
}

func (n *LayoutNode) SetBaselineFunc(f BaselineFunc) { n.baseline = f }

func (n *LayoutNode) SetResolveCalcFunc(f ResolveCalcFunc) {
	n.resolveCalc = f
	n.invalidate()
}

func (n *LayoutNode) SetDirtyCallback(f func(*LayoutNode)) { n.dirtyCallback = f }

// MarkDirty invalidates n's cache and bubbles dirtiness to the root.
// It is edge-triggered: a node that is already dirty neither re-fires
// its callback nor re-walks its ancestors, so repeated writes to an
// already-dirty subtree cost O(1), not O(depth) each.
func (n *LayoutNode) MarkDirty() {
	if n.dirty {
		return
	}
	n.dirty = true
	n.cache = n.cache[:0]
	if n.dirtyCallback != nil {
		n.dirtyCallback(n)
	}
	if p := n.Parent(); p != nil {
		p.MarkDirty()
	}
}

// MarkDirtyPropagateToDescendants dirties n and every node beneath it,
// for changes (e.g. a media-status update) whose effect cannot be
// confined to a single node's own cache.
func (n *LayoutNode) MarkDirtyPropagateToDescendants() {
	n.MarkDirty()
	for _, ch := range n.Children() {
		ch.MarkDirtyPropagateToDescendants()
	}
}

func (n *LayoutNode) IsDirty() bool { return n.dirty }

// Result returns the geometry computed by the most recent non-dry
// Calculate* call. It is the zero Result until the first such call.
func (n *LayoutNode) Result() Result { return n.result }

// Properties returns a snapshot of n's own style overrides, for
// debugging/dump purposes (abi.Dump's include-style option).
func (n *LayoutNode) Properties() []value.Property {
	out := make([]value.Property, 0, len(n.style))
	for _, p := range n.style {
		out = append(out, p)
	}
	return out
}
