package layout

import "github.com/npillmayer/wxcss/value"

// MaxContentWidth is the width n would take with no width constraint
// at all: a dry, unconstrained layout pass.
func (n *LayoutNode) MaxContentWidth() float32 {
	cb := Constraints{MaxWidth: value.Inf, WidthMode: ModeUndefined, MaxHeight: value.Inf, HeightMode: ModeUndefined}
	size, _ := n.layout(cb, value.Inf, value.Inf, true)
	return size.Width
}

// MinContentWidth is the narrowest width n can take without its
// content overflowing. Without a text-wrapping model, a measure
// callback is asked directly (AtMost 0 is the conventional "how narrow
// can you get" probe); a block container can never be narrower than
// its widest normal-flow child.
func (n *LayoutNode) MinContentWidth() float32 {
	if n.measure != nil {
		size := n.measure(Constraints{WidthMode: ModeAtMost, MaxWidth: 0, HeightMode: ModeUndefined, MaxHeight: value.Inf})
		return size.Width
	}
	var widest float32
	for _, ch := range n.normalFlowChildren() {
		m := ch.margin(0)
		w := ch.MinContentWidth() + m.Left + m.Right
		if w > widest {
			widest = w
		}
	}
	border := n.border(0)
	padding := n.padding(0)
	return widest + border.Left + border.Right + padding.Left + padding.Right
}

// shrinkToFit implements CSS's "shrink-to-fit" width rule for
// auto-width boxes outside normal block flow (absolutely positioned
// boxes, floats): clamp the max-content width into
// [min-content, available].
func (n *LayoutNode) shrinkToFit(available float32) float32 {
	if value.IsInfinite(available) {
		return n.MaxContentWidth()
	}
	maxC := n.MaxContentWidth()
	minC := n.MinContentWidth()
	w := available
	if maxC < w {
		w = maxC
	}
	if w < minC {
		w = minC
	}
	return w
}
