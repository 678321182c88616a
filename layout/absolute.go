package layout

import "github.com/npillmayer/wxcss/value"

// resolveAbsoluteDescendants runs after normal flow has been laid out,
// walking the whole subtree to find absolutely/fixed positioned nodes
// (normalFlowChildren skipped them during block/flex layout) and
// resolving each against its containing block.
func (n *LayoutNode) resolveAbsoluteDescendants() {
	n.walkAbsolute(n)
}

func (n *LayoutNode) walkAbsolute(root *LayoutNode) {
	for _, ch := range n.Children() {
		switch ch.position() {
		case value.PositionAbsolute, value.PositionFixed:
			containing := n.nearestPositionedAncestor(ch.position())
			if containing == nil {
				containing = root
			}
			ch.layoutAbsolute(containing)
		}
		ch.walkAbsolute(root)
	}
}

// nearestPositionedAncestor finds the containing block for an
// absolutely (or fixed) positioned descendant of n: for `fixed`, the
// root stands in for the viewport; for `absolute`, the nearest
// ancestor (starting at n, the element's own parent) whose position is
// not static, or nil if none exists (the caller falls back to root).
func (n *LayoutNode) nearestPositionedAncestor(pos value.PositionKind) *LayoutNode {
	if pos == value.PositionFixed {
		return nil
	}
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.position() != value.PositionStatic {
			return cur
		}
	}
	return nil
}

// layoutAbsolute resolves ch's geometry against containing's content
// box, applying the CSS auto-margin distribution rules for
// left/right/top/bottom: an offset pins that edge; both offsets on an
// axis (with width/height auto) solve the size; neither offset places
// the box at the containing block's content-box origin (plus its
// margin) with a shrink-to-fit size.
func (ch *LayoutNode) layoutAbsolute(containing *LayoutNode) {
	cw := containing.result.ContentWidth
	chh := containing.result.ContentHeight

	sizing := ch.boxSizing()
	margin := ch.margin(cw)
	border := ch.border(cw)
	padding := ch.padding(cw)
	borderPadding := border.Left + border.Right + padding.Left + padding.Right
	borderPaddingV := border.Top + border.Bottom + padding.Top + padding.Bottom

	left, hasLeft := ch.edgeValue(value.PropLeft, cw)
	right, hasRight := ch.edgeValue(value.PropRight, cw)
	top, hasTop := ch.edgeValue(value.PropTop, chh)
	bottom, hasBottom := ch.edgeValue(value.PropBottom, chh)

	widthAuto := ch.length(value.PropWidth, value.Auto()).IsAuto()
	var contentWidth float32
	if !widthAuto {
		contentWidth = ch.resolveBoxWidth(cw, cw, sizing, borderPadding)
	}

	var x float32
	switch {
	case hasLeft && hasRight && widthAuto:
		contentWidth = value.Clamp0(cw - left - right - borderPadding - margin.Left - margin.Right)
		x = left + margin.Left
	case hasLeft:
		if widthAuto {
			contentWidth = ch.shrinkToFit(value.Clamp0(cw - left))
		}
		x = left + margin.Left
	case hasRight:
		if widthAuto {
			contentWidth = ch.shrinkToFit(value.Clamp0(cw - right))
		}
		x = cw - right - contentWidth - borderPadding - margin.Right
	default:
		if widthAuto {
			contentWidth = ch.shrinkToFit(cw)
		}
		x = margin.Left
	}
	contentWidth = ch.clampPixels(contentWidth, cw, value.PropMinWidth, value.PropMaxWidth, sizing, borderPadding)

	cc := Constraints{MaxWidth: contentWidth, WidthMode: ModeExactly, MaxHeight: value.Inf, HeightMode: ModeUndefined}
	_, res := ch.layout(cc, cw, chh, false)

	var y float32
	switch {
	case hasTop:
		y = top + margin.Top
	case hasBottom:
		y = chh - bottom - res.Height - margin.Bottom
	default:
		y = margin.Top
	}

	res.X, res.Y = x, y
	ch.result = res
	ch.dirty = false
	_ = borderPaddingV
}

func (ch *LayoutNode) edgeValue(id value.PropertyID, basis float32) (float32, bool) {
	p, ok := ch.style[id]
	if !ok || p.Length.IsAuto() || p.Length.IsUndefined() {
		return 0, false
	}
	return ch.resolveLength(p.Length, basis)
}
