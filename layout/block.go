package layout

import "github.com/npillmayer/wxcss/value"

// layoutBlock implements the block formatting algorithm: resolve this
// box's own margin/border/padding against the containing block, then
// its width (auto/percentage/border-box subtraction, clamped by
// min/max-width); lay out normal-flow children top to bottom, each
// against this box's content width; then resolve height the same way,
// with auto falling back to the sum of children.
func (n *LayoutNode) layoutBlock(cb Constraints, containingW, containingH float32, dry bool) (Size, Result) {
	sizing := n.boxSizing()
	margin := n.margin(containingW)
	border := n.border(containingW)
	padding := n.padding(containingW)
	borderPadding := border.Left + border.Right + padding.Left + padding.Right
	borderPaddingV := border.Top + border.Bottom + padding.Top + padding.Bottom

	contentWidth := n.resolveContainerWidth(cb, containingW, sizing, borderPadding)

	var y float32
	for _, ch := range n.normalFlowChildren() {
		m := ch.margin(contentWidth)
		cw := value.Clamp0(contentWidth - m.Left - m.Right)
		cc := Constraints{MaxWidth: cw, WidthMode: ModeExactly, MaxHeight: value.Inf, HeightMode: ModeUndefined}
		childSize, childRes := ch.layout(cc, contentWidth, value.Inf, dry)
		childRes.X = m.Left
		childRes.Y = y + m.Top
		if !dry {
			ch.result = childRes
			ch.dirty = false
		}
		y += m.Top + childSize.Height + m.Bottom
	}

	contentHeight := n.resolveBoxHeight(y, containingH, sizing, borderPaddingV)

	res := Result{
		ContentWidth:  contentWidth,
		ContentHeight: contentHeight,
		Width:         contentWidth + borderPadding,
		Height:        contentHeight + borderPaddingV,
		Margin:        margin,
		Border:        border,
		Padding:       padding,
	}
	return Size{Width: res.Width, Height: res.Height}, res
}
