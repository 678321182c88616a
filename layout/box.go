package layout

import "github.com/npillmayer/wxcss/value"

// resolveContainerWidth is resolveBoxWidth for a node that owns normal-
// flow children (a block or flex container): when asked for its width
// under a non-exact mode (an intrinsic-sizing probe, not normal block
// flow) and width is auto, "fill available" is meaningless — available
// is often +Inf — so it shrink-wraps to its widest child's max-content
// width instead.
func (n *LayoutNode) resolveContainerWidth(cb Constraints, containingW float32, sizing value.BoxSizing, borderPadding float32) float32 {
	widthProp := n.length(value.PropWidth, value.Auto())
	if widthProp.IsAuto() && cb.WidthMode != ModeExactly {
		var widest float32
		for _, ch := range n.normalFlowChildren() {
			m := ch.margin(0)
			w := ch.MaxContentWidth() + m.Left + m.Right
			if w > widest {
				widest = w
			}
		}
		return n.clampPixels(widest, containingW, value.PropMinWidth, value.PropMaxWidth, sizing, borderPadding)
	}
	return n.resolveBoxWidth(cb.MaxWidth, containingW, sizing, borderPadding)
}

// resolveBoxWidth resolves the `width` property to a content-box pixel
// width: auto fills the available border-box width offered by the
// caller; a specified length is read as content-width or border-box
// width depending on box-sizing; either way the result is clamped by
// min-width/max-width (themselves box-sizing aware).
func (n *LayoutNode) resolveBoxWidth(available, containingW float32, sizing value.BoxSizing, borderPadding float32) float32 {
	widthProp := n.length(value.PropWidth, value.Auto())
	var contentWidth float32
	if widthProp.IsAuto() {
		contentWidth = value.Clamp0(available - borderPadding)
	} else if w, ok := n.resolveLength(widthProp, containingW); ok {
		if sizing == value.BoxSizingBorderBox {
			contentWidth = value.Clamp0(w - borderPadding)
		} else {
			contentWidth = value.Clamp0(w)
		}
	} else {
		contentWidth = value.Clamp0(available - borderPadding)
	}
	return n.clampPixels(contentWidth, containingW, value.PropMinWidth, value.PropMaxWidth, sizing, borderPadding)
}

// resolveBoxHeight resolves `height` the same way resolveBoxWidth
// resolves `width`, except auto always falls back to childrenHeight
// (the sum of the block children already laid out), and a percentage
// height against an indefinite containing height behaves as auto, per
// the block algorithm's height rule.
func (n *LayoutNode) resolveBoxHeight(childrenHeight, containingH float32, sizing value.BoxSizing, borderPaddingV float32) float32 {
	heightProp := n.length(value.PropHeight, value.Auto())
	var contentHeight float32
	switch {
	case heightProp.IsAuto():
		contentHeight = childrenHeight
	case heightProp.Kind == value.LengthRatio && value.IsInfinite(containingH):
		contentHeight = childrenHeight
	default:
		if h, ok := n.resolveLength(heightProp, containingH); ok {
			if sizing == value.BoxSizingBorderBox {
				contentHeight = value.Clamp0(h - borderPaddingV)
			} else {
				contentHeight = value.Clamp0(h)
			}
		} else {
			contentHeight = childrenHeight
		}
	}
	return n.clampPixels(contentHeight, containingH, value.PropMinHeight, value.PropMaxHeight, sizing, borderPaddingV)
}

// clampPixels clamps an already-resolved content-box dimension v by
// the min/max property pair named by minID/maxID, converting each
// bound to a content-box figure first when sizing is border-box (since
// min-width/max-width etc. follow the box's own box-sizing).
func (n *LayoutNode) clampPixels(v, basis float32, minID, maxID value.PropertyID, sizing value.BoxSizing, borderPadding float32) float32 {
	if p, ok := n.style[minID]; ok && !p.Length.IsUndefined() && !p.Length.IsAuto() {
		if m, ok := n.resolveLength(p.Length, basis); ok {
			if sizing == value.BoxSizingBorderBox {
				m = value.Clamp0(m - borderPadding)
			}
			if v < m {
				v = m
			}
		}
	}
	if p, ok := n.style[maxID]; ok && !p.Length.IsUndefined() {
		if m, ok := n.resolveLength(p.Length, basis); ok && !value.IsInfinite(m) {
			if sizing == value.BoxSizingBorderBox {
				m = value.Clamp0(m - borderPadding)
			}
			if v > m {
				v = m
			}
		}
	}
	return value.Clamp0(v)
}

func (n *LayoutNode) clampMainAxis(v float32, row bool) float32 {
	minID, maxID := value.PropMinWidth, value.PropMaxWidth
	if !row {
		minID, maxID = value.PropMinHeight, value.PropMaxHeight
	}
	return n.clampPixels(v, 0, minID, maxID, n.boxSizing(), 0)
}

// boxFromContent builds the Result for a leaf sized by its measure
// callback: the callback reports content size, and the usual
// margin/border/padding edges are layered around it.
func (n *LayoutNode) boxFromContent(contentW, contentH, containingW float32) Result {
	m := n.margin(containingW)
	b := n.border(containingW)
	p := n.padding(containingW)
	return Result{
		ContentWidth:  value.Clamp0(contentW),
		ContentHeight: value.Clamp0(contentH),
		Width:         value.Clamp0(contentW) + p.Left + p.Right + b.Left + b.Right,
		Height:        value.Clamp0(contentH) + p.Top + p.Bottom + b.Top + b.Bottom,
		Margin:        m,
		Border:        b,
		Padding:       p,
	}
}
