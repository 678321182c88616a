package layout

import "github.com/npillmayer/wxcss/value"

func (n *LayoutNode) length(id value.PropertyID, def value.Length) value.Length {
	if p, ok := n.style[id]; ok {
		return p.Length
	}
	return def
}

func (n *LayoutNode) display() value.Display {
	if p, ok := n.style[value.PropDisplay]; ok {
		return p.Display
	}
	return value.DisplayBlock()
}

func (n *LayoutNode) position() value.PositionKind {
	if p, ok := n.style[value.PropPosition]; ok {
		return p.Position
	}
	return value.PositionStatic
}

func (n *LayoutNode) boxSizing() value.BoxSizing {
	if p, ok := n.style[value.PropBoxSizing]; ok {
		return p.BoxSizing
	}
	return value.BoxSizingContentBox
}

func (n *LayoutNode) flexDirection() value.FlexDirection {
	if p, ok := n.style[value.PropFlexDirection]; ok {
		return p.FlexDir
	}
	return value.FlexRow
}

func (n *LayoutNode) flexWrap() value.FlexWrap {
	if p, ok := n.style[value.PropFlexWrap]; ok {
		return p.FlexWrap
	}
	return value.NoWrap
}

func (n *LayoutNode) justify(id value.PropertyID, def value.Justify) value.Justify {
	if p, ok := n.style[id]; ok {
		return p.Justify
	}
	return def
}

func (n *LayoutNode) order() int32 {
	if p, ok := n.style[value.PropOrder]; ok {
		if i, ok := p.Number.ToI32(); ok {
			return i
		}
	}
	return 0
}

func (n *LayoutNode) flexFactors() (grow, shrink float32) {
	shrink = 1
	if p, ok := n.style[value.PropFlexGrow]; ok {
		if f, ok := p.Number.ToF32(); ok {
			grow = f
		}
	}
	if p, ok := n.style[value.PropFlexShrink]; ok {
		if f, ok := p.Number.ToF32(); ok {
			shrink = f
		}
	}
	return grow, shrink
}

// fontSize resolves this node's own font-size, falling back to the
// media status's base font size — a stand-in for real font-size
// inheritance, which lives above the layout core.
func (n *LayoutNode) fontSize() float32 {
	fs := n.length(value.PropFontSize, value.Undefined())
	if v, ok := fs.ResolveAgainst(n.mq, 0, n.mq.BaseFontSize); ok {
		return v
	}
	return n.mq.BaseFontSize
}

// resolve resolves l to pixels against basis (the percentage basis)
// and this node's own font size, folding an unresolvable value (auto,
// undefined, a failed calc()) to fallback.
func (n *LayoutNode) resolve(l value.Length, basis, fallback float32) float32 {
	v, ok := n.resolveLength(l, basis)
	if !ok {
		return fallback
	}
	return v
}

// resolveLength is the single funnel every length resolution in this
// package goes through: a LengthHostCalc value has no meaning on its
// own (§4.6) and is handed to the host's installed ResolveCalcFunc
// instead of value.Length.ResolveAgainst.
func (n *LayoutNode) resolveLength(l value.Length, basis float32) (float32, bool) {
	if l.Kind == value.LengthHostCalc {
		if n.resolveCalc == nil {
			return 0, false
		}
		return n.resolveCalc(l.HostHandle, basis)
	}
	return l.ResolveAgainst(n.mq, basis, n.fontSize())
}

func (n *LayoutNode) margin(basis float32) EdgeSizes {
	return EdgeSizes{
		Top:    n.resolve(n.length(value.PropMarginTop, value.Px(0)), basis, 0),
		Right:  n.resolve(n.length(value.PropMarginRight, value.Px(0)), basis, 0),
		Bottom: n.resolve(n.length(value.PropMarginBottom, value.Px(0)), basis, 0),
		Left:   n.resolve(n.length(value.PropMarginLeft, value.Px(0)), basis, 0),
	}
}

func (n *LayoutNode) padding(basis float32) EdgeSizes {
	return EdgeSizes{
		Top:    value.Clamp0(n.resolve(n.length(value.PropPaddingTop, value.Px(0)), basis, 0)),
		Right:  value.Clamp0(n.resolve(n.length(value.PropPaddingRight, value.Px(0)), basis, 0)),
		Bottom: value.Clamp0(n.resolve(n.length(value.PropPaddingBottom, value.Px(0)), basis, 0)),
		Left:   value.Clamp0(n.resolve(n.length(value.PropPaddingLeft, value.Px(0)), basis, 0)),
	}
}

func (n *LayoutNode) border(basis float32) EdgeSizes {
	return EdgeSizes{
		Top:    value.Clamp0(n.resolve(n.length(value.PropBorderTopWidth, value.Px(0)), basis, 0)),
		Right:  value.Clamp0(n.resolve(n.length(value.PropBorderRightWidth, value.Px(0)), basis, 0)),
		Bottom: value.Clamp0(n.resolve(n.length(value.PropBorderBottomWidth, value.Px(0)), basis, 0)),
		Left:   value.Clamp0(n.resolve(n.length(value.PropBorderLeftWidth, value.Px(0)), basis, 0)),
	}
}

// normalFlowChildren returns n's children that participate in n's own
// formatting context: absolutely/fixed positioned children are laid
// out separately, against their containing block, not their parent.
func (n *LayoutNode) normalFlowChildren() []*LayoutNode {
	all := n.Children()
	out := make([]*LayoutNode, 0, len(all))
	for _, ch := range all {
		switch ch.position() {
		case value.PositionAbsolute, value.PositionFixed:
			continue
		}
		out = append(out, ch)
	}
	return out
}
