package layout

import "github.com/npillmayer/wxcss/value"

// Calculate runs a full layout pass, writing geometry into n and every
// descendant it lays out, and clearing their dirty flags.
func (n *LayoutNode) Calculate(availableWidth, availableHeight float32) {
	n.calculate(availableWidth, availableHeight, availableWidth, availableHeight, false)
}

// CalculateDry runs the same algorithm without writing any geometry,
// returning only the size n would resolve to.
func (n *LayoutNode) CalculateDry(availableWidth, availableHeight float32) Size {
	return n.calculate(availableWidth, availableHeight, availableWidth, availableHeight, true)
}

// CalculateWithContainingSize is Calculate with the percentage-
// resolution containing block decoupled from the available size (for
// laying out a node whose available space and percentage basis
// genuinely differ, e.g. an intrinsic-sizing probe).
func (n *LayoutNode) CalculateWithContainingSize(availableWidth, availableHeight, containingWidth, containingHeight float32) {
	n.calculate(availableWidth, availableHeight, containingWidth, containingHeight, false)
}

func (n *LayoutNode) CalculateDryWithContainingSize(availableWidth, availableHeight, containingWidth, containingHeight float32) Size {
	return n.calculate(availableWidth, availableHeight, containingWidth, containingHeight, true)
}

func (n *LayoutNode) calculate(availW, availH, containingW, containingH float32, dry bool) Size {
	cb := Constraints{
		MaxWidth: availW, WidthMode: modeFor(availW),
		MaxHeight: availH, HeightMode: modeFor(availH),
	}
	size, res := n.layout(cb, containingW, containingH, dry)
	if !dry {
		res.X, res.Y = 0, 0
		n.result = res
		n.dirty = false
		n.resolveAbsoluteDescendants()
	}
	return size
}

func modeFor(v float32) MeasureMode {
	if value.IsInfinite(v) {
		return ModeUndefined
	}
	return ModeExactly
}

// layout runs the formatting algorithm appropriate to n's display,
// consulting (and, once computed, populating) n's own result cache. It
// never writes n.result or clears n.dirty itself — see node.go's
// MarkDirty/dirty contract: that's the caller's job, because only the
// caller knows n's position within its parent.
func (n *LayoutNode) layout(cb Constraints, containingW, containingH float32, dry bool) (Size, Result) {
	key := cacheKey{
		availWidth: cb.MaxWidth, availHeight: cb.MaxHeight,
		widthMode: cb.WidthMode, heightMode: cb.HeightMode,
		containingWidth: containingW, containingHeight: containingH, dry: dry,
	}
	if !n.dirty {
		if e, ok := n.lookupCache(key); ok {
			return e.size, e.result
		}
	}

	var size Size
	var res Result
	switch {
	case n.measure != nil:
		cb.MaxContentWidth = containingW
		cb.MaxContentHeight = containingH
		m := n.measure(cb)
		res = n.boxFromContent(m.Width, m.Height, containingW)
		size = Size{Width: res.Width, Height: res.Height}
	case n.display().Inner == value.DisplayInnerFlex:
		size, res = n.layoutFlex(cb, containingW, containingH, dry)
	default:
		size, res = n.layoutBlock(cb, containingW, containingH, dry)
	}
	if n.baseline != nil {
		res.Baseline = n.baseline(res.Width, res.Height)
	}
	n.storeCache(cacheEntry{key: key, size: size, result: res})
	return size, res
}
