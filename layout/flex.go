package layout

import (
	"sort"

	"github.com/npillmayer/wxcss/value"
)

// flexItem is one flex child's working state across the algorithm's
// base-size, grow/shrink and positioning steps.
type flexItem struct {
	node      *LayoutNode
	margin    EdgeSizes
	grow      float32
	shrink    float32
	base      float32 // hypothetical main size before grow/shrink
	mainSize  float32 // resolved main size
	crossSize float32
	frozen    bool
	result    Result
}

type flexLine struct {
	items     []*flexItem
	crossSize float32
}

// layoutFlex implements the flex formatting algorithm: determine the
// main/cross axis from flex-direction; compute each item's base size
// from flex-basis/main-axis-size/intrinsic size; distribute free space
// via flex-grow/flex-shrink, iterating to a fixed point as items hit
// their own min/max clamp; size the cross axis (stretch, unless
// align-items/align-self says otherwise); wrap into lines; then
// position items per justify-content/align-items/align-self, having
// already sorted by `order`. align-content is not consulted: lines are
// stacked one after another from the cross-start edge.
func (n *LayoutNode) layoutFlex(cb Constraints, containingW, containingH float32, dry bool) (Size, Result) {
	sizing := n.boxSizing()
	margin := n.margin(containingW)
	border := n.border(containingW)
	padding := n.padding(containingW)
	borderPadding := border.Left + border.Right + padding.Left + padding.Right
	borderPaddingV := border.Top + border.Bottom + padding.Top + padding.Bottom

	contentWidth := n.resolveContainerWidth(cb, containingW, sizing, borderPadding)

	dir := n.flexDirection()
	row := dir == value.FlexRow || dir == value.FlexRowReverse
	reverse := dir == value.FlexRowReverse || dir == value.FlexColumnReverse

	var mainSize, crossAvailable float32
	var explicitMain, explicitCross bool
	heightProp := n.length(value.PropHeight, value.Auto())
	if row {
		mainSize = contentWidth
		explicitMain = true
		if !heightProp.IsAuto() {
			if h, ok := n.resolveLength(heightProp, containingH); ok {
				crossAvailable = h
				explicitCross = true
			}
		}
		if !explicitCross {
			crossAvailable = value.Inf
		}
	} else {
		crossAvailable = contentWidth
		explicitCross = true
		if !heightProp.IsAuto() {
			if h, ok := n.resolveLength(heightProp, containingH); ok {
				mainSize = h
				explicitMain = true
			}
		}
		if !explicitMain {
			mainSize = value.Inf
		}
	}

	children := n.normalFlowChildren()
	sort.SliceStable(children, func(i, j int) bool { return children[i].order() < children[j].order() })

	items := make([]*flexItem, 0, len(children))
	for _, ch := range children {
		it := &flexItem{node: ch, margin: ch.margin(contentWidth)}
		it.grow, it.shrink = ch.flexFactors()
		it.base = ch.flexBaseSize(row, contentWidth, containingH)
		items = append(items, it)
	}

	lines := n.wrapIntoLines(items, mainSize, row)

	var usedMain, usedCross float32
	for _, line := range lines {
		lm := n.resolveLineMain(line, mainSize, row)
		line.crossSize = n.resolveLineCross(line, row, crossAvailable, explicitCross, dry, contentWidth, containingH)
		if lm > usedMain {
			usedMain = lm
		}
		usedCross += line.crossSize
	}
	if !explicitCross {
		crossAvailable = usedCross
	}
	if !explicitMain {
		mainSize = usedMain
	}

	justifyContent := n.justify(value.PropJustifyContent, value.JustifyFlexStart)
	var crossOffset float32
	for _, line := range lines {
		n.positionLine(line, mainSize, line.crossSize, row, reverse, justifyContent, crossOffset, dry)
		crossOffset += line.crossSize
	}

	var finalContentWidth, finalContentHeight float32
	if row {
		finalContentWidth, finalContentHeight = mainSize, crossAvailable
	} else {
		finalContentWidth, finalContentHeight = crossAvailable, mainSize
	}
	finalContentWidth = n.clampPixels(finalContentWidth, containingW, value.PropMinWidth, value.PropMaxWidth, sizing, borderPadding)
	finalContentHeight = n.clampPixels(finalContentHeight, containingH, value.PropMinHeight, value.PropMaxHeight, sizing, borderPaddingV)

	res := Result{
		ContentWidth:  finalContentWidth,
		ContentHeight: finalContentHeight,
		Width:         finalContentWidth + borderPadding,
		Height:        finalContentHeight + borderPaddingV,
		Margin:        margin,
		Border:        border,
		Padding:       padding,
	}
	return Size{Width: res.Width, Height: res.Height}, res
}

// flexBaseSize resolves an item's hypothetical main size: flex-basis if
// not auto, else the main-axis size property (width for a row
// container, height for a column one), else its own max-content size
// along the main axis.
func (n *LayoutNode) flexBaseSize(row bool, containingW, containingH float32) float32 {
	basis := containingW
	mainProp := value.PropWidth
	if !row {
		basis = containingH
		mainProp = value.PropHeight
	}
	if fb := n.length(value.PropFlexBasis, value.Auto()); !fb.IsAuto() {
		if v, ok := n.resolveLength(fb, basis); ok {
			return value.Clamp0(v)
		}
	}
	if sp := n.length(mainProp, value.Auto()); !sp.IsAuto() {
		if v, ok := n.resolveLength(sp, basis); ok {
			return value.Clamp0(v)
		}
	}
	if row {
		return n.MaxContentWidth()
	}
	cb := Constraints{MaxWidth: containingW, WidthMode: ModeExactly, MaxHeight: value.Inf, HeightMode: ModeUndefined}
	size, _ := n.layout(cb, containingW, value.Inf, true)
	return size.Height
}

func (n *LayoutNode) wrapIntoLines(items []*flexItem, mainSize float32, row bool) []*flexLine {
	if n.flexWrap() == value.NoWrap || value.IsInfinite(mainSize) {
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	var cur []*flexItem
	var used float32
	for _, it := range items {
		var itemMain float32
		if row {
			itemMain = it.base + it.margin.Left + it.margin.Right
		} else {
			itemMain = it.base + it.margin.Top + it.margin.Bottom
		}
		if len(cur) > 0 && used+itemMain > mainSize {
			lines = append(lines, &flexLine{items: cur})
			cur = nil
			used = 0
		}
		cur = append(cur, it)
		used += itemMain
	}
	if len(cur) > 0 {
		lines = append(lines, &flexLine{items: cur})
	}
	if n.flexWrap() == value.WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}

// resolveLineMain runs the grow/shrink free-space distribution,
// iterating to a fixed point as items freeze against their own
// min/max-size clamp, and returns the line's total main-axis extent
// (items plus their margins).
func (n *LayoutNode) resolveLineMain(line *flexLine, mainSize float32, row bool) float32 {
	var marginSum, baseSum float32
	for _, it := range line.items {
		if row {
			marginSum += it.margin.Left + it.margin.Right
		} else {
			marginSum += it.margin.Top + it.margin.Bottom
		}
		it.mainSize = it.base
		it.frozen = false
		baseSum += it.base
	}
	if value.IsInfinite(mainSize) {
		var total float32
		for _, it := range line.items {
			total += it.mainSize
		}
		return total + marginSum
	}

	freeSpace := mainSize - baseSum - marginSum
	grow := freeSpace > 0
	for pass := 0; pass <= len(line.items); pass++ {
		var factorSum float32
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			f := it.shrink
			if grow {
				f = it.grow
			}
			if f > 0 {
				factorSum += f
			} else {
				it.frozen = true
			}
		}
		if factorSum == 0 {
			break
		}
		violated := false
		var remaining float32
		for _, it := range line.items {
			if it.frozen {
				remaining += it.mainSize
				continue
			}
			f := it.shrink
			if grow {
				f = it.grow
			}
			wanted := value.Clamp0(it.base + freeSpace*(f/factorSum))
			clamped := it.node.clampMainAxis(wanted, row)
			it.mainSize = clamped
			if clamped != wanted {
				it.frozen = true
				violated = true
			}
			remaining += clamped
		}
		freeSpace = mainSize - remaining - marginSum
		if !violated {
			break
		}
	}
	var total float32
	for _, it := range line.items {
		total += it.mainSize
	}
	return total + marginSum
}

// resolveLineCross lays out every item at its resolved main size to
// discover its natural cross size, honoring align-items/align-self
// stretch only when the container's cross size is itself definite.
func (n *LayoutNode) resolveLineCross(line *flexLine, row bool, crossAvailable float32, explicitCross, dry bool, contentWidth, containingH float32) float32 {
	alignItems := n.justify(value.PropAlignItems, value.JustifyStretch)
	var maxCross float32
	for _, it := range line.items {
		align := alignItems
		if a, ok := it.node.style[value.PropAlignSelf]; ok {
			align = a.Justify
		}
		var cc Constraints
		if row {
			cc = Constraints{MaxWidth: it.mainSize, WidthMode: ModeExactly}
			if explicitCross && align == value.JustifyStretch && !value.IsInfinite(crossAvailable) {
				cc.MaxHeight, cc.HeightMode = crossAvailable, ModeExactly
			} else {
				cc.MaxHeight, cc.HeightMode = value.Inf, ModeUndefined
			}
		} else {
			cc = Constraints{MaxHeight: it.mainSize, HeightMode: ModeExactly}
			if align == value.JustifyStretch {
				cc.MaxWidth, cc.WidthMode = contentWidth, ModeExactly
			} else {
				cc.MaxWidth, cc.WidthMode = value.Inf, ModeUndefined
			}
		}
		size, res := it.node.layout(cc, contentWidth, containingH, dry)
		it.result = res
		if row {
			it.crossSize = size.Height
		} else {
			it.crossSize = size.Width
		}
		if it.crossSize > maxCross {
			maxCross = it.crossSize
		}
	}
	if explicitCross && !value.IsInfinite(crossAvailable) {
		return crossAvailable
	}
	return maxCross
}

// positionLine places a line's items along the main axis per
// justify-content and along the cross axis per align-items/align-self,
// writing each item's Result.X/Y when dry is false.
func (n *LayoutNode) positionLine(line *flexLine, mainSize, lineCross float32, row, reverse bool, justify value.Justify, crossOffsetStart float32, dry bool) {
	items := line.items
	if reverse {
		items = append([]*flexItem(nil), items...)
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	var used float32
	for _, it := range items {
		if row {
			used += it.mainSize + it.margin.Left + it.margin.Right
		} else {
			used += it.mainSize + it.margin.Top + it.margin.Bottom
		}
	}
	free := mainSize - used
	if value.IsInfinite(mainSize) {
		free = 0
	}
	count := len(items)
	var start, gap float32
	switch justify {
	case value.JustifyFlexEnd:
		start = free
	case value.JustifyCenter:
		start = free / 2
	case value.JustifySpaceBetween:
		if count > 1 {
			gap = free / float32(count-1)
		}
	case value.JustifySpaceAround:
		if count > 0 {
			gap = free / float32(count)
			start = gap / 2
		}
	case value.JustifySpaceEvenly:
		if count > 0 {
			gap = free / float32(count+1)
			start = gap
		}
	}

	alignItems := n.justify(value.PropAlignItems, value.JustifyStretch)
	pos := start
	for _, it := range items {
		m := it.margin
		var mainOffset, crossOffset float32
		if row {
			mainOffset = pos + m.Left
		} else {
			mainOffset = pos + m.Top
		}
		align := alignItems
		if a, ok := it.node.style[value.PropAlignSelf]; ok {
			align = a.Justify
		}
		switch align {
		case value.JustifyFlexEnd:
			crossOffset = lineCross - it.crossSize
		case value.JustifyCenter:
			crossOffset = (lineCross - it.crossSize) / 2
		default:
			crossOffset = 0
		}
		res := it.result
		if row {
			res.X, res.Y = mainOffset, crossOffsetStart+crossOffset+m.Top
		} else {
			res.X, res.Y = crossOffsetStart+crossOffset+m.Left, mainOffset
		}
		if !dry {
			it.node.result = res
			it.node.dirty = false
		}
		if row {
			pos += it.mainSize + m.Left + m.Right + gap
		} else {
			pos += it.mainSize + m.Top + m.Bottom + gap
		}
	}
}
