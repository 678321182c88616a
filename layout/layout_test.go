package layout_test

import (
	"testing"

	"github.com/npillmayer/wxcss/layout"
	"github.com/npillmayer/wxcss/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func px(id value.PropertyID, v float32) value.Property {
	return value.Property{ID: id, Length: value.Px(v)}
}

func edges(n *layout.LayoutNode, v float32, ids ...value.PropertyID) {
	for _, id := range ids {
		n.SetProperty(px(id, v))
	}
}

func TestBlockContentBox(t *testing.T) {
	root := layout.New(layout.NodeElement)
	edges(root, 200, value.PropWidth)
	edges(root, 100, value.PropHeight)
	edges(root, 20, value.PropPaddingTop, value.PropPaddingRight, value.PropPaddingBottom, value.PropPaddingLeft)
	edges(root, 10, value.PropBorderTopWidth, value.PropBorderRightWidth, value.PropBorderBottomWidth, value.PropBorderLeftWidth)

	child := layout.New(layout.NodeElement)
	edges(child, 50, value.PropWidth, value.PropHeight)
	edges(child, 30, value.PropMarginTop, value.PropMarginRight, value.PropMarginBottom, value.PropMarginLeft)
	root.AppendChild(child)

	root.Calculate(value.Inf, value.Inf)

	res := root.Result()
	assert.Equal(t, float32(260), res.Width)
	assert.Equal(t, float32(160), res.Height)

	cres := child.Result()
	assert.Equal(t, float32(30), cres.X)
	assert.Equal(t, float32(30), cres.Y)
	assert.Equal(t, float32(50), cres.Width)
	assert.Equal(t, float32(50), cres.Height)
}

func TestBlockBorderBox(t *testing.T) {
	root := layout.New(layout.NodeElement)
	root.SetProperty(value.Property{ID: value.PropBoxSizing, BoxSizing: value.BoxSizingBorderBox})
	edges(root, 200, value.PropWidth)
	edges(root, 100, value.PropHeight)
	edges(root, 20, value.PropPaddingTop, value.PropPaddingRight, value.PropPaddingBottom, value.PropPaddingLeft)
	edges(root, 10, value.PropBorderTopWidth, value.PropBorderRightWidth, value.PropBorderBottomWidth, value.PropBorderLeftWidth)

	child := layout.New(layout.NodeElement)
	edges(child, 50, value.PropWidth, value.PropHeight)
	edges(child, 30, value.PropMarginTop, value.PropMarginRight, value.PropMarginBottom, value.PropMarginLeft)
	root.AppendChild(child)

	root.Calculate(value.Inf, value.Inf)

	res := root.Result()
	assert.Equal(t, float32(200), res.Width)
	assert.Equal(t, float32(100), res.Height)

	cres := child.Result()
	assert.Equal(t, float32(30), cres.X)
	assert.Equal(t, float32(30), cres.Y)
}

func TestFlexGrowFillsContainer(t *testing.T) {
	root := layout.New(layout.NodeElement)
	root.SetProperty(value.Property{ID: value.PropDisplay, Display: value.DisplayFlex()})
	edges(root, 300, value.PropWidth)

	item := layout.New(layout.NodeElement)
	item.SetProperty(value.Property{ID: value.PropFlexGrow, Number: value.F32(1)})
	root.AppendChild(item)

	grandchild := layout.New(layout.NodeElement)
	edges(grandchild, 50, value.PropWidth, value.PropHeight)
	edges(grandchild, 30, value.PropMarginTop, value.PropMarginRight, value.PropMarginBottom, value.PropMarginLeft)
	item.AppendChild(grandchild)

	root.Calculate(value.Inf, value.Inf)

	ires := item.Result()
	assert.Equal(t, float32(300), ires.Width)

	gres := grandchild.Result()
	assert.Equal(t, float32(30), gres.X)
	assert.Equal(t, float32(30), gres.Y)
}

func TestDirtyPropagationIsEdgeTriggered(t *testing.T) {
	root := layout.New(layout.NodeElement)
	child := layout.New(layout.NodeElement)
	root.AppendChild(child)
	root.Calculate(500, 500)
	require.False(t, root.IsDirty())
	require.False(t, child.IsDirty())

	var notified int
	child.SetDirtyCallback(func(*layout.LayoutNode) { notified++ })

	child.SetProperty(px(value.PropWidth, 10))
	assert.Equal(t, 1, notified)
	assert.True(t, root.IsDirty())
	assert.True(t, child.IsDirty())

	child.SetProperty(px(value.PropHeight, 10))
	assert.Equal(t, 1, notified, "already-dirty node must not re-fire its callback")
}

func TestCalculateDryDoesNotWriteGeometry(t *testing.T) {
	root := layout.New(layout.NodeElement)
	edges(root, 120, value.PropWidth, value.PropHeight)

	size := root.CalculateDry(value.Inf, value.Inf)
	assert.Equal(t, float32(120), size.Width)
	assert.Equal(t, layout.Result{}, root.Result())
}

func TestMeasureCallbackLeaf(t *testing.T) {
	leaf := layout.New(layout.NodeText)
	leaf.SetMeasureFunc(func(c layout.Constraints) layout.Size {
		return layout.Size{Width: 42, Height: 18}
	})
	root := layout.New(layout.NodeElement)
	root.AppendChild(leaf)
	root.Calculate(value.Inf, value.Inf)

	res := leaf.Result()
	assert.Equal(t, float32(42), res.Width)
	assert.Equal(t, float32(18), res.Height)
}

func TestAbsolutePositionAgainstPositionedAncestor(t *testing.T) {
	root := layout.New(layout.NodeElement)
	edges(root, 200, value.PropWidth, value.PropHeight)
	root.SetProperty(value.Property{ID: value.PropPosition, Position: value.PositionRelative})

	abs := layout.New(layout.NodeElement)
	abs.SetProperty(value.Property{ID: value.PropPosition, Position: value.PositionAbsolute})
	edges(abs, 20, value.PropTop, value.PropLeft)
	edges(abs, 40, value.PropWidth, value.PropHeight)
	root.AppendChild(abs)

	root.Calculate(value.Inf, value.Inf)

	ares := abs.Result()
	assert.Equal(t, float32(20), ares.X)
	assert.Equal(t, float32(20), ares.Y)
	assert.Equal(t, float32(40), ares.Width)
}
