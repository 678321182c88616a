package abi_test

import (
	"testing"

	"github.com/npillmayer/wxcss/abi"
	"github.com/npillmayer/wxcss/layout"
	"github.com/npillmayer/wxcss/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleAndGeometry(t *testing.T) {
	root := abi.NewElement()
	defer abi.Free(root)
	child := abi.NewElement()
	defer abi.Free(child)

	require.NoError(t, abi.AppendChild(root, child))
	n, err := abi.GetChildCount(root)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, ok := abi.GetChild(root, 0)
	require.True(t, ok)
	assert.Equal(t, child, got)

	parent, ok := abi.GetParent(child)
	require.True(t, ok)
	assert.Equal(t, root, parent)

	require.NoError(t, abi.SetLengthPx(root, "width", 300))
	require.NoError(t, abi.SetLengthPx(child, "width", 100))
	require.NoError(t, abi.SetLengthPx(child, "height", 50))

	require.NoError(t, abi.Calculate(root, 300, 200))

	g, err := abi.GetGeometry(child)
	require.NoError(t, err)
	assert.Equal(t, float32(100), g.Width)
	assert.Equal(t, float32(50), g.Height)

	require.NoError(t, abi.RemoveChild(root, child))
	n, err = abi.GetChildCount(root)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUnknownHandleFailsSafely(t *testing.T) {
	var bogus abi.Handle
	_, err := abi.GetChildCount(bogus)
	assert.Error(t, err)
}

func TestCalcHandleResolvesThroughCallback(t *testing.T) {
	root := abi.NewElement()
	defer abi.Free(root)

	require.NoError(t, abi.SetResolveCalcFunc(root, func(handle uint64, basis float32) (float32, bool) {
		if handle == 7 {
			return basis / 2, true
		}
		return 0, false
	}))
	require.NoError(t, abi.SetLengthCalc(root, "width", 7))

	require.NoError(t, abi.Calculate(root, 400, 100))
	g, err := abi.GetGeometry(root)
	require.NoError(t, err)
	assert.Equal(t, float32(200), g.Width)
}

func TestDirtyCallbackFiresOncePerTransition(t *testing.T) {
	root := abi.NewElement()
	defer abi.Free(root)

	var fired int
	require.NoError(t, abi.SetDirtyCallback(root, func(h abi.Handle) {
		fired++
	}))
	require.NoError(t, abi.Calculate(root, 100, 100))
	isDirty, err := abi.IsDirty(root)
	require.NoError(t, err)
	assert.False(t, isDirty)

	require.NoError(t, abi.MarkDirty(root))
	require.NoError(t, abi.MarkDirty(root))
	assert.Equal(t, 1, fired)
}

func TestDumpIncludesChildrenAndStyle(t *testing.T) {
	root := abi.NewElement()
	defer abi.Free(root)
	child := abi.NewElement()
	defer abi.Free(child)
	require.NoError(t, abi.AppendChild(root, child))
	require.NoError(t, abi.SetLengthPx(child, "width", 42))

	out, err := abi.Dump(root, abi.DumpOptions{Recursive: true, IncludeStyle: true})
	require.NoError(t, err)
	assert.Contains(t, out, "width:42px")
}

func TestMeasureFuncSizesTextLeaf(t *testing.T) {
	text := abi.NewText()
	defer abi.Free(text)
	require.NoError(t, abi.SetMeasureFunc(text, func(c layout.Constraints) layout.Size {
		return layout.Size{Width: 64, Height: 16}
	}))

	require.NoError(t, abi.Calculate(text, value.Inf, value.Inf))
	g, err := abi.GetGeometry(text)
	require.NoError(t, err)
	assert.Equal(t, float32(64), g.Width)
	assert.Equal(t, float32(16), g.Height)
}

func TestBuildSheetReportsWarnings(t *testing.T) {
	_, warnings := abi.BuildSheet(`.a { color: red; } @import "late.css";`, "base.css")
	require.NotEmpty(t, warnings)
}
