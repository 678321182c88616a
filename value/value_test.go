package value_test

import (
	"testing"

	"github.com/npillmayer/wxcss/value"
	"github.com/stretchr/testify/assert"
)

func mq() value.MediaQueryStatus {
	return value.MediaQueryStatus{ViewportWidth: 400, ViewportHeight: 800, BaseFontSize: 16}
}

func TestLengthResolveAgainst(t *testing.T) {
	v, ok := value.Px(10).ResolveAgainst(mq(), 0, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(10), v)

	v, ok = value.Vw(50).ResolveAgainst(mq(), 0, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(200), v)

	v, ok = value.Ratio(0.5).ResolveAgainst(mq(), 300, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(150), v)

	_, ok = value.Auto().ResolveAgainst(mq(), 0, 0)
	assert.False(t, ok)

	_, ok = value.Undefined().ResolveAgainst(mq(), 0, 0)
	assert.False(t, ok)
}

func TestCalcLengthPlusLength(t *testing.T) {
	expr := &value.CalcExpr{
		Kind: value.CalcBinary,
		Op:   value.OpAdd,
		Left: &value.CalcExpr{Kind: value.CalcLength, Length: value.Px(10)},
		Right: &value.CalcExpr{Kind: value.CalcLength, Length: value.Ratio(0.5)},
	}
	v, ok := expr.Resolve(mq(), 200, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(110), v)
}

func TestCalcLengthTimesNumber(t *testing.T) {
	expr := &value.CalcExpr{
		Kind: value.CalcBinary,
		Op:   value.OpMul,
		Left: &value.CalcExpr{Kind: value.CalcLength, Length: value.Px(10)},
		Right: &value.CalcExpr{Kind: value.CalcNumber, Number: value.F32(3)},
	}
	v, ok := expr.Resolve(mq(), 0, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(30), v)
}

func TestCalcMixedDomainRejected(t *testing.T) {
	expr := &value.CalcExpr{
		Kind: value.CalcBinary,
		Op:   value.OpAdd,
		Left:  &value.CalcExpr{Kind: value.CalcLength, Length: value.Px(10)},
		Right: &value.CalcExpr{Kind: value.CalcAngle, Angle: value.Deg(10)},
	}
	_, ok := expr.Resolve(mq(), 0, 0)
	assert.False(t, ok)
}

func TestCalcDivByZeroRejected(t *testing.T) {
	expr := &value.CalcExpr{
		Kind: value.CalcBinary,
		Op:   value.OpDiv,
		Left:  &value.CalcExpr{Kind: value.CalcLength, Length: value.Px(10)},
		Right: &value.CalcExpr{Kind: value.CalcNumber, Number: value.F32(0)},
	}
	_, ok := expr.Resolve(mq(), 0, 0)
	assert.False(t, ok)
}

func TestEnvInsetLookup(t *testing.T) {
	m := mq()
	m.Insets = value.SafeAreaInsets{Bottom: 34}
	l := value.EnvLength("safe-area-inset-bottom", value.Px(0))
	v, ok := l.ResolveAgainst(m, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(34), v)
}

func TestEnvInsetFallsBackToDefault(t *testing.T) {
	l := value.EnvLength("safe-area-inset-top", value.Px(20))
	v, ok := l.ResolveAgainst(mq(), 0, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(20), v)
}

func TestLinearGradientDefaultAngle(t *testing.T) {
	stops := value.EvenlySpacedRatios([]value.ColorStop{
		{Color: value.RGB(255, 0, 0)},
		{Color: value.RGB(0, 128, 0)},
		{Color: value.RGB(0, 0, 255)},
	})
	assert.Equal(t, float32(0), stops[0].Ratio)
	assert.InDelta(t, 0.5, stops[1].Ratio, 1e-6)
	assert.Equal(t, float32(1), stops[2].Ratio)

	g := value.LinearGradient(value.DefaultLinearAngle(), stops)
	deg, ok := g.Angle.Degrees()
	assert.True(t, ok)
	assert.Equal(t, float32(180), deg)
}

func TestSideAngleCorners(t *testing.T) {
	a, ok := value.SideAngle(true, true, false, false) // to top right
	assert.True(t, ok)
	deg, _ := a.Degrees()
	assert.Equal(t, float32(45), deg)
}

func TestPadListRepeatsLast(t *testing.T) {
	out := value.PadList([]int{1, 2}, 4)
	assert.Equal(t, []int{1, 2, 2, 2}, out)
}

func TestColorResolveCurrentColor(t *testing.T) {
	c := value.CurrentColor().Resolve(value.RGB(10, 20, 30))
	assert.Equal(t, value.RGB(10, 20, 30), c)
}
