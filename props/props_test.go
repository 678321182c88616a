package props_test

import (
	"testing"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/props"
	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursor(t *testing.T, src string) *token.Cursor {
	t.Helper()
	return token.NewCursor(src)
}

func TestParseLengthPixel(t *testing.T) {
	l, err := props.ParseLength(cursor(t, "12px"))
	require.NoError(t, err)
	assert.Equal(t, value.Px(12), l)
}

func TestParseLengthAuto(t *testing.T) {
	l, err := props.ParseLength(cursor(t, "auto"))
	require.NoError(t, err)
	assert.True(t, l.IsAuto())
}

func TestParseLengthCalc(t *testing.T) {
	l, err := props.ParseLength(cursor(t, "calc(100% - 20px)"))
	require.NoError(t, err)
	v, ok := l.ResolveAgainst(value.MediaQueryStatus{ViewportWidth: 400}, 300, 16)
	require.True(t, ok)
	assert.InDelta(t, 280, v, 0.001)
}

func TestParseColorHex(t *testing.T) {
	col, err := props.ParseColor(cursor(t, "#ff0000"))
	require.NoError(t, err)
	assert.Equal(t, value.RGBA(255, 0, 0, 255), col)
}

func TestParseColorRGBAFunc(t *testing.T) {
	col, err := props.ParseColor(cursor(t, "rgba(10, 20, 30, 0.5)"))
	require.NoError(t, err)
	assert.Equal(t, uint8(10), col.R)
	assert.Equal(t, uint8(20), col.G)
	assert.Equal(t, uint8(30), col.B)
	assert.InDelta(t, 128, int(col.A), 2)
}

func TestParseColorNamedKeyword(t *testing.T) {
	col, err := props.ParseColor(cursor(t, "blue"))
	require.NoError(t, err)
	assert.Equal(t, value.RGBA(0, 0, 255, 255), col)
}

func TestParseGradientLinearDefaultAngle(t *testing.T) {
	c := cursor(t, "linear-gradient(red, blue)")
	tok, err := c.Next()
	require.NoError(t, err)
	g, err := props.ParseGradient(c, tok.Text)
	require.NoError(t, err)
	deg, ok := g.Angle.Degrees()
	require.True(t, ok)
	assert.Equal(t, float32(180), deg)
	require.Len(t, g.Stops, 2)
	assert.True(t, g.Stops[0].HasRatio)
	assert.Equal(t, float32(0), g.Stops[0].Ratio)
	assert.Equal(t, float32(1), g.Stops[1].Ratio)
}

func TestParseGradientToSide(t *testing.T) {
	c := cursor(t, "linear-gradient(to right, red, blue)")
	tok, _ := c.Next()
	g, err := props.ParseGradient(c, tok.Text)
	require.NoError(t, err)
	deg, _ := g.Angle.Degrees()
	assert.Equal(t, float32(90), deg)
}

func TestParseBackgroundShorthand(t *testing.T) {
	c := cursor(t, "url(foo.png) no-repeat center / cover")
	bg, err := props.ParseBackground(c)
	require.NoError(t, err)
	require.Len(t, bg.Layers, 1)
	assert.Equal(t, value.BackgroundImageURL, bg.Layers[0].Image.Kind)
	assert.Equal(t, "foo.png", bg.Layers[0].Image.URL)
	assert.Equal(t, value.BackgroundSizeCover, bg.Layers[0].Size.Kind)
}

func TestParseTransitionShorthand(t *testing.T) {
	ts, err := props.ParseTransitionList(cursor(t, "opacity 0.3s ease-in-out 100ms"))
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "opacity", ts[0].Property)
	assert.InDelta(t, 0.3, ts[0].Duration, 0.001)
	assert.Equal(t, value.TimingEaseInOut, ts[0].Timing.Kind)
	assert.InDelta(t, 0.1, ts[0].Delay, 0.001)
}

func TestParseAnimationShorthand(t *testing.T) {
	as, err := props.ParseAnimationList(cursor(t, "spin 2s linear infinite"))
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Equal(t, "spin", as[0].Name)
	assert.InDelta(t, 2, as[0].Duration, 0.001)
	assert.Equal(t, value.TimingLinear, as[0].Timing.Kind)
	assert.Equal(t, value.Inf, as[0].IterationCount)
}

func TestParseFontFamilyFallbackChain(t *testing.T) {
	fam, err := props.ParseFontFamily(cursor(t, `"Helvetica Neue", Arial, sans-serif`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Helvetica Neue", "Arial", "sans-serif"}, fam.Names)
}

func TestParseDeclarationListImportant(t *testing.T) {
	r := diag.NewReporter()
	c := cursor(t, "width: 10px !important; color: red;")
	metas := props.ParseDeclarationList(c, r)
	require.Len(t, metas, 2)
	assert.Equal(t, value.MetaImportant, metas[0].Kind)
	assert.True(t, metas[0].Property.Important)
	assert.Equal(t, value.PropWidth, metas[0].Property.ID)
	assert.Equal(t, value.PropColor, metas[1].Property.ID)
	assert.False(t, r.HasWarnings())
}

func TestParseDeclarationListCustomProperty(t *testing.T) {
	r := diag.NewReporter()
	c := cursor(t, "--accent: #336699;")
	metas := props.ParseDeclarationList(c, r)
	require.Len(t, metas, 1)
	assert.True(t, metas[0].Property.IsCustom())
	assert.Equal(t, "--accent", metas[0].Property.CustomName)
	assert.Equal(t, "#336699", metas[0].Property.RawText)
}

func TestParseDeclarationListRecoversFromBadDeclaration(t *testing.T) {
	r := diag.NewReporter()
	c := cursor(t, "width: not-a-length; height: 10px;")
	metas := props.ParseDeclarationList(c, r)
	require.Len(t, metas, 1)
	assert.Equal(t, value.PropHeight, metas[0].Property.ID)
	assert.True(t, r.HasWarnings())
}

func TestParseTransformTranslateXY(t *testing.T) {
	tf, err := props.ParseTransform(cursor(t, "translate(10px, 20px) rotate(45deg)"))
	require.NoError(t, err)
	require.Len(t, tf.Funcs, 2)
	assert.Equal(t, value.TransformTranslate, tf.Funcs[0].Kind)
	assert.Equal(t, value.Px(10), tf.Funcs[0].X)
	assert.Equal(t, value.TransformRotate, tf.Funcs[1].Kind)
}

func TestParseEnvWithDefault(t *testing.T) {
	l, err := props.ParseLength(cursor(t, "env(safe-area-inset-bottom, 10px)"))
	require.NoError(t, err)
	mq := value.MediaQueryStatus{Insets: value.SafeAreaInsets{Bottom: 34}}
	v, ok := l.ResolveAgainst(mq, 0, 16)
	require.True(t, ok)
	assert.Equal(t, float32(34), v)
}
