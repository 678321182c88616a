package sheet_test

import (
	"testing"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/sheet"
	"github.com/npillmayer/wxcss/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaNestedRule(t *testing.T) {
	r := diag.NewReporter()
	s := sheet.Build(`@media screen and (min-width: 100px) { .b { width: 200px; } }`, "", r)

	require.False(t, r.HasWarnings(), "%v", r.Warnings())
	require.Len(t, s.Rules, 1)
	rule := s.Rules[0]

	require.NotNil(t, rule.Media)
	require.Len(t, rule.Media.Queries, 1)
	mq := rule.Media.Queries[0]
	require.Len(t, mq.Expressions, 2)
	assert.Equal(t, value.MediaExprType, mq.Expressions[0].Kind)
	assert.Equal(t, value.MediaScreen, mq.Expressions[0].MediaType)
	assert.Equal(t, value.MediaExprMinWidth, mq.Expressions[1].Kind)
	assert.Equal(t, float32(100), mq.Expressions[1].Px)

	require.Len(t, rule.Properties, 1)
	assert.Equal(t, value.PropWidth, rule.Properties[0].Property.ID)
	assert.Equal(t, value.Px(200), rule.Properties[0].Property.Length)

	assert.True(t, rule.Media.Matches(value.MediaQueryStatus{ViewportWidth: 320, ViewportHeight: 480}))
	assert.False(t, rule.Media.Matches(value.MediaQueryStatus{ViewportWidth: 50, ViewportHeight: 480}))
}

func TestImportNotOnTopWarning(t *testing.T) {
	r := diag.NewReporter()
	sheetOut := sheet.Build(`.a { color: red; } @import "other.css";`, "base.css", r)

	require.Empty(t, sheetOut.Imports)
	var sawImportNotOnTop bool
	for _, w := range r.Warnings() {
		if w.Kind == diag.ImportNotOnTop {
			sawImportNotOnTop = true
		}
	}
	assert.True(t, sawImportNotOnTop)
}

func TestImportResolvesRelativePath(t *testing.T) {
	r := diag.NewReporter()
	sheetOut := sheet.Build(`@import "./hello.wxss";`, "src/components/a.wxss", r)

	require.False(t, r.HasWarnings(), "%v", r.Warnings())
	require.Len(t, sheetOut.Imports, 1)
	assert.Equal(t, "src/components/hello.css", sheetOut.Imports[0].URL)
}

func TestImportURLPassesThrough(t *testing.T) {
	r := diag.NewReporter()
	sheetOut := sheet.Build(`@import "https://example.com/reset.css";`, "base.css", r)

	require.False(t, r.HasWarnings(), "%v", r.Warnings())
	require.Len(t, sheetOut.Imports, 1)
	assert.Equal(t, "https://example.com/reset.css", sheetOut.Imports[0].URL)
}

func TestKeyframes(t *testing.T) {
	r := diag.NewReporter()
	s := sheet.Build(`@keyframes fade { from { opacity: 0; } 50% { opacity: 0.5; } to { opacity: 1; } }`, "", r)

	require.False(t, r.HasWarnings(), "%v", r.Warnings())
	require.Len(t, s.Keyframes, 1)
	kf := s.Keyframes[0]
	assert.Equal(t, "fade", kf.Name)
	require.Len(t, kf.Rules, 3)
	assert.Equal(t, sheet.KeyFrameFrom, kf.Rules[0].Selectors[0].Kind)
	assert.Equal(t, sheet.KeyFrameRatio, kf.Rules[1].Selectors[0].Kind)
	assert.Equal(t, float32(0.5), kf.Rules[1].Selectors[0].Ratio)
	assert.Equal(t, sheet.KeyFrameTo, kf.Rules[2].Selectors[0].Kind)
}

func TestFontFace(t *testing.T) {
	r := diag.NewReporter()
	s := sheet.Build(`@font-face { font-family: "Custom"; src: url("./font.woff2") format("woff2"); }`, "src/a.wxss", r)

	require.False(t, r.HasWarnings(), "%v", r.Warnings())
	require.Len(t, s.FontFaces, 1)
	face := s.FontFaces[0]
	assert.Equal(t, "Custom", face.Family)
	require.Len(t, face.Sources, 1)
	assert.Equal(t, "src/font.woff2", face.Sources[0].URL)
}

func TestUnknownAtBlockWarns(t *testing.T) {
	r := diag.NewReporter()
	s := sheet.Build(`@weird-rule foo bar; .a { color: red; }`, "", r)

	require.Len(t, s.Rules, 1)
	var sawUnknown bool
	for _, w := range r.Warnings() {
		if w.Kind == diag.UnknownAtBlock {
			sawUnknown = true
		}
	}
	assert.True(t, sawUnknown)
}
