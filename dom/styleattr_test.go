package dom_test

import (
	"testing"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/dom"
	"github.com/npillmayer/wxcss/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStyleElementsCollectsHeadAndBody(t *testing.T) {
	doc := parseFragment(t, `<html><head><style>.a{color:red}</style></head>
		<body><style>.b{color:blue}</style><p>text</p></body></html>`)

	got := dom.ExtractStyleElements(doc)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], ".a{color:red}")
	assert.Contains(t, got[1], ".b{color:blue}")
}

func TestParseStyleAttributeProducesTypedProperties(t *testing.T) {
	r := diag.NewReporter()
	got := dom.ParseStyleAttribute("width: 10px; color: red;", r)
	require.Len(t, got, 2)
	assert.Equal(t, value.PropWidth, got[0].Property.ID)
	assert.Equal(t, value.PropColor, got[1].Property.ID)
	assert.False(t, r.HasWarnings())
}
