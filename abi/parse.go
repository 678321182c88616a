package abi

import (
	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/selector"
	"github.com/npillmayer/wxcss/sheet"
	"github.com/npillmayer/wxcss/value"
)

// BuildSheet parses a stylesheet and reports its recoverable warnings
// alongside the compiled result, per §6's "(CompiledStyleSheet, list of
// Warning)" parser output contract.
func BuildSheet(source, importBasePath string) (*sheet.CompiledStyleSheet, []diag.Warning) {
	r := diag.NewReporter()
	s := sheet.Build(source, importBasePath, r)
	return s, r.Warnings()
}

// ParseInlineStyle parses a `style="..."` attribute value into a flat
// declaration list plus any recoverable warnings (§6).
func ParseInlineStyle(source string) ([]value.PropertyMeta, []diag.Warning) {
	r := diag.NewReporter()
	props := sheet.ParseInlineStyle(source, r)
	return props, r.Warnings()
}

// ParseSelectorOnly parses a single standalone selector list (§6).
func ParseSelectorOnly(source string) ([]selector.Selector, error) {
	return sheet.ParseSelectorOnly(source)
}

// ParseMediaExpressionOnly parses a single comma-separated media query
// series from a standalone string (§6).
func ParseMediaExpressionOnly(source string) (*value.Media, error) {
	return sheet.ParseMediaExpressionOnly(source)
}
