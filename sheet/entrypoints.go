package sheet

import (
	"strings"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/props"
	"github.com/npillmayer/wxcss/selector"
	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseInlineStyle parses the `style="..."` attribute value of a
// single element into a flat declaration list, per §6's
// parse_inline_style entry point. A trailing `;` is appended if
// missing so the shared declaration-list parser always sees a
// well-terminated final declaration.
func ParseInlineStyle(source string, r *diag.Reporter) []value.PropertyMeta {
	trimmed := strings.TrimSpace(source)
	if trimmed != "" && !strings.HasSuffix(trimmed, ";") {
		trimmed += ";"
	}
	c := token.NewCursor(trimmed)
	return props.ParseDeclarationList(c, r)
}

// ParseSelectorOnly parses a single standalone selector list, per §6's
// parse_selector_only entry point (e.g. a host validating a query
// string before handing it to the matching engine).
func ParseSelectorOnly(source string) ([]selector.Selector, error) {
	c := token.NewCursor(source)
	sels, err := selector.ParseList(c)
	if err != nil {
		return nil, err
	}
	return sels, nil
}
