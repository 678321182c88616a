// Package props implements the per-property parser (component D):
// functions from a bounded token stream to a typed value.Property,
// plus shorthand expansion, !important handling, custom-property raw
// capture, and the declaration-level error recovery of §4.4/§7.
package props

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("wxcss.props")
}
