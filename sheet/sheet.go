// Package sheet implements the sheet builder (component E): it drives
// the token cursor through a CSS source's top level, assembling rules,
// @media blocks, @keyframes, @font-face and @import directives into an
// immutable CompiledStyleSheet, alongside a diag.Reporter warning list.
// It is the one component that ties token, value, selector, props and
// diag together into the parser's public entry points (§4.5).
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wxcss/selector"
	"github.com/npillmayer/wxcss/value"
)

func tracer() tracing.Trace {
	return tracing.Select("wxcss.sheet")
}

// Rule is one selector-list + declaration-list pair, optionally scoped
// to a Media (nil means unconditional), per §3.
type Rule struct {
	Selectors []selector.Selector
	Properties []value.PropertyMeta
	Media     *value.Media
}

// Import is one `@import` directive: its resolved (or verbatim, if
// already a URL) target and an optional media scoping, per §4.4.
type Import struct {
	URL   string
	Media *value.Media
}

// KeyFrameKind discriminates a KeyFrame selector entry.
type KeyFrameKind uint8

const (
	KeyFrameFrom KeyFrameKind = iota
	KeyFrameTo
	KeyFrameRatio
)

// KeyFrame is one `from` / `to` / `<percentage>` keyframe selector.
type KeyFrame struct {
	Kind  KeyFrameKind
	Ratio float32 // meaningful only for KeyFrameRatio, 0..1
}

// KeyFrameRule is one rule inside an `@keyframes` block: a
// comma-separated KeyFrame selector list plus its property list.
type KeyFrameRule struct {
	Selectors  []KeyFrame
	Properties []value.PropertyMeta
}

// KeyFrames is a named `@keyframes` block, per §4.4.
type KeyFrames struct {
	Name  string
	Rules []KeyFrameRule
}

// CompiledStyleSheet is the immutable output of the sheet builder: an
// ordered rule list, an ordered import list, a keyframes registry and
// a font-face list, per §3. Once built it is never mutated again, so
// it is safe to share by reference across concurrent readers (§4.3).
type CompiledStyleSheet struct {
	Rules     []Rule
	Imports   []Import
	Keyframes []KeyFrames
	FontFaces []value.FontFace
}

// AddRule appends a rule, preserving source order (selector specificity
// and cascade order are the matching engine's concern, not the
// builder's, per §1 — the selector-matching query engine that binds
// §1.1 to §1.2 is specified only by its contract).
func (s *CompiledStyleSheet) AddRule(r Rule) { s.Rules = append(s.Rules, r) }

func (s *CompiledStyleSheet) AddImport(i Import) { s.Imports = append(s.Imports, i) }

func (s *CompiledStyleSheet) AddKeyframes(k KeyFrames) { s.Keyframes = append(s.Keyframes, k) }

func (s *CompiledStyleSheet) AddFontFace(f value.FontFace) { s.FontFaces = append(s.FontFaces, f) }
