// Package diag implements the warning reporter (component F): structured
// diagnostics with source spans and stable numeric kind codes, collected
// alongside parsing rather than raised as exceptional control flow (§1).
package diag

import (
	"fmt"

	"github.com/npillmayer/wxcss/token"
)

// WarningKind is a stable u32 diagnostic code, per §6. The enum tag
// order must never change: hosts persist these codes.
type WarningKind uint32

const (
	Unknown WarningKind = 0x10000 + iota
	HooksGenerated
	SerializationFailed
	DeserializationFailed
	UnsupportedSegment
	UnknownAtBlock
	InvalidMediaExpression
	UnsupportedMediaSyntax
	InvalidImportURL
	MissingImportTarget
	RecursiveImports
	ImportNotOnTop
	IllegalKeyframesBlock
	IllegalKeyframesIdentifier
	UnsupportedKeyframesSyntax
	InvalidFontFaceProperty
	InvalidSelector
	UnsupportedSelector
	InvalidPseudoElement
	UnsupportedPseudoElement
	InvalidPseudoClass
	UnsupportedPseudoClass
	InvalidProperty
	UnsupportedProperty
	MissingColonAfterProperty
	InvalidEnvDefaultValue
)

var kindNames = map[WarningKind]string{
	Unknown:                    "unknown",
	HooksGenerated:             "hooks-generated",
	SerializationFailed:        "serialization-failed",
	DeserializationFailed:      "deserialization-failed",
	UnsupportedSegment:         "unsupported-segment",
	UnknownAtBlock:             "unknown-at-block",
	InvalidMediaExpression:     "invalid-media-expression",
	UnsupportedMediaSyntax:     "unsupported-media-syntax",
	InvalidImportURL:           "invalid-import-url",
	MissingImportTarget:        "missing-import-target",
	RecursiveImports:           "recursive-imports",
	ImportNotOnTop:             "import-not-on-top",
	IllegalKeyframesBlock:      "illegal-keyframes-block",
	IllegalKeyframesIdentifier: "illegal-keyframes-identifier",
	UnsupportedKeyframesSyntax: "unsupported-keyframes-syntax",
	InvalidFontFaceProperty:    "invalid-font-face-property",
	InvalidSelector:            "invalid-selector",
	UnsupportedSelector:        "unsupported-selector",
	InvalidPseudoElement:       "invalid-pseudo-element",
	UnsupportedPseudoElement:   "unsupported-pseudo-element",
	InvalidPseudoClass:         "invalid-pseudo-class",
	UnsupportedPseudoClass:     "unsupported-pseudo-class",
	InvalidProperty:            "invalid-property",
	UnsupportedProperty:        "unsupported-property",
	MissingColonAfterProperty:  "missing-colon-after-property",
	InvalidEnvDefaultValue:     "invalid-env-default-value",
}

func (k WarningKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("WarningKind(%#x)", uint32(k))
}

// Warning is a single structured diagnostic, per §6: a kind code, a
// human-readable message, and the UTF-16, 1-based source span it came
// from.
type Warning struct {
	Kind                       WarningKind
	Message                    string
	StartLine, StartCol        int
	EndLine, EndCol            int
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d:%d-%d:%d: %s", w.Kind, w.StartLine, w.StartCol, w.EndLine, w.EndCol, w.Message)
}

// AtLocation builds a Warning spanning a single point, used whenever
// the caller only has one SourceLocation (the common case, for
// tokenizer and property-parser diagnostics).
func AtLocation(kind WarningKind, loc token.SourceLocation, message string) Warning {
	return Warning{
		Kind:      kind,
		Message:   message,
		StartLine: loc.Line,
		StartCol:  loc.Column,
		EndLine:   loc.Line,
		EndCol:    loc.Column,
	}
}

// AtSpan builds a Warning spanning two locations.
func AtSpan(kind WarningKind, start, end token.SourceLocation, message string) Warning {
	return Warning{
		Kind:      kind,
		Message:   message,
		StartLine: start.Line,
		StartCol:  start.Column,
		EndLine:   end.Line,
		EndCol:    end.Column,
	}
}

// Reporter collects diagnostics emitted during a single parse/compile
// pass. It never aborts control flow — every parser in this pipeline
// reports and continues, per §4.4's error-recovery policy.
type Reporter struct {
	warnings []Warning
}

func NewReporter() *Reporter { return &Reporter{} }

func (r *Reporter) Report(w Warning) {
	r.warnings = append(r.warnings, w)
	tracer().Infof("%s", w)
}

func (r *Reporter) Warnf(kind WarningKind, loc token.SourceLocation, format string, args ...any) {
	r.Report(AtLocation(kind, loc, fmt.Sprintf(format, args...)))
}

func (r *Reporter) Warnings() []Warning {
	return r.warnings
}

func (r *Reporter) HasWarnings() bool { return len(r.warnings) > 0 }
