/*
Package token implements the CSS token stream (component A of the style
pipeline): a reentrant, checkpoint/backtrack-capable lexer producing a
typed token taxonomy with source locations.

The low-level rune scanning is delegated to gorilla/css/scanner, which
already recognizes the bulk of the CSS Syntax Level 3 token grammar
(idents, hashes, strings, numbers, dimensions, match operators, CDO/CDC,
...). Cursor wraps that scanner with the richer contract this pipeline
needs: checkpoint/rewind (TryParse), delimited sub-parsing
(ParseUntilBefore/ParseUntilAfter), and nested-block consumption
(ParseNestedBlock) — none of which the bare scanner offers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package token

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("wxcss.token")
}

// Kind enumerates the token taxonomy of §3 of the specification.
type Kind uint8

const (
	EOF Kind = iota
	Ident
	AtKeyword
	Hash
	IDHash
	String
	Url
	Number
	Percentage
	Dimension
	Delim
	Colon
	Semicolon
	Comma
	WhiteSpace
	Comment
	Function
	ParenthesisBlock
	SquareBracketBlock
	CurlyBracketBlock
	CDC
	CDO
	IncludeMatch
	DashMatch
	PrefixMatch
	SuffixMatch
	SubstringMatch
	CloseParen
	CloseSquare
	CloseCurly
)

// SourceLocation pins a token (or an error) to a place in the source.
// Column is in UTF-16 code units from the start of the line, 1-based,
// matching the column convention external hosts (e.g. the Host ABI)
// expect when reporting diagnostics back to editors/devtools.
type SourceLocation struct {
	Line   int
	Column int
	Offset int // byte offset into the source
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token is a single lexical unit.
type Token struct {
	Kind  Kind
	Text  string  // ident/string/url/function/at-keyword name/delim rune as string
	Num   float64 // numeric value for Number/Percentage/Dimension
	IsInt bool    // Number carries an integer literal
	Unit  string  // unit for Dimension (e.g. "px", "em")
	Loc   SourceLocation
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "<EOF>"
	case Ident, AtKeyword, String, Url, Function:
		return t.Text
	case Number:
		return fmt.Sprintf("%v", t.Num)
	case Percentage:
		return fmt.Sprintf("%v%%", t.Num)
	case Dimension:
		return fmt.Sprintf("%v%s", t.Num, t.Unit)
	case Delim:
		return t.Text
	default:
		return t.Text
	}
}

// IsBlockStart reports whether this token opens a block that must be
// matched by ParseNestedBlock before the parser may continue at this
// nesting level.
func (k Kind) IsBlockStart() bool {
	switch k {
	case ParenthesisBlock, SquareBracketBlock, CurlyBracketBlock, Function:
		return true
	}
	return false
}

// closeFor returns the close-kind matching an open-block kind.
func closeFor(k Kind) Kind {
	switch k {
	case ParenthesisBlock, Function:
		return CloseParen
	case SquareBracketBlock:
		return CloseSquare
	case CurlyBracketBlock:
		return CloseCurly
	}
	return EOF
}

// ErrorKind enumerates the custom parse-error reasons of §4.1.
type ErrorKind uint8

const (
	UnexpectedToken ErrorKind = iota
	EndOfInput
	Unmatched
	UnsupportedProperty
	SkipErrorBlock
	Unsupported
	Eop
	Reason
	VariableCycle
	UnexpectedTokenInAttributeSelector
	BadValueInAttr
)

// ParseError is the only error type token-stream and property-parser
// consumers ever construct or return; it always carries a location.
type ParseError struct {
	Kind ErrorKind
	Msg  string
	Loc  SourceLocation
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s at %s: %s", e.kindName(), e.Loc, e.Msg)
	}
	return fmt.Sprintf("%s at %s", e.kindName(), e.Loc)
}

func (e *ParseError) kindName() string {
	switch e.Kind {
	case UnexpectedToken:
		return "unexpected token"
	case EndOfInput:
		return "end of input"
	case Unmatched:
		return "unmatched"
	case UnsupportedProperty:
		return "unsupported property"
	case SkipErrorBlock:
		return "skip error block"
	case Unsupported:
		return "unsupported"
	case Eop:
		return "end of property"
	case Reason:
		return "parse error"
	case VariableCycle:
		return "variable cycle"
	case UnexpectedTokenInAttributeSelector:
		return "unexpected token in attribute selector"
	case BadValueInAttr:
		return "bad value in attribute selector"
	}
	return "error"
}

func NewError(kind ErrorKind, loc SourceLocation, msg string) *ParseError {
	return &ParseError{Kind: kind, Msg: msg, Loc: loc}
}
