package token

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/gorilla/css/scanner"
)

// Tokenize lexes a complete CSS source string into a flat token slice,
// terminated by a single EOF token. Pre-tokenizing the whole input lets
// Cursor implement checkpoint/rewind (§4.1) as a bare integer index
// instead of re-driving the underlying scanner, per the "explicit
// (position, state) record" design note.
func Tokenize(source string) []Token {
	sc := scanner.New(source)
	toks := make([]Token, 0, len(source)/4+8)
	offset, line, col := 0, 1, 1
	for {
		raw := sc.Next()
		if raw.Type == scanner.TokenEOF || raw.Type == scanner.TokenError {
			break
		}
		loc := SourceLocation{Line: line, Column: col, Offset: offset}
		tok := convert(raw, loc)
		toks = append(toks, tok)
		// advance position by the exact bytes the scanner consumed.
		n := len(raw.Value)
		if n == 0 {
			n = 1 // never hang on a zero-length token
		}
		for _, r := range raw.Value {
			if r == '\n' {
				line++
				col = 1
			} else {
				col += utf16Width(r)
			}
		}
		offset += n
	}
	toks = append(toks, Token{Kind: EOF, Loc: SourceLocation{Line: line, Column: col, Offset: offset}})
	toks = mergeAttributeMatchOperators(toks)
	return toks
}

func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// convert maps a gorilla/css/scanner token onto our taxonomy.
func convert(raw *scanner.Token, loc SourceLocation) Token {
	switch raw.Type {
	case scanner.TokenS:
		return Token{Kind: WhiteSpace, Text: raw.Value, Loc: loc}
	case scanner.TokenComment:
		return Token{Kind: Comment, Text: raw.Value, Loc: loc}
	case scanner.TokenCDO:
		return Token{Kind: CDO, Text: raw.Value, Loc: loc}
	case scanner.TokenCDC:
		return Token{Kind: CDC, Text: raw.Value, Loc: loc}
	case scanner.TokenIncludes:
		return Token{Kind: IncludeMatch, Text: raw.Value, Loc: loc}
	case scanner.TokenDashMatch:
		return Token{Kind: DashMatch, Text: raw.Value, Loc: loc}
	case scanner.TokenString, scanner.TokenBadString:
		return Token{Kind: String, Text: unquote(raw.Value), Loc: loc}
	case scanner.TokenIdent:
		return Token{Kind: Ident, Text: raw.Value, Loc: loc}
	case scanner.TokenAtKeyword:
		return Token{Kind: AtKeyword, Text: strings.TrimPrefix(raw.Value, "@"), Loc: loc}
	case scanner.TokenHash:
		name := strings.TrimPrefix(raw.Value, "#")
		k := Hash
		if isIdentStart(name) {
			k = IDHash
		}
		return Token{Kind: k, Text: name, Loc: loc}
	case scanner.TokenNumber:
		v, isInt := parseNumber(raw.Value)
		return Token{Kind: Number, Num: v, IsInt: isInt, Text: raw.Value, Loc: loc}
	case scanner.TokenPercentage:
		num := strings.TrimSuffix(raw.Value, "%")
		v, _ := strconv.ParseFloat(num, 64)
		return Token{Kind: Percentage, Num: v, Text: raw.Value, Loc: loc}
	case scanner.TokenDimension:
		num, unit := splitDimension(raw.Value)
		v, isInt := parseNumber(num)
		return Token{Kind: Dimension, Num: v, IsInt: isInt, Unit: unit, Text: raw.Value, Loc: loc}
	case scanner.TokenURI, scanner.TokenBadURI:
		return Token{Kind: Url, Text: unwrapURL(raw.Value), Loc: loc}
	case scanner.TokenFunction:
		return Token{Kind: Function, Text: strings.TrimSuffix(raw.Value, "("), Loc: loc}
	case scanner.TokenUnicodeRange:
		return Token{Kind: Ident, Text: raw.Value, Loc: loc}
	case scanner.TokenChar:
		return convertChar(raw.Value, loc)
	}
	return Token{Kind: Delim, Text: raw.Value, Loc: loc}
}

func convertChar(v string, loc SourceLocation) Token {
	switch v {
	case ":":
		return Token{Kind: Colon, Text: v, Loc: loc}
	case ";":
		return Token{Kind: Semicolon, Text: v, Loc: loc}
	case ",":
		return Token{Kind: Comma, Text: v, Loc: loc}
	case "(":
		return Token{Kind: ParenthesisBlock, Text: v, Loc: loc}
	case ")":
		return Token{Kind: CloseParen, Text: v, Loc: loc}
	case "[":
		return Token{Kind: SquareBracketBlock, Text: v, Loc: loc}
	case "]":
		return Token{Kind: CloseSquare, Text: v, Loc: loc}
	case "{":
		return Token{Kind: CurlyBracketBlock, Text: v, Loc: loc}
	case "}":
		return Token{Kind: CloseCurly, Text: v, Loc: loc}
	}
	return Token{Kind: Delim, Text: v, Loc: loc}
}

// mergeAttributeMatchOperators fuses adjacent '^' '=' / '$' '=' / '*' '='
// delimiter pairs into the CSS3 attribute-match tokens; the underlying
// scanner predates these selector operators and only emits bare chars.
func mergeAttributeMatchOperators(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		if i+1 < len(toks) && toks[i].Kind == Delim && toks[i+1].Kind == Delim && toks[i+1].Text == "=" {
			kind, ok := prefixKindFor(toks[i].Text)
			if ok {
				out = append(out, Token{Kind: kind, Text: toks[i].Text + "=", Loc: toks[i].Loc})
				i++
				continue
			}
		}
		out = append(out, toks[i])
	}
	return out
}

func prefixKindFor(delim string) (Kind, bool) {
	switch delim {
	case "^":
		return PrefixMatch, true
	case "$":
		return SuffixMatch, true
	case "*":
		return SubstringMatch, true
	}
	return 0, false
}

func isIdentStart(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x7f
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	isInt := !strings.ContainsAny(s, ".eE") || (strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-"))
	isInt = !strings.ContainsAny(s, ".eE")
	return v, isInt
}

func splitDimension(s string) (number string, unit string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' {
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func unwrapURL(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "url(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSpace(s)
	return unquote(s)
}

// --- Cursor -----------------------------------------------------------

// State is an opaque checkpoint produced by Cursor.State and consumed by
// Cursor.Reset, per the §9 design note ("explicit (position, state)
// record on the token cursor").
type State struct {
	pos int
}

// Cursor is a reentrant, checkpointable view over a token slice. A
// sub-cursor created by ParseUntilBefore/ParseUntilAfter/ParseNestedBlock
// shares the backing slice but is bounded by limit, so nested parsers can
// never read past their delimiter or block close.
type Cursor struct {
	source string
	tokens []Token
	pos    int
	limit  int
}

// NewCursor creates a cursor over the tokens of source.
func NewCursor(source string) *Cursor {
	toks := Tokenize(source)
	return &Cursor{source: source, tokens: toks, pos: 0, limit: len(toks) - 1} // limit excludes the sentinel EOF
}

func (c *Cursor) at(i int) Token {
	if i >= c.limit || i >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1] // sentinel EOF
	}
	return c.tokens[i]
}

// State captures the current cursor position for later Reset.
func (c *Cursor) State() State { return State{pos: c.pos} }

// Reset rewinds the cursor to a previously captured State.
func (c *Cursor) Reset(s State) { c.pos = s.pos }

// CurrentSourceLocation returns the location of the token the cursor is
// currently positioned at (or the end-of-input location).
func (c *Cursor) CurrentSourceLocation() SourceLocation {
	return c.at(c.pos).Loc
}

func (c *Cursor) skipKind(k Kind) bool {
	return k == WhiteSpace || k == Comment
}

// Next returns the next significant token (whitespace and comments
// skipped), consuming it.
func (c *Cursor) Next() (Token, error) {
	for {
		t := c.at(c.pos)
		if t.Kind == EOF {
			return t, NewError(EndOfInput, t.Loc, "")
		}
		c.pos++
		if c.skipKind(t.Kind) {
			continue
		}
		return t, nil
	}
}

// NextIncludingWhitespace consumes the next token, retaining whitespace
// but skipping comments.
func (c *Cursor) NextIncludingWhitespace() (Token, error) {
	for {
		t := c.at(c.pos)
		if t.Kind == EOF {
			return t, NewError(EndOfInput, t.Loc, "")
		}
		c.pos++
		if t.Kind == Comment {
			continue
		}
		return t, nil
	}
}

// NextIncludingWhitespaceAndComments consumes the raw next token.
func (c *Cursor) NextIncludingWhitespaceAndComments() (Token, error) {
	t := c.at(c.pos)
	if t.Kind == EOF {
		return t, NewError(EndOfInput, t.Loc, "")
	}
	c.pos++
	return t, nil
}

// Peek looks at the next significant token without consuming it.
func (c *Cursor) Peek() Token {
	save := c.pos
	t, err := c.Next()
	c.pos = save
	if err != nil {
		return Token{Kind: EOF, Loc: t.Loc}
	}
	return t
}

// AtEnd reports whether the cursor has nothing left to consume.
func (c *Cursor) AtEnd() bool {
	save := c.pos
	_, err := c.Next()
	c.pos = save
	return err != nil
}

// TryParse runs f with a checkpoint; on error the cursor is rewound to
// the checkpoint, so callers may freely speculate.
func TryParse[T any](c *Cursor, f func(*Cursor) (T, error)) (T, error) {
	save := c.State()
	v, err := f(c)
	if err != nil {
		c.Reset(save)
	}
	return v, err
}

func isCloseKind(k Kind) bool {
	switch k {
	case CloseParen, CloseSquare, CloseCurly:
		return true
	}
	return false
}

// findBoundary scans forward from the current position for the first
// unescaped top-level occurrence of any kind in stop, skipping fully
// over nested blocks. It also stops (without matching) at an unmatched
// close token, so that a parser bounded by e.g. Semicolon never reads
// past the end of its enclosing block.
func (c *Cursor) findBoundary(stop map[Kind]bool) (idx int, matched bool) {
	depth := 0
	for i := c.pos; ; i++ {
		t := c.at(i)
		if t.Kind == EOF {
			return i, false
		}
		if depth == 0 {
			if stop[t.Kind] {
				return i, true
			}
			if isCloseKind(t.Kind) {
				return i, false
			}
		}
		if t.Kind.IsBlockStart() {
			depth++
		} else if isCloseKind(t.Kind) {
			depth--
		}
	}
}

func kindSet(kinds []Kind) map[Kind]bool {
	m := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// subCursor returns a bounded view sharing the same backing tokens.
func (c *Cursor) subCursor(limit int) *Cursor {
	return &Cursor{source: c.source, tokens: c.tokens, pos: c.pos, limit: limit}
}

// ParseUntilBefore runs f over the tokens up to (but not including) the
// first top-level token in delims. The delimiter itself is left
// unconsumed in the outer cursor.
func ParseUntilBefore[T any](c *Cursor, delims []Kind, f func(*Cursor) (T, error)) (T, error) {
	idx, _ := c.findBoundary(kindSet(delims))
	sub := c.subCursor(idx)
	v, err := f(sub)
	c.pos = idx
	return v, err
}

// ParseUntilAfter is like ParseUntilBefore but consumes the delimiter
// (if one was actually matched) before returning.
func ParseUntilAfter[T any](c *Cursor, delims []Kind, f func(*Cursor) (T, error)) (T, error) {
	idx, matched := c.findBoundary(kindSet(delims))
	sub := c.subCursor(idx)
	v, err := f(sub)
	if matched {
		c.pos = idx + 1
	} else {
		c.pos = idx
	}
	return v, err
}

// ParseNestedBlock must be called immediately after consuming a
// block-start token (ParenthesisBlock/SquareBracketBlock/
// CurlyBracketBlock/Function). It runs f over the block's interior and
// always leaves the outer cursor positioned past the matching close
// token — even when f returns an error or the block is unterminated
// (§4.1: "on error the outer parser's position is past the block's
// matching close").
func ParseNestedBlock[T any](c *Cursor, f func(*Cursor) (T, error)) (T, error) {
	depth := 1
	i := c.pos
	for {
		t := c.at(i)
		if t.Kind == EOF {
			break // unterminated: treat as end-of-input, per §7
		}
		if t.Kind.IsBlockStart() {
			depth++
		} else if isCloseKind(t.Kind) {
			depth--
			if depth == 0 {
				break
			}
		}
		i++
	}
	sub := c.subCursor(i)
	v, err := f(sub)
	if c.at(i).Kind == EOF {
		c.pos = i
	} else {
		c.pos = i + 1 // past the matching close
	}
	return v, err
}

// Slice returns the verbatim source text spanned by [from, to) cursor
// positions, keyed by byte offsets rather than borrowed string slices
// (§9: "key slices by byte offsets").
func (c *Cursor) Slice(from, to State) string {
	start := c.at(from.pos).Loc.Offset
	end := len(c.source)
	if to.pos < len(c.tokens) {
		end = c.at(to.pos).Loc.Offset
	}
	if start > end || start > len(c.source) {
		return ""
	}
	if end > len(c.source) {
		end = len(c.source)
	}
	return c.source[start:end]
}

// RemainderText returns the raw, un-tokenized remainder of the source
// from the current position to the cursor's limit. Used by custom
// (variable) property parsing, which captures raw text rather than a
// parsed value tree (§4.4).
func (c *Cursor) RemainderText() string {
	start := c.at(c.pos).Loc.Offset
	end := len(c.source)
	if c.limit < len(c.tokens) {
		end = c.at(c.limit).Loc.Offset
	}
	if start > end {
		return ""
	}
	return c.source[start:end]
}

// --- Expect helpers -----------------------------------------------------

func (c *Cursor) ExpectKind(k Kind) (Token, error) {
	t, err := c.Next()
	if err != nil {
		return t, err
	}
	if t.Kind != k {
		return t, NewError(UnexpectedToken, t.Loc, t.Text)
	}
	return t, nil
}

func (c *Cursor) ExpectIdent() (string, error) {
	t, err := c.ExpectKind(Ident)
	return t.Text, err
}

func (c *Cursor) ExpectColon() error {
	_, err := c.ExpectKind(Colon)
	return err
}

func (c *Cursor) ExpectComma() error {
	_, err := c.ExpectKind(Comma)
	return err
}

func (c *Cursor) ExpectCurlyBlockStart() error {
	_, err := c.ExpectKind(CurlyBracketBlock)
	return err
}

func (c *Cursor) ExpectParenthesisBlockStart() error {
	_, err := c.ExpectKind(ParenthesisBlock)
	return err
}
