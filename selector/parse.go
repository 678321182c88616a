package selector

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
)

// ParseList parses a comma-separated selector list, as used by a rule
// header or an `@keyframes` prelude's extended grammar.
func ParseList(c *token.Cursor) ([]Selector, error) {
	var out []Selector
	for {
		sel, err := parseOne(c)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
		tok, err := c.Next()
		if err != nil {
			break
		}
		if tok.Kind != token.Comma {
			break
		}
	}
	return out, nil
}

func parseOne(c *token.Cursor) (Selector, error) {
	var frags []Fragment
	rel := None
	for {
		frag, sawAny, stop, err := parseFragment(c, rel)
		if err != nil {
			return Selector{}, err
		}
		if sawAny {
			frags = append(frags, frag)
		}
		if stop {
			break
		}
		rel = Ancestor
		nextRel, err := peekCombinator(c)
		if err != nil {
			break
		}
		if nextRel != None {
			rel = nextRel
		}
	}
	return Selector{Fragments: frags}, nil
}

// peekCombinator consumes an explicit `>`, `+`, `~` combinator token if
// present, returning the relation it denotes; bare whitespace between
// fragments denotes Ancestor and is simply skipped by the tokenizer's
// default whitespace handling.
func peekCombinator(c *token.Cursor) (Combinator, error) {
	if c.AtEnd() {
		return None, token.NewError(token.EndOfInput, c.CurrentSourceLocation(), "expected combinator or fragment")
	}
	tok := c.Peek()
	if tok.Kind == token.Delim {
		switch tok.Text {
		case ">":
			c.Next()
			return DirectParent, nil
		case "+":
			c.Next()
			return NextSibling, nil
		case "~":
			c.Next()
			return SubsequentSibling, nil
		}
	}
	return None, nil
}

// parseFragment parses one compound fragment: an optional tag, then
// any number of #id/.class/[attr]/:pseudo parts. It stops (without
// consuming) at a comma, a combinator, whitespace, an open-curly, or EOF.
func parseFragment(c *token.Cursor, rel Combinator) (f Fragment, sawAny bool, stop bool, err error) {
	f.Relation = rel
	for {
		if c.AtEnd() {
			return f, sawAny, true, nil
		}
		if sawAny {
			s := c.State()
			raw, _ := c.NextIncludingWhitespace()
			c.Reset(s)
			if raw.Kind == token.WhiteSpace {
				return f, sawAny, false, nil
			}
		}
		tok := c.Peek()
		switch tok.Kind {
		case token.Comma, token.CurlyBracketBlock:
			return f, sawAny, true, nil
		case token.Ident:
			if sawAny && f.Tag != "" {
				return f, sawAny, false, nil
			}
			c.Next()
			f.Tag = tok.Text
			sawAny = true
		case token.Delim:
			switch tok.Text {
			case "*":
				c.Next()
				f.Tag = ""
				sawAny = true
			case ".":
				c.Next()
				name, e := c.ExpectIdent()
				if e != nil {
					return f, sawAny, true, e
				}
				f.Classes = append(f.Classes, name)
				sawAny = true
			case ">", "+", "~":
				return f, sawAny, false, nil
			default:
				return f, sawAny, true, nil
			}
		case token.Hash, token.IDHash:
			c.Next()
			f.ID = strings.TrimPrefix(tok.Text, "#")
			sawAny = true
		case token.SquareBracketBlock:
			am, e := parseAttribute(c)
			if e != nil {
				return f, sawAny, true, e
			}
			f.Attributes = append(f.Attributes, am)
			sawAny = true
		case token.Colon:
			pc, isElement, e := parsePseudo(c)
			if e != nil {
				return f, sawAny, true, e
			}
			if isElement.kind != PseudoElementNone {
				f.PseudoElement = isElement.kind
			} else {
				f.PseudoClasses = append(f.PseudoClasses, pc)
			}
			sawAny = true
		default:
			return f, sawAny, true, nil
		}
	}
}

type pseudoElementResult struct{ kind PseudoElementKind }

func parseAttribute(c *token.Cursor) (AttributeMatcher, error) {
	if _, err := c.ExpectKind(token.SquareBracketBlock); err != nil {
		return AttributeMatcher{}, err
	}
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (AttributeMatcher, error) {
		name, err := inner.ExpectIdent()
		if err != nil {
			return AttributeMatcher{}, err
		}
		am := AttributeMatcher{Name: name, Operator: AttrSet, CaseSensitive: true}
		if inner.AtEnd() {
			return am, nil
		}
		opTok, err := inner.Next()
		if err != nil {
			return am, nil
		}
		switch opTok.Kind {
		case token.IncludeMatch:
			am.Operator = AttrList
		case token.DashMatch:
			am.Operator = AttrHyphen
		case token.PrefixMatch:
			am.Operator = AttrBegin
		case token.SuffixMatch:
			am.Operator = AttrEnd
		case token.SubstringMatch:
			am.Operator = AttrContain
		case token.Delim:
			if opTok.Text == "=" {
				am.Operator = AttrExact
			} else {
				return AttributeMatcher{}, token.NewError(token.UnexpectedTokenInAttributeSelector, inner.CurrentSourceLocation(), "unexpected attribute operator")
			}
		default:
			return AttributeMatcher{}, token.NewError(token.UnexpectedTokenInAttributeSelector, inner.CurrentSourceLocation(), "unexpected attribute operator")
		}
		valTok, err := inner.Next()
		if err != nil {
			return AttributeMatcher{}, token.NewError(token.BadValueInAttr, inner.CurrentSourceLocation(), "missing attribute value")
		}
		if valTok.Kind != token.String && valTok.Kind != token.Ident {
			return AttributeMatcher{}, token.NewError(token.BadValueInAttr, inner.CurrentSourceLocation(), "expected string or ident value")
		}
		am.Value = valTok.Text
		if am.Operator != AttrSet && am.Value == "" {
			am.NeverMatches = true
		}
		if !inner.AtEnd() {
			ci := inner.Peek()
			if ci.Kind == token.Ident && strings.EqualFold(ci.Text, "i") {
				inner.Next()
				am.CaseSensitive = false
			}
		}
		return am, nil
	})
}

func parsePseudo(c *token.Cursor) (PseudoClass, pseudoElementResult, error) {
	if err := c.ExpectColon(); err != nil {
		return PseudoClass{}, pseudoElementResult{}, err
	}
	isElement := false
	if c.Peek().Kind == token.Colon {
		c.Next()
		isElement = true
	}
	nameTok, err := c.Next()
	if err != nil {
		return PseudoClass{}, pseudoElementResult{}, err
	}
	if isElement {
		return PseudoClass{}, pseudoElementResult{kind: pseudoElementKindFor(nameTok.Text)}, nil
	}
	switch nameTok.Kind {
	case token.Ident:
		switch strings.ToLower(nameTok.Text) {
		case "first-child":
			return PseudoClass{Kind: PseudoFirstChild}, pseudoElementResult{}, nil
		case "last-child":
			return PseudoClass{Kind: PseudoLastChild}, pseudoElementResult{}, nil
		case "only-child":
			return PseudoClass{Kind: PseudoOnlyChild}, pseudoElementResult{}, nil
		case "empty":
			return PseudoClass{Kind: PseudoEmpty}, pseudoElementResult{}, nil
		case "host":
			return PseudoClass{Kind: PseudoHost}, pseudoElementResult{}, nil
		}
		return PseudoClass{}, pseudoElementResult{}, token.NewError(token.Reason, c.CurrentSourceLocation(), nameTok.Text)
	case token.Function:
		return token.ParseNestedBlock(c, func(inner *token.Cursor) (PseudoClass, error) {
			switch strings.ToLower(nameTok.Text) {
			case "nth-child":
				a, b, err := parseNth(inner)
				return NthChild(a, b), err
			case "nth-of-type":
				a, b, err := parseNth(inner)
				return NthOfType(a, b), err
			case "not":
				var frags []Fragment
				for !inner.AtEnd() {
					f, _, _, err := parseFragment(inner, None)
					if err != nil {
						return PseudoClass{}, err
					}
					frags = append(frags, f)
					if inner.AtEnd() {
						break
					}
					inner.Next()
				}
				return Not(frags), nil
			}
			return PseudoClass{}, token.NewError(token.Reason, inner.CurrentSourceLocation(), nameTok.Text)
		})
		// note: ParseNestedBlock above already advances past the
		// matching close-paren before returning control here.
	}
	return PseudoClass{}, pseudoElementResult{}, token.NewError(token.Reason, c.CurrentSourceLocation(), nameTok.Text)
}

func pseudoElementKindFor(name string) PseudoElementKind {
	switch strings.ToLower(name) {
	case "before":
		return PseudoElementBefore
	case "after":
		return PseudoElementAfter
	case "first-line":
		return PseudoElementFirstLine
	case "first-letter":
		return PseudoElementFirstLetter
	}
	return PseudoElementNone
}

// parseNth parses the `<an+b>` microsyntax used by :nth-child()/:nth-of-type().
// It supports the common forms: `odd`, `even`, `<integer>`, `<n>`, and
// `<n>` followed by `+ <integer>` or `- <integer>`. A `-` written directly
// after the n (`2n-1`) is lexed as part of the unit and is not accepted.
func parseNth(c *token.Cursor) (a, b int, err error) {
	tok, e := c.Next()
	if e != nil {
		return 0, 0, e
	}
	offset := func() int {
		s, sign := c.State(), 1
		if nt := c.Peek(); nt.Kind == token.Delim && (nt.Text == "+" || nt.Text == "-") {
			if nt.Text == "-" {
				sign = -1
			}
			c.Next()
		}
		if nt := c.Peek(); nt.Kind == token.Number && nt.IsInt {
			c.Next()
			return sign * int(nt.Num)
		}
		c.Reset(s)
		return 0
	}
	if tok.Kind == token.Ident {
		switch strings.ToLower(tok.Text) {
		case "odd":
			return 2, 1, nil
		case "even":
			return 2, 0, nil
		}
	}
	if tok.Kind == token.Number && tok.IsInt {
		return 0, int(tok.Num), nil
	}
	// Dimension token like "2n", "2n+1", or ident "n"/"-n".
	text := tok.Text
	unit := tok.Unit
	if tok.Kind == token.Dimension && strings.HasPrefix(strings.ToLower(unit), "n") {
		a = int(tok.Num)
		rest := unit[1:]
		if rest == "" {
			return a, offset(), nil
		}
	}
	if tok.Kind == token.Ident && (text == "n" || text == "-n") {
		a = 1
		if text == "-n" {
			a = -1
		}
		return a, offset(), nil
	}
	return 0, 0, token.NewError(token.Reason, c.CurrentSourceLocation(), "malformed an+b expression")
}
