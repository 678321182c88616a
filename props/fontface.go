package props

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseFontFamily parses the `font-family` fallback chain: a
// comma-separated list of quoted strings or unquoted identifier runs.
func ParseFontFamily(c *token.Cursor) (value.FontFamily, error) {
	var names []string
	for {
		tok, err := c.Next()
		if err != nil {
			return value.FontFamily{}, err
		}
		switch tok.Kind {
		case token.String:
			names = append(names, tok.Text)
		case token.Ident:
			name := tok.Text
			for !c.AtEnd() && c.Peek().Kind == token.Ident {
				t2, _ := c.Next()
				name += " " + t2.Text
			}
			names = append(names, name)
		default:
			return value.FontFamily{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
		}
		if c.AtEnd() || c.Peek().Kind != token.Comma {
			break
		}
		c.Next()
	}
	return value.FontFamily{Names: names}, nil
}

// ParseFontStyle parses the `font-style` keyword.
func ParseFontStyle(c *token.Cursor) (value.FontStyleKind, error) {
	tok, err := c.Next()
	if err != nil {
		return value.FontStyleNormal, err
	}
	switch strings.ToLower(tok.Text) {
	case "normal":
		return value.FontStyleNormal, nil
	case "italic":
		return value.FontStyleItalic, nil
	case "oblique":
		return value.FontStyleOblique, nil
	}
	return value.FontStyleNormal, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

// ParseFontWeight parses the `font-weight` keyword or numeric value.
func ParseFontWeight(c *token.Cursor) (value.FontWeight, error) {
	tok, err := c.Next()
	if err != nil {
		return value.FontWeight{}, err
	}
	switch tok.Kind {
	case token.Number:
		return value.FontWeight{Value: int32(tok.Num), IsBold: tok.Num >= 700}, nil
	case token.Ident:
		switch strings.ToLower(tok.Text) {
		case "normal":
			return value.NormalWeight(), nil
		case "bold":
			return value.BoldWeight(), nil
		}
	}
	return value.FontWeight{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

// ParseFontFaceDescriptors parses the declaration block body of an
// @font-face rule — `font-family`, `src`, `font-style`, `font-weight`,
// `font-display` — into a value.FontFace, per §4.4. The caller supplies
// a cursor already scoped to the body (e.g. via ParseNestedBlock over
// the rule's CurlyBracketBlock).
func ParseFontFaceDescriptors(c *token.Cursor) (value.FontFace, error) {
	face := value.FontFace{Weight: value.NormalWeight()}
	for !c.AtEnd() {
		name, err := c.ExpectIdent()
		if err != nil {
			return value.FontFace{}, err
		}
		if err := c.ExpectColon(); err != nil {
			return value.FontFace{}, err
		}
		switch strings.ToLower(name) {
		case "font-family":
			fam, err := ParseFontFamily(c)
			if err != nil {
				return value.FontFace{}, err
			}
			if len(fam.Names) > 0 {
				face.Family = fam.Names[0]
			}
		case "src":
			srcs, err := parseFontFaceSrc(c)
			if err != nil {
				return value.FontFace{}, err
			}
			face.Sources = srcs
		case "font-style":
			style, err := ParseFontStyle(c)
			if err != nil {
				return value.FontFace{}, err
			}
			face.Style = style
		case "font-weight":
			w, err := ParseFontWeight(c)
			if err != nil {
				return value.FontFace{}, err
			}
			face.Weight = w
		case "font-display":
			d, err := parseFontDisplay(c)
			if err != nil {
				return value.FontFace{}, err
			}
			face.Display = d
		default:
			skipToSemicolon(c)
		}
		if !c.AtEnd() && c.Peek().Kind == token.Semicolon {
			c.Next()
		}
	}
	return face, nil
}

func parseFontFaceSrc(c *token.Cursor) ([]value.FontFaceSource, error) {
	var out []value.FontFaceSource
	for {
		tok, err := c.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == token.Url:
			src := value.FontFaceSource{URL: tok.Text}
			if !c.AtEnd() && c.Peek().Kind == token.Function && strings.EqualFold(c.Peek().Text, "format") {
				c.Next()
				fmtHint, err := token.ParseNestedBlock(c, func(inner *token.Cursor) (string, error) {
					t, err := inner.Next()
					if err != nil {
						return "", err
					}
					return t.Text, nil
				})
				if err != nil {
					return nil, err
				}
				src.Format = fmtHint
			}
			out = append(out, src)
		case tok.Kind == token.Function && strings.EqualFold(tok.Text, "local"):
			name, err := token.ParseNestedBlock(c, func(inner *token.Cursor) (string, error) {
				t, err := inner.Next()
				if err != nil {
					return "", err
				}
				return t.Text, nil
			})
			if err != nil {
				return nil, err
			}
			out = append(out, value.FontFaceSource{IsLocal: true, Local: name})
		case tok.Kind == token.Function && strings.EqualFold(tok.Text, "url"):
			u, err := token.ParseNestedBlock(c, func(inner *token.Cursor) (string, error) {
				t, err := inner.Next()
				if err != nil {
					return "", err
				}
				return t.Text, nil
			})
			if err != nil {
				return nil, err
			}
			src := value.FontFaceSource{URL: u}
			if !c.AtEnd() && c.Peek().Kind == token.Function && strings.EqualFold(c.Peek().Text, "format") {
				c.Next()
				fmtHint, err := token.ParseNestedBlock(c, func(inner *token.Cursor) (string, error) {
					t, err := inner.Next()
					if err != nil {
						return "", err
					}
					return t.Text, nil
				})
				if err != nil {
					return nil, err
				}
				src.Format = fmtHint
			}
			out = append(out, src)
		default:
			return nil, token.NewError(token.Unsupported, tok.Loc, tok.Text)
		}
		if c.AtEnd() || c.Peek().Kind != token.Comma {
			break
		}
		c.Next()
	}
	return out, nil
}

func parseFontDisplay(c *token.Cursor) (value.FontDisplay, error) {
	tok, err := c.Next()
	if err != nil {
		return value.FontDisplayAuto, err
	}
	switch strings.ToLower(tok.Text) {
	case "auto":
		return value.FontDisplayAuto, nil
	case "block":
		return value.FontDisplayBlock, nil
	case "swap":
		return value.FontDisplaySwap, nil
	case "fallback":
		return value.FontDisplayFallback, nil
	case "optional":
		return value.FontDisplayOptional, nil
	}
	return value.FontDisplayAuto, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

// skipToSemicolon discards tokens until (not including) the next
// Semicolon or end of cursor, used to recover from an unrecognized
// @font-face descriptor without aborting the whole rule.
func skipToSemicolon(c *token.Cursor) {
	for !c.AtEnd() && c.Peek().Kind != token.Semicolon {
		c.Next()
	}
}
