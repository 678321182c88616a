package sheet

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// parseMediaExpressionSeries parses a comma-separated MediaQuery list
// up to (not including) the first top-level `{` or `;`, per §4.5. It
// is shared by `@media` and `@import ... media-query-list;`.
func parseMediaExpressionSeries(c *token.Cursor, parent *value.Media) (*value.Media, error) {
	return token.ParseUntilBefore(c, []token.Kind{token.CurlyBracketBlock, token.Semicolon}, func(inner *token.Cursor) (*value.Media, error) {
		m := &value.Media{Parent: parent}
		for {
			mq, err := parseOneMediaQuery(inner)
			if err != nil {
				return nil, err
			}
			m.Queries = append(m.Queries, mq)
			if inner.AtEnd() {
				break
			}
			if err := inner.ExpectComma(); err != nil {
				return nil, err
			}
		}
		return m, nil
	})
}

// ParseMediaExpressionOnly parses a single comma-separated media query
// series from a standalone string, per §6's parse_media_expression_only
// entry point (e.g. for a host validating a media attribute in
// isolation from a full sheet).
func ParseMediaExpressionOnly(source string) (*value.Media, error) {
	c := token.NewCursor(source)
	return parseMediaExpressionSeries(c, nil)
}

func parseOneMediaQuery(c *token.Cursor) (value.MediaQuery, error) {
	var mq value.MediaQuery
	tok, err := c.Next()
	if err != nil {
		return mq, err
	}
	switch tok.Kind {
	case token.Ident:
		switch strings.ToLower(tok.Text) {
		case "only":
			mq.Decorator = value.MediaDecoratorOnly
			expr, err := parseMediaExpression(c)
			if err != nil {
				return mq, err
			}
			mq.Expressions = append(mq.Expressions, expr)
		case "not":
			mq.Decorator = value.MediaDecoratorNot
			expr, err := parseMediaExpression(c)
			if err != nil {
				return mq, err
			}
			mq.Expressions = append(mq.Expressions, expr)
		default:
			mq.Expressions = append(mq.Expressions, mediaTypeExpression(tok.Text))
		}
	case token.ParenthesisBlock:
		expr, err := parseMediaExpressionInner(c)
		if err != nil {
			return mq, err
		}
		mq.Expressions = append(mq.Expressions, expr)
	default:
		return mq, token.NewError(token.UnexpectedToken, tok.Loc, tok.Text)
	}

	for {
		if c.AtEnd() {
			break
		}
		save := c.State()
		t, err := c.Next()
		if err != nil {
			break
		}
		if t.Kind == token.Ident && strings.ToLower(t.Text) == "and" {
			expr, err := parseMediaExpression(c)
			if err != nil {
				return mq, err
			}
			mq.Expressions = append(mq.Expressions, expr)
			continue
		}
		c.Reset(save)
		break
	}
	return mq, nil
}

func parseMediaExpression(c *token.Cursor) (value.MediaExpression, error) {
	tok, err := c.Next()
	if err != nil {
		return value.MediaExpression{}, err
	}
	switch tok.Kind {
	case token.Ident:
		return mediaTypeExpression(tok.Text), nil
	case token.ParenthesisBlock:
		return parseMediaExpressionInner(c)
	}
	return value.MediaExpression{}, token.NewError(token.UnexpectedToken, tok.Loc, tok.Text)
}

func mediaTypeExpression(ident string) value.MediaExpression {
	switch strings.ToLower(ident) {
	case "all":
		return value.MediaExpression{Kind: value.MediaExprType, MediaType: value.MediaAll}
	case "screen":
		return value.MediaExpression{Kind: value.MediaExprType, MediaType: value.MediaScreen}
	}
	return value.MediaExpression{Kind: value.MediaExprUnknown}
}

// parseMediaExpressionInner must be called immediately after consuming
// a ParenthesisBlock start token; it parses one `(feature: value)`
// media feature test, per §4.5.
func parseMediaExpressionInner(c *token.Cursor) (value.MediaExpression, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.MediaExpression, error) {
		tok, err := inner.Next()
		if err != nil {
			return value.MediaExpression{}, err
		}
		if tok.Kind != token.Ident {
			return value.MediaExpression{}, token.NewError(token.UnexpectedToken, tok.Loc, tok.Text)
		}
		name := strings.ToLower(tok.Text)
		if inner.AtEnd() {
			return mediaTypeExpression(name), nil
		}
		if err := inner.ExpectColon(); err != nil {
			return value.MediaExpression{}, err
		}
		switch name {
		case "orientation":
			id, err := inner.ExpectIdent()
			if err != nil {
				return value.MediaExpression{}, err
			}
			switch strings.ToLower(id) {
			case "portrait":
				return value.MediaExpression{Kind: value.MediaExprOrientation, Orientation: value.OrientationPortrait}, nil
			case "landscape":
				return value.MediaExpression{Kind: value.MediaExprOrientation, Orientation: value.OrientationLandscape}, nil
			}
			return value.MediaExpression{Kind: value.MediaExprOrientation, Orientation: value.OrientationNone}, nil
		case "width":
			px, err := parsePxLength(inner)
			if err != nil {
				return value.MediaExpression{}, err
			}
			return value.MediaExpression{Kind: value.MediaExprWidth, Px: px}, nil
		case "min-width":
			px, err := parsePxLength(inner)
			if err != nil {
				return value.MediaExpression{}, err
			}
			return value.MediaExpression{Kind: value.MediaExprMinWidth, Px: px}, nil
		case "max-width":
			px, err := parsePxLength(inner)
			if err != nil {
				return value.MediaExpression{}, err
			}
			return value.MediaExpression{Kind: value.MediaExprMaxWidth, Px: px}, nil
		case "height":
			px, err := parsePxLength(inner)
			if err != nil {
				return value.MediaExpression{}, err
			}
			return value.MediaExpression{Kind: value.MediaExprHeight, Px: px}, nil
		case "min-height":
			px, err := parsePxLength(inner)
			if err != nil {
				return value.MediaExpression{}, err
			}
			return value.MediaExpression{Kind: value.MediaExprMinHeight, Px: px}, nil
		case "max-height":
			px, err := parsePxLength(inner)
			if err != nil {
				return value.MediaExpression{}, err
			}
			return value.MediaExpression{Kind: value.MediaExprMaxHeight, Px: px}, nil
		case "prefers-color-scheme":
			id, err := inner.ExpectIdent()
			if err != nil {
				return value.MediaExpression{}, err
			}
			switch strings.ToLower(id) {
			case "light":
				return value.MediaExpression{Kind: value.MediaExprTheme, Theme: value.ThemeLight}, nil
			case "dark":
				return value.MediaExpression{Kind: value.MediaExprTheme, Theme: value.ThemeDark}, nil
			}
			return value.MediaExpression{Kind: value.MediaExprUnknown}, nil
		}
		return value.MediaExpression{Kind: value.MediaExprUnknown}, nil
	})
}

// parsePxLength accepts a bare zero Number or a px Dimension, per the
// original's parse_px_length — any other unit is a parse error.
func parsePxLength(c *token.Cursor) (float32, error) {
	tok, err := c.Next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case token.Number:
		if tok.Num == 0 {
			return 0, nil
		}
	case token.Dimension:
		if strings.EqualFold(tok.Unit, "px") {
			return float32(tok.Num), nil
		}
	}
	return 0, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}
