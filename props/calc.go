package props

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// parseCalcSum parses a `+`/`-` chain of calc products, the lowest
// precedence level of the `calc()` grammar (§4.4: "`*` and `/` bind
// tighter than `+` and `−`").
func parseCalcSum(c *token.Cursor) (*value.CalcExpr, error) {
	left, err := parseCalcProduct(c)
	if err != nil {
		return nil, err
	}
	for !c.AtEnd() {
		tok := c.Peek()
		if tok.Kind != token.Delim || (tok.Text != "+" && tok.Text != "-") {
			break
		}
		c.Next()
		right, err := parseCalcProduct(c)
		if err != nil {
			return nil, err
		}
		op := value.OpAdd
		if tok.Text == "-" {
			op = value.OpSub
		}
		left = &value.CalcExpr{Kind: value.CalcBinary, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func parseCalcProduct(c *token.Cursor) (*value.CalcExpr, error) {
	left, err := parseCalcAtom(c)
	if err != nil {
		return nil, err
	}
	for !c.AtEnd() {
		tok := c.Peek()
		if tok.Kind != token.Delim || (tok.Text != "*" && tok.Text != "/") {
			break
		}
		c.Next()
		right, err := parseCalcAtom(c)
		if err != nil {
			return nil, err
		}
		op := value.OpMul
		if tok.Text == "/" {
			op = value.OpDiv
		}
		left = &value.CalcExpr{Kind: value.CalcBinary, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func parseCalcAtom(c *token.Cursor) (*value.CalcExpr, error) {
	tok, err := c.Next()
	if err != nil {
		return nil, err
	}
	negate := false
	if tok.Kind == token.Delim && tok.Text == "-" {
		negate = true
		tok, err = c.Next()
		if err != nil {
			return nil, err
		}
	}
	var e *value.CalcExpr
	switch tok.Kind {
	case token.Number:
		e = &value.CalcExpr{Kind: value.CalcNumber, Number: value.F32(float32(tok.Num))}
	case token.Percentage:
		e = &value.CalcExpr{Kind: value.CalcLength, Length: value.Ratio(float32(tok.Num) / 100)}
	case token.Dimension:
		if l, ok := unitToLength(float32(tok.Num), tok.Unit); ok {
			e = &value.CalcExpr{Kind: value.CalcLength, Length: l}
		} else if a, ok := unitToAngle(float32(tok.Num), tok.Unit); ok {
			e = &value.CalcExpr{Kind: value.CalcAngle, Angle: a}
		} else {
			return nil, token.NewError(token.Unsupported, tok.Loc, tok.Unit)
		}
	case token.ParenthesisBlock:
		grouped, err := token.ParseNestedBlock(c, func(inner *token.Cursor) (*value.CalcExpr, error) {
			return parseCalcSum(inner)
		})
		if err != nil {
			return nil, err
		}
		e = grouped
	case token.Function:
		switch strings.ToLower(tok.Text) {
		case "calc":
			sub, err := token.ParseNestedBlock(c, func(inner *token.Cursor) (*value.CalcExpr, error) {
				return parseCalcSum(inner)
			})
			if err != nil {
				return nil, err
			}
			e = sub
		case "env":
			l, err := parseEnvFunc(c)
			if err != nil {
				return nil, err
			}
			e = &value.CalcExpr{Kind: value.CalcEnv, EnvName: l.EnvName, EnvDefault: derefDefault(l)}
		default:
			return nil, token.NewError(token.Unsupported, tok.Loc, tok.Text)
		}
	default:
		return nil, token.NewError(token.UnexpectedToken, tok.Loc, tok.Text)
	}
	if negate {
		e = &value.CalcExpr{
			Kind: value.CalcBinary, Op: value.OpMul,
			Left:  e,
			Right: &value.CalcExpr{Kind: value.CalcNumber, Number: value.F32(-1)},
		}
	}
	return e, nil
}

func derefDefault(l value.Length) value.Length {
	if l.EnvDefault != nil {
		return *l.EnvDefault
	}
	return value.Px(0)
}
