package props

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseLength parses a single <length-percentage> | auto value, per the
// Length sum type of §3: a dimension, a bare zero, a percentage, a
// `calc()`/`env()` expression, or the `auto` keyword.
func ParseLength(c *token.Cursor) (value.Length, error) {
	tok, err := c.Next()
	if err != nil {
		return value.Length{}, err
	}
	switch tok.Kind {
	case token.Ident:
		switch strings.ToLower(tok.Text) {
		case "auto":
			return value.Auto(), nil
		}
		return value.Length{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
	case token.Percentage:
		return value.Ratio(float32(tok.Num) / 100), nil
	case token.Number:
		if tok.Num == 0 {
			return value.Px(0), nil
		}
		return value.Length{}, token.NewError(token.Unsupported, tok.Loc, "length value missing unit")
	case token.Dimension:
		l, ok := unitToLength(float32(tok.Num), tok.Unit)
		if !ok {
			return value.Length{}, token.NewError(token.Unsupported, tok.Loc, tok.Unit)
		}
		return l, nil
	case token.Function:
		switch strings.ToLower(tok.Text) {
		case "calc":
			return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Length, error) {
				expr, err := parseCalcSum(inner)
				if err != nil {
					return value.Length{}, err
				}
				return value.CalcLength(expr), nil
			})
		case "env":
			return parseEnvFunc(c)
		}
	}
	return value.Length{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

// unitToLength maps a CSS unit identifier to the corresponding Length
// constructor, per the unit set in §3.
func unitToLength(num float32, unit string) (value.Length, bool) {
	switch strings.ToLower(unit) {
	case "px":
		return value.Px(num), true
	case "vw":
		return value.Vw(num), true
	case "vh":
		return value.Vh(num), true
	case "rem":
		return value.Rem(num), true
	case "rpx":
		return value.Rpx(num), true
	case "em":
		return value.Em(num), true
	case "vmin":
		return value.Vmin(num), true
	case "vmax":
		return value.Vmax(num), true
	}
	return value.Length{}, false
}

// unitToAngle maps a CSS angle unit identifier to an Angle constructor.
func unitToAngle(num float32, unit string) (value.Angle, bool) {
	switch strings.ToLower(unit) {
	case "deg":
		return value.Deg(num), true
	case "grad":
		return value.Grad(num), true
	case "rad":
		return value.Rad(num), true
	case "turn":
		return value.Turn(num), true
	}
	return value.Angle{}, false
}

// ParseAngle parses a bare <angle> or `calc()` angle expression.
func ParseAngle(c *token.Cursor) (value.Angle, error) {
	tok, err := c.Next()
	if err != nil {
		return value.Angle{}, err
	}
	switch tok.Kind {
	case token.Dimension:
		a, ok := unitToAngle(float32(tok.Num), tok.Unit)
		if !ok {
			return value.Angle{}, token.NewError(token.Unsupported, tok.Loc, tok.Unit)
		}
		return a, nil
	case token.Number:
		if tok.Num == 0 {
			return value.Deg(0), nil
		}
	case token.Function:
		if strings.ToLower(tok.Text) == "calc" {
			return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Angle, error) {
				expr, err := parseCalcSum(inner)
				if err != nil {
					return value.Angle{}, err
				}
				return value.Angle{Kind: value.AngleCalc, Calc: expr}, nil
			})
		}
	}
	return value.Angle{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

// parseEnvFunc parses the arguments of `env(name)` or `env(name, default)`.
// The caller has already consumed the "env" Function token;
// ParseNestedBlock consumes the arguments through the closing paren.
func parseEnvFunc(c *token.Cursor) (value.Length, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Length, error) {
		name, err := inner.ExpectIdent()
		if err != nil {
			return value.Length{}, err
		}
		def := value.Px(0)
		if !inner.AtEnd() {
			if err := inner.ExpectComma(); err == nil {
				d, err := ParseLength(inner)
				if err != nil {
					return value.Length{}, token.NewError(token.Reason, inner.CurrentSourceLocation(), "invalid env() default")
				}
				def = d
			}
		}
		return value.EnvLength(name, def), nil
	})
}
