package props

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseTransform parses an ordered `transform` function list, per §3's
// narrow Transform value (parsed and carried, not executed by the
// layout core).
func ParseTransform(c *token.Cursor) (value.Transform, error) {
	var t value.Transform
	for !c.AtEnd() {
		tok := c.Peek()
		if tok.Kind == token.Ident && strings.EqualFold(tok.Text, "none") {
			c.Next()
			continue
		}
		if tok.Kind != token.Function {
			break
		}
		c.Next()
		f, err := parseTransformFunc(c, tok.Text)
		if err != nil {
			return value.Transform{}, err
		}
		t.Funcs = append(t.Funcs, f)
	}
	return t, nil
}

func parseTransformFunc(c *token.Cursor, name string) (value.TransformFunc, error) {
	switch strings.ToLower(name) {
	case "translate":
		return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.TransformFunc, error) {
			x, err := ParseLength(inner)
			if err != nil {
				return value.TransformFunc{}, err
			}
			y := value.Px(0)
			if skipComma(inner) {
				y, err = ParseLength(inner)
				if err != nil {
					return value.TransformFunc{}, err
				}
			}
			return value.TransformFunc{Kind: value.TransformTranslate, X: x, Y: y}, nil
		})
	case "translatex":
		return parseSingleLengthFunc(c, value.TransformTranslateX, true)
	case "translatey":
		return parseSingleLengthFunc(c, value.TransformTranslateY, false)
	case "scale":
		return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.TransformFunc, error) {
			sx, err := parseUnitlessNumber(inner)
			if err != nil {
				return value.TransformFunc{}, err
			}
			sy := sx
			if skipComma(inner) {
				sy, err = parseUnitlessNumber(inner)
				if err != nil {
					return value.TransformFunc{}, err
				}
			}
			return value.TransformFunc{Kind: value.TransformScale, SX: value.F32(sx), SY: value.F32(sy)}, nil
		})
	case "scalex":
		return parseSingleScaleFunc(c, value.TransformScaleX, true)
	case "scaley":
		return parseSingleScaleFunc(c, value.TransformScaleY, false)
	case "rotate":
		return parseSingleAngleFunc(c, value.TransformRotate)
	case "skewx":
		return parseSingleAngleFunc(c, value.TransformSkewX)
	case "skewy":
		return parseSingleAngleFunc(c, value.TransformSkewY)
	}
	return value.TransformFunc{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), name)
}

func parseSingleLengthFunc(c *token.Cursor, kind value.TransformFuncKind, isX bool) (value.TransformFunc, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.TransformFunc, error) {
		v, err := ParseLength(inner)
		if err != nil {
			return value.TransformFunc{}, err
		}
		f := value.TransformFunc{Kind: kind}
		if isX {
			f.X = v
		} else {
			f.Y = v
		}
		return f, nil
	})
}

func parseSingleScaleFunc(c *token.Cursor, kind value.TransformFuncKind, isX bool) (value.TransformFunc, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.TransformFunc, error) {
		v, err := parseUnitlessNumber(inner)
		if err != nil {
			return value.TransformFunc{}, err
		}
		f := value.TransformFunc{Kind: kind}
		if isX {
			f.SX = value.F32(v)
		} else {
			f.SY = value.F32(v)
		}
		return f, nil
	})
}

func parseSingleAngleFunc(c *token.Cursor, kind value.TransformFuncKind) (value.TransformFunc, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.TransformFunc, error) {
		a, err := ParseAngle(inner)
		if err != nil {
			return value.TransformFunc{}, err
		}
		return value.TransformFunc{Kind: kind, Angle: a}, nil
	})
}
