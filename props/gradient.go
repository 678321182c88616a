package props

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseGradient parses `linear-gradient()`, `radial-gradient()`, or
// `conic-gradient()` into a value.Gradient, per §4.4. The function
// name has already been consumed by the caller (it is the Function
// token that dispatches here).
func ParseGradient(c *token.Cursor, name string) (value.Gradient, error) {
	switch strings.ToLower(name) {
	case "linear-gradient":
		return parseLinearGradient(c)
	case "radial-gradient":
		return parseRadialGradient(c)
	case "conic-gradient":
		return parseConicGradient(c)
	}
	return value.Gradient{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), name)
}

func parseLinearGradient(c *token.Cursor) (value.Gradient, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Gradient, error) {
		angle := value.DefaultLinearAngle()
		if !inner.AtEnd() {
			peeked := inner.Peek()
			switch {
			case peeked.Kind == token.Dimension || (peeked.Kind == token.Number && peeked.Num == 0):
				a, err := ParseAngle(inner)
				if err != nil {
					return value.Gradient{}, err
				}
				angle = a
				skipComma(inner)
			case peeked.Kind == token.Ident && strings.EqualFold(peeked.Text, "to"):
				inner.Next()
				var top, right, bottom, left bool
				for !inner.AtEnd() {
					tok := inner.Peek()
					if tok.Kind != token.Ident {
						break
					}
					inner.Next()
					switch strings.ToLower(tok.Text) {
					case "top":
						top = true
					case "right":
						right = true
					case "bottom":
						bottom = true
					case "left":
						left = true
					}
				}
				if a, ok := value.SideAngle(top, right, bottom, left); ok {
					angle = a
				}
				skipComma(inner)
			}
		}
		stops, err := parseColorStops(inner)
		if err != nil {
			return value.Gradient{}, err
		}
		return value.LinearGradient(angle, value.EvenlySpacedRatios(stops)), nil
	})
}

func parseRadialGradient(c *token.Cursor) (value.Gradient, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Gradient, error) {
		shape := value.ShapeEllipse
		size := value.SizeFarthestCorner
		var explicitW, explicitH value.Length
		pos := value.CenterPosition()

		for !inner.AtEnd() {
			tok := inner.Peek()
			if tok.Kind == token.Comma {
				break
			}
			if tok.Kind == token.Ident {
				switch strings.ToLower(tok.Text) {
				case "circle":
					shape = value.ShapeCircle
					inner.Next()
					continue
				case "ellipse":
					shape = value.ShapeEllipse
					inner.Next()
					continue
				case "closest-side":
					size = value.SizeClosestSide
					inner.Next()
					continue
				case "closest-corner":
					size = value.SizeClosestCorner
					inner.Next()
					continue
				case "farthest-side":
					size = value.SizeFarthestSide
					inner.Next()
					continue
				case "farthest-corner":
					size = value.SizeFarthestCorner
					inner.Next()
					continue
				case "at":
					inner.Next()
					x, err := ParseLength(inner)
					if err != nil {
						return value.Gradient{}, err
					}
					y, err := ParseLength(inner)
					if err != nil {
						return value.Gradient{}, err
					}
					pos = value.GradientPosition{X: x, Y: y}
					continue
				}
			}
			if tok.Kind == token.Dimension || tok.Kind == token.Percentage || (tok.Kind == token.Number && tok.Num == 0) {
				size = value.SizeExplicit
				w, err := ParseLength(inner)
				if err != nil {
					return value.Gradient{}, err
				}
				explicitW = w
				if !inner.AtEnd() && inner.Peek().Kind != token.Comma {
					h, err := ParseLength(inner)
					if err != nil {
						return value.Gradient{}, err
					}
					explicitH = h
				}
				continue
			}
			break
		}
		skipComma(inner)
		stops, err := parseColorStops(inner)
		if err != nil {
			return value.Gradient{}, err
		}
		g := value.RadialGradient(shape, size, pos, value.EvenlySpacedRatios(stops))
		g.ExplicitWidth = explicitW
		g.ExplicitHeight = explicitH
		return g, nil
	})
}

func parseConicGradient(c *token.Cursor) (value.Gradient, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Gradient, error) {
		from := value.DefaultConicFrom()
		pos := value.CenterPosition()
		for !inner.AtEnd() {
			tok := inner.Peek()
			if tok.Kind == token.Comma {
				break
			}
			if tok.Kind == token.Ident && strings.EqualFold(tok.Text, "from") {
				inner.Next()
				a, err := ParseAngle(inner)
				if err != nil {
					return value.Gradient{}, err
				}
				from = a
				continue
			}
			if tok.Kind == token.Ident && strings.EqualFold(tok.Text, "at") {
				inner.Next()
				x, err := ParseLength(inner)
				if err != nil {
					return value.Gradient{}, err
				}
				y, err := ParseLength(inner)
				if err != nil {
					return value.Gradient{}, err
				}
				pos = value.GradientPosition{X: x, Y: y}
				continue
			}
			break
		}
		skipComma(inner)
		stops, err := parseColorStops(inner)
		if err != nil {
			return value.Gradient{}, err
		}
		return value.ConicGradient(from, pos, value.EvenlySpacedRatios(stops)), nil
	})
}

// parseColorStops parses a comma-separated `<color> <percentage>?` list.
func parseColorStops(c *token.Cursor) ([]value.ColorStop, error) {
	var stops []value.ColorStop
	for {
		col, err := ParseColor(c)
		if err != nil {
			return nil, err
		}
		stop := value.ColorStop{Color: col}
		if !c.AtEnd() && c.Peek().Kind == token.Percentage {
			tok, _ := c.Next()
			stop.HasRatio = true
			stop.Ratio = float32(tok.Num) / 100
		}
		stops = append(stops, stop)
		if c.AtEnd() || c.Peek().Kind != token.Comma {
			break
		}
		c.Next()
	}
	return stops, nil
}
