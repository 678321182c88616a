package props

import (
	"strconv"
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// namedColors is a pragmatic subset of the CSS named-color keyword
// table (§4.4 accepts "keyword" colors without requiring full CSS
// Color Level 4 conformance, per §1 Non-goals).
var namedColors = map[string][3]uint8{
	"black":       {0, 0, 0},
	"white":       {255, 255, 255},
	"red":         {255, 0, 0},
	"green":       {0, 128, 0},
	"blue":        {0, 0, 255},
	"yellow":      {255, 255, 0},
	"orange":      {255, 165, 0},
	"purple":      {128, 0, 128},
	"gray":        {128, 128, 128},
	"grey":        {128, 128, 128},
	"silver":      {192, 192, 192},
	"maroon":      {128, 0, 0},
	"olive":       {128, 128, 0},
	"lime":        {0, 255, 0},
	"teal":        {0, 128, 128},
	"navy":        {0, 0, 128},
	"fuchsia":     {255, 0, 255},
	"aqua":        {0, 255, 255},
	"pink":        {255, 192, 203},
	"brown":       {165, 42, 42},
	"transparent": {0, 0, 0},
}

// ParseColor parses {Undefined, CurrentColor, Specified(r,g,b,a)}, per
// §3/§4.4: keyword, #rgb, #rrggbb, #rgba, #rrggbbaa, rgb(), rgba(),
// hsl(), hsla(), currentColor.
func ParseColor(c *token.Cursor) (value.Color, error) {
	tok, err := c.Next()
	if err != nil {
		return value.Color{}, err
	}
	switch tok.Kind {
	case token.Ident:
		name := strings.ToLower(tok.Text)
		if name == "currentcolor" {
			return value.CurrentColor(), nil
		}
		if rgb, ok := namedColors[name]; ok {
			a := uint8(255)
			if name == "transparent" {
				a = 0
			}
			return value.RGBA(rgb[0], rgb[1], rgb[2], a), nil
		}
		return value.Color{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
	case token.Hash, token.IDHash:
		return parseHexColor(tok.Text, tok.Loc)
	case token.Function:
		switch strings.ToLower(tok.Text) {
		case "rgb", "rgba":
			return parseRGBFunc(c)
		case "hsl", "hsla":
			return parseHSLFunc(c)
		}
	}
	return value.Color{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

func parseHexColor(hex string, loc token.SourceLocation) (value.Color, error) {
	expand := func(c byte) [2]byte { return [2]byte{c, c} }
	hexByte := func(hi, lo byte) uint8 {
		v, _ := strconv.ParseUint(string([]byte{hi, lo}), 16, 8)
		return uint8(v)
	}
	switch len(hex) {
	case 3, 4:
		r := expand(hex[0])
		g := expand(hex[1])
		b := expand(hex[2])
		a := uint8(255)
		if len(hex) == 4 {
			ab := expand(hex[3])
			a = hexByte(ab[0], ab[1])
		}
		return value.RGBA(hexByte(r[0], r[1]), hexByte(g[0], g[1]), hexByte(b[0], b[1]), a), nil
	case 6, 8:
		r := hexByte(hex[0], hex[1])
		g := hexByte(hex[2], hex[3])
		b := hexByte(hex[4], hex[5])
		a := uint8(255)
		if len(hex) == 8 {
			a = hexByte(hex[6], hex[7])
		}
		return value.RGBA(r, g, b, a), nil
	}
	return value.Color{}, token.NewError(token.Unsupported, loc, "#"+hex)
}

func parseRGBFunc(c *token.Cursor) (value.Color, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Color, error) {
		r, err := parseChannel(inner)
		if err != nil {
			return value.Color{}, err
		}
		skipComma(inner)
		g, err := parseChannel(inner)
		if err != nil {
			return value.Color{}, err
		}
		skipComma(inner)
		b, err := parseChannel(inner)
		if err != nil {
			return value.Color{}, err
		}
		a := uint8(255)
		if skipComma(inner) {
			af, err := parseAlpha(inner)
			if err != nil {
				return value.Color{}, err
			}
			a = af
		}
		return value.RGBA(r, g, b, a), nil
	})
}

func parseHSLFunc(c *token.Cursor) (value.Color, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.Color, error) {
		h, err := parseDegree(inner)
		if err != nil {
			return value.Color{}, err
		}
		skipComma(inner)
		s, err := parsePercent01(inner)
		if err != nil {
			return value.Color{}, err
		}
		skipComma(inner)
		l, err := parsePercent01(inner)
		if err != nil {
			return value.Color{}, err
		}
		a := uint8(255)
		if skipComma(inner) {
			af, err := parseAlpha(inner)
			if err != nil {
				return value.Color{}, err
			}
			a = af
		}
		r, g, b := hslToRGB(h, s, l)
		return value.RGBA(r, g, b, a), nil
	})
}

func parseChannel(c *token.Cursor) (uint8, error) {
	tok, err := c.Next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case token.Number:
		return clampByte(tok.Num), nil
	case token.Percentage:
		return clampByte(tok.Num / 100 * 255), nil
	}
	return 0, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

func parseAlpha(c *token.Cursor) (uint8, error) {
	tok, err := c.Next()
	if err != nil {
		return 255, err
	}
	switch tok.Kind {
	case token.Number:
		return clampByte(tok.Num * 255), nil
	case token.Percentage:
		return clampByte(tok.Num / 100 * 255), nil
	}
	return 255, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

func parseDegree(c *token.Cursor) (float64, error) {
	tok, err := c.Next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case token.Number:
		return tok.Num, nil
	case token.Dimension:
		if strings.EqualFold(tok.Unit, "deg") {
			return tok.Num, nil
		}
	}
	return 0, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

func parsePercent01(c *token.Cursor) (float64, error) {
	tok, err := c.Next()
	if err != nil {
		return 0, err
	}
	if tok.Kind == token.Percentage {
		return tok.Num / 100, nil
	}
	return 0, token.NewError(token.Unsupported, tok.Loc, tok.Text)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// skipComma consumes a Comma token if present, reporting whether it did;
// used because this parser accepts both comma and whitespace-separated
// rgb()/hsl() argument forms without distinguishing callers.
func skipComma(c *token.Cursor) bool {
	if c.AtEnd() {
		return false
	}
	if c.Peek().Kind == token.Comma {
		c.Next()
		return true
	}
	return false
}

// hslToRGB converts HSL (h in degrees, s/l in 0..1) to 8-bit sRGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = mod(h, 360)
	c := (1 - absF(2*l-1)) * s
	x := c * (1 - absF(mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return clampByte((r + m) * 255), clampByte((g + m) * 255), clampByte((b + m) * 255)
}

func mod(a, b float64) float64 {
	v := a - b*float64(int(a/b))
	if v < 0 {
		v += b
	}
	return v
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
