package props

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseBackground parses the `background` shorthand into a
// value.Background: a comma-separated list of layers, the last of
// which may additionally carry background-color, per §4.4.
func ParseBackground(c *token.Cursor) (value.Background, error) {
	var bg value.Background
	for {
		layer, col, hasColor, err := parseBackgroundLayer(c)
		if err != nil {
			return value.Background{}, err
		}
		bg.Layers = append(bg.Layers, layer)
		if hasColor {
			bg.Color = col
		}
		if c.AtEnd() || c.Peek().Kind != token.Comma {
			break
		}
		if hasColor {
			return value.Background{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), "background-color before the final layer")
		}
		c.Next()
	}
	return bg, nil
}

func parseBackgroundLayer(c *token.Cursor) (value.BackgroundLayer, value.Color, bool, error) {
	layer := value.DefaultBackgroundLayer()
	var col value.Color
	var hasColor bool
	havePosition := false

	for !c.AtEnd() {
		tok := c.Peek()
		if tok.Kind == token.Comma || tok.Kind == token.Semicolon {
			break
		}
		switch tok.Kind {
		case token.Function:
			switch strings.ToLower(tok.Text) {
			case "url":
				c.Next()
				u, err := token.ParseNestedBlock(c, func(inner *token.Cursor) (string, error) {
					t, err := inner.Next()
					if err != nil {
						return "", err
					}
					return t.Text, nil
				})
				if err != nil {
					return value.BackgroundLayer{}, value.Color{}, false, err
				}
				layer.Image = value.BackgroundImage{Kind: value.BackgroundImageURL, URL: u}
				continue
			case "linear-gradient", "radial-gradient", "conic-gradient":
				name := tok.Text
				c.Next()
				g, err := ParseGradient(c, name)
				if err != nil {
					return value.BackgroundLayer{}, value.Color{}, false, err
				}
				layer.Image = value.BackgroundImage{Kind: value.BackgroundImageGradient, Gradient: g}
				continue
			case "rgb", "rgba", "hsl", "hsla":
				col2, err := ParseColor(c)
				if err != nil {
					return value.BackgroundLayer{}, value.Color{}, false, err
				}
				col, hasColor = col2, true
				continue
			}
		case token.Url:
			c.Next()
			layer.Image = value.BackgroundImage{Kind: value.BackgroundImageURL, URL: tok.Text}
			continue
		case token.Hash, token.IDHash:
			col2, err := ParseColor(c)
			if err != nil {
				return value.BackgroundLayer{}, value.Color{}, false, err
			}
			col, hasColor = col2, true
			continue
		case token.Dimension, token.Percentage:
			if havePosition {
				sz, err := parseBackgroundExplicitSize(c)
				if err != nil {
					return value.BackgroundLayer{}, value.Color{}, false, err
				}
				layer.Size = sz
				continue
			}
			x, err := ParseLength(c)
			if err != nil {
				return value.BackgroundLayer{}, value.Color{}, false, err
			}
			y := x
			if !c.AtEnd() && (c.Peek().Kind == token.Dimension || c.Peek().Kind == token.Percentage) {
				y, err = ParseLength(c)
				if err != nil {
					return value.BackgroundLayer{}, value.Color{}, false, err
				}
			}
			layer.Position = value.GradientPosition{X: x, Y: y}
			havePosition = true
			if !c.AtEnd() && c.Peek().Kind == token.Delim && c.Peek().Text == "/" {
				c.Next()
				sz, err := parseBackgroundExplicitSize(c)
				if err != nil {
					return value.BackgroundLayer{}, value.Color{}, false, err
				}
				layer.Size = sz
			}
			continue
		case token.Ident:
			name := strings.ToLower(tok.Text)
			switch name {
			case "repeat-x":
				layer.Repeat = value.BackgroundRepeat{X: value.RepeatRepeat, Y: value.RepeatNoRepeat}
				c.Next()
				continue
			case "repeat-y":
				layer.Repeat = value.BackgroundRepeat{X: value.RepeatNoRepeat, Y: value.RepeatRepeat}
				c.Next()
				continue
			case "repeat", "space", "round", "no-repeat":
				c.Next()
				style := backgroundRepeatStyle(name)
				y := style
				if !c.AtEnd() && c.Peek().Kind == token.Ident && isRepeatKeyword(c.Peek().Text) {
					t2, _ := c.Next()
					y = backgroundRepeatStyle(strings.ToLower(t2.Text))
				}
				layer.Repeat = value.BackgroundRepeat{X: style, Y: y}
				continue
			case "scroll":
				layer.Attachment = value.AttachmentScroll
				c.Next()
				continue
			case "fixed":
				layer.Attachment = value.AttachmentFixed
				c.Next()
				continue
			case "local":
				layer.Attachment = value.AttachmentLocal
				c.Next()
				continue
			case "border-box":
				c.Next()
				layer.Origin = value.BoxBorderBox
				continue
			case "padding-box":
				c.Next()
				layer.Origin = value.BoxPaddingBox
				continue
			case "content-box":
				c.Next()
				layer.Clip = value.BoxContentBox
				continue
			case "cover":
				c.Next()
				layer.Size = value.BackgroundSize{Kind: value.BackgroundSizeCover}
				continue
			case "contain":
				c.Next()
				layer.Size = value.BackgroundSize{Kind: value.BackgroundSizeContain}
				continue
			case "none":
				c.Next()
				layer.Image = value.BackgroundImage{Kind: value.BackgroundImageNone}
				continue
			case "currentcolor", "transparent":
				col2, err := ParseColor(c)
				if err != nil {
					return value.BackgroundLayer{}, value.Color{}, false, err
				}
				col, hasColor = col2, true
				continue
			default:
				if _, ok := namedColors[name]; ok {
					col2, err := ParseColor(c)
					if err != nil {
						return value.BackgroundLayer{}, value.Color{}, false, err
					}
					col, hasColor = col2, true
					continue
				}
			}
		}
		break
	}
	return layer, col, hasColor, nil
}

func parseBackgroundExplicitSize(c *token.Cursor) (value.BackgroundSize, error) {
	w, err := ParseLength(c)
	if err != nil {
		return value.BackgroundSize{}, err
	}
	h := w
	if !c.AtEnd() && (c.Peek().Kind == token.Dimension || c.Peek().Kind == token.Percentage) {
		h, err = ParseLength(c)
		if err != nil {
			return value.BackgroundSize{}, err
		}
	}
	return value.BackgroundSize{Kind: value.BackgroundSizeExplicit, Width: w, Height: h}, nil
}

func isRepeatKeyword(s string) bool {
	switch strings.ToLower(s) {
	case "repeat", "space", "round", "no-repeat":
		return true
	}
	return false
}

func backgroundRepeatStyle(name string) value.BackgroundRepeatStyle {
	switch name {
	case "space":
		return value.RepeatSpace
	case "round":
		return value.RepeatRound
	case "no-repeat":
		return value.RepeatNoRepeat
	}
	return value.RepeatRepeat
}
