package props

import (
	"strings"

	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseTransitionList parses the `transition` shorthand's comma
// separated layer list, per §4.4: each layer is `<property>? <duration>?
// <timing-function>? <delay>?` in any order, distinguished by token
// kind (the first time value seen is duration, the second is delay;
// an identifier naming a timing keyword is timing, any other
// identifier is the property name).
func ParseTransitionList(c *token.Cursor) ([]value.Transition, error) {
	var out []value.Transition
	for {
		t, err := parseTransitionLayer(c)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		if c.AtEnd() || c.Peek().Kind != token.Comma {
			break
		}
		c.Next()
	}
	return out, nil
}

func parseTransitionLayer(c *token.Cursor) (value.Transition, error) {
	t := value.DefaultTransition()
	sawDuration := false
	haveProperty := false
	for !c.AtEnd() {
		tok := c.Peek()
		if tok.Kind == token.Comma || tok.Kind == token.Semicolon {
			break
		}
		switch tok.Kind {
		case token.Dimension:
			secs, ok := durationSeconds(tok.Num, tok.Unit)
			if !ok {
				return value.Transition{}, token.NewError(token.Unsupported, tok.Loc, tok.Unit)
			}
			c.Next()
			if !sawDuration {
				t.Duration = secs
				sawDuration = true
			} else {
				t.Delay = secs
			}
			continue
		case token.Function:
			if strings.EqualFold(tok.Text, "cubic-bezier") {
				tf, err := parseCubicBezier(c)
				if err != nil {
					return value.Transition{}, err
				}
				t.Timing = tf
				continue
			}
			if strings.EqualFold(tok.Text, "steps") {
				tf, err := parseSteps(c)
				if err != nil {
					return value.Transition{}, err
				}
				t.Timing = tf
				continue
			}
		case token.Ident:
			if tf, ok := namedTimingFunction(tok.Text); ok {
				t.Timing = tf
				c.Next()
				continue
			}
			c.Next()
			if !haveProperty {
				t.Property = tok.Text
				haveProperty = true
			}
			continue
		}
		break
	}
	return t, nil
}

// ParseAnimationList parses the `animation` shorthand's comma
// separated layer list.
func ParseAnimationList(c *token.Cursor) ([]value.Animation, error) {
	var out []value.Animation
	for {
		a, err := parseAnimationLayer(c)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
		if c.AtEnd() || c.Peek().Kind != token.Comma {
			break
		}
		c.Next()
	}
	return out, nil
}

func parseAnimationLayer(c *token.Cursor) (value.Animation, error) {
	a := value.DefaultAnimation()
	sawDuration := false
	haveName := false
	for !c.AtEnd() {
		tok := c.Peek()
		if tok.Kind == token.Comma || tok.Kind == token.Semicolon {
			break
		}
		switch tok.Kind {
		case token.Number:
			c.Next()
			a.IterationCount = float32(tok.Num)
			continue
		case token.Dimension:
			secs, ok := durationSeconds(tok.Num, tok.Unit)
			if !ok {
				return value.Animation{}, token.NewError(token.Unsupported, tok.Loc, tok.Unit)
			}
			c.Next()
			if !sawDuration {
				a.Duration = secs
				sawDuration = true
			} else {
				a.Delay = secs
			}
			continue
		case token.Function:
			if strings.EqualFold(tok.Text, "cubic-bezier") {
				tf, err := parseCubicBezier(c)
				if err != nil {
					return value.Animation{}, err
				}
				a.Timing = tf
				continue
			}
			if strings.EqualFold(tok.Text, "steps") {
				tf, err := parseSteps(c)
				if err != nil {
					return value.Animation{}, err
				}
				a.Timing = tf
				continue
			}
		case token.Ident:
			name := strings.ToLower(tok.Text)
			switch name {
			case "infinite":
				c.Next()
				a.IterationCount = value.Inf
				continue
			case "normal":
				c.Next()
				a.Direction = value.DirectionNormal
				continue
			case "reverse":
				c.Next()
				a.Direction = value.DirectionReverse
				continue
			case "alternate":
				c.Next()
				a.Direction = value.DirectionAlternate
				continue
			case "alternate-reverse":
				c.Next()
				a.Direction = value.DirectionAlternateReverse
				continue
			case "forwards":
				c.Next()
				a.FillMode = value.FillForwards
				continue
			case "backwards":
				c.Next()
				a.FillMode = value.FillBackwards
				continue
			case "both":
				c.Next()
				a.FillMode = value.FillBoth
				continue
			case "none":
				c.Next()
				a.FillMode = value.FillNone
				continue
			case "running":
				c.Next()
				a.PlayState = value.PlayStateRunning
				continue
			case "paused":
				c.Next()
				a.PlayState = value.PlayStatePaused
				continue
			}
			if tf, ok := namedTimingFunction(tok.Text); ok {
				a.Timing = tf
				c.Next()
				continue
			}
			c.Next()
			if !haveName {
				a.Name = tok.Text
				haveName = true
			}
			continue
		}
		break
	}
	return a, nil
}

func durationSeconds(v float64, unit string) (float32, bool) {
	switch strings.ToLower(unit) {
	case "s":
		return float32(v), true
	case "ms":
		return float32(v) / 1000, true
	}
	return 0, false
}

func namedTimingFunction(ident string) (value.TimingFunction, bool) {
	switch strings.ToLower(ident) {
	case "ease":
		return value.TimingFunction{Kind: value.TimingEase}, true
	case "linear":
		return value.TimingFunction{Kind: value.TimingLinear}, true
	case "ease-in":
		return value.TimingFunction{Kind: value.TimingEaseIn}, true
	case "ease-out":
		return value.TimingFunction{Kind: value.TimingEaseOut}, true
	case "ease-in-out":
		return value.TimingFunction{Kind: value.TimingEaseInOut}, true
	case "step-start":
		return value.TimingFunction{Kind: value.TimingStepStart}, true
	case "step-end":
		return value.TimingFunction{Kind: value.TimingStepEnd}, true
	}
	return value.TimingFunction{}, false
}

func parseCubicBezier(c *token.Cursor) (value.TimingFunction, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.TimingFunction, error) {
		x1, err := parseUnitlessNumber(inner)
		if err != nil {
			return value.TimingFunction{}, err
		}
		skipComma(inner)
		y1, err := parseUnitlessNumber(inner)
		if err != nil {
			return value.TimingFunction{}, err
		}
		skipComma(inner)
		x2, err := parseUnitlessNumber(inner)
		if err != nil {
			return value.TimingFunction{}, err
		}
		skipComma(inner)
		y2, err := parseUnitlessNumber(inner)
		if err != nil {
			return value.TimingFunction{}, err
		}
		return value.TimingFunction{Kind: value.TimingCubicBezier, X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
	})
}

func parseSteps(c *token.Cursor) (value.TimingFunction, error) {
	return token.ParseNestedBlock(c, func(inner *token.Cursor) (value.TimingFunction, error) {
		n, err := inner.Next()
		if err != nil || n.Kind != token.Number {
			return value.TimingFunction{}, token.NewError(token.Unsupported, inner.CurrentSourceLocation(), "steps() count")
		}
		jumpStart := true
		if skipComma(inner) {
			pos, err := inner.Next()
			if err != nil {
				return value.TimingFunction{}, err
			}
			jumpStart = strings.EqualFold(pos.Text, "jump-start") || strings.EqualFold(pos.Text, "start")
		}
		return value.TimingFunction{Kind: value.TimingSteps, StepCount: int(n.Num), JumpStart: jumpStart}, nil
	})
}

func parseUnitlessNumber(c *token.Cursor) (float32, error) {
	tok, err := c.Next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != token.Number {
		return 0, token.NewError(token.Unsupported, tok.Loc, tok.Text)
	}
	return float32(tok.Num), nil
}
