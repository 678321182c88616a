package props

import (
	"strings"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ParseDeclarationList parses a sequence of `name: value;`-shaped
// declarations up to the cursor's limit, recovering from individual
// declaration failures by reporting a diag.Warning and continuing with
// the next declaration rather than aborting the whole rule body, per
// §4.4/§7.
func ParseDeclarationList(c *token.Cursor, r *diag.Reporter) []value.PropertyMeta {
	var out []value.PropertyMeta
	for !c.AtEnd() {
		if c.Peek().Kind == token.Semicolon {
			c.Next()
			continue
		}
		meta, ok := parseOneDeclaration(c, r)
		if ok {
			out = append(out, meta)
		}
	}
	return out
}

// parseOneDeclaration consumes exactly one declaration (through its
// trailing semicolon, if present) and reports a warning instead of
// returning an error, so the caller never needs to special-case a
// malformed declaration.
func parseOneDeclaration(c *token.Cursor, r *diag.Reporter) (value.PropertyMeta, bool) {
	startLoc := c.CurrentSourceLocation()
	meta, err := token.ParseUntilAfter(c, []token.Kind{token.Semicolon}, func(inner *token.Cursor) (value.PropertyMeta, error) {
		return parseDeclarationBody(inner)
	})
	if err != nil {
		r.Warnf(diag.InvalidProperty, startLoc, "invalid declaration: %v", err)
		return value.PropertyMeta{}, false
	}
	if meta.Property.ID == value.PropUnknown && !meta.Property.IsCustom() {
		r.Warnf(diag.UnsupportedProperty, startLoc, "unknown property")
		return value.PropertyMeta{}, false
	}
	return meta, true
}

func parseDeclarationBody(c *token.Cursor) (value.PropertyMeta, error) {
	name, err := c.ExpectIdent()
	if err != nil {
		return value.PropertyMeta{}, err
	}
	if err := c.ExpectColon(); err != nil {
		return value.PropertyMeta{}, err
	}

	raw := strings.TrimSpace(c.RemainderText())
	important := false
	if stripped, ok := stripImportant(raw); ok {
		raw, important = stripped, true
	}

	if strings.HasPrefix(name, "--") {
		p := value.CustomProperty(name, raw)
		if important {
			return value.Important(p), nil
		}
		return value.Normal(p), nil
	}

	valueCursor := token.NewCursor(raw)
	p, err := parseLonghandOrShorthand(valueCursor, name)
	if err != nil {
		return value.PropertyMeta{}, err
	}
	if important {
		return value.Important(p), nil
	}
	return value.Normal(p), nil
}

// stripImportant splits a trailing "!important" annotation off a
// declaration's raw value text. It runs on every declaration before
// dispatch, so both custom properties (kept as raw text) and typed
// properties (re-tokenized from the stripped text) see the bare value.
func stripImportant(raw string) (string, bool) {
	trimmed := strings.TrimRight(raw, " \t\n")
	lower := strings.ToLower(trimmed)
	if !strings.HasSuffix(lower, "important") {
		return raw, false
	}
	trimmed = strings.TrimRight(trimmed[:len(trimmed)-len("important")], " \t\n")
	if !strings.HasSuffix(trimmed, "!") {
		return raw, false
	}
	return strings.TrimSpace(trimmed[:len(trimmed)-1]), true
}

// parseLonghandOrShorthand dispatches a property name to its typed
// parser, producing a single value.Property (shorthands are resolved
// to their most semantically useful typed representation rather than
// expanded into synthetic longhand entries, per §3).
func parseLonghandOrShorthand(c *token.Cursor, name string) (value.Property, error) {
	lower := strings.ToLower(name)
	switch lower {
	case "width":
		return lengthProp(c, value.PropWidth)
	case "height":
		return lengthProp(c, value.PropHeight)
	case "min-width":
		return lengthProp(c, value.PropMinWidth)
	case "min-height":
		return lengthProp(c, value.PropMinHeight)
	case "max-width":
		return lengthProp(c, value.PropMaxWidth)
	case "max-height":
		return lengthProp(c, value.PropMaxHeight)
	case "margin-top":
		return lengthProp(c, value.PropMarginTop)
	case "margin-right":
		return lengthProp(c, value.PropMarginRight)
	case "margin-bottom":
		return lengthProp(c, value.PropMarginBottom)
	case "margin-left":
		return lengthProp(c, value.PropMarginLeft)
	case "padding-top":
		return lengthProp(c, value.PropPaddingTop)
	case "padding-right":
		return lengthProp(c, value.PropPaddingRight)
	case "padding-bottom":
		return lengthProp(c, value.PropPaddingBottom)
	case "padding-left":
		return lengthProp(c, value.PropPaddingLeft)
	case "border-top-width":
		return lengthProp(c, value.PropBorderTopWidth)
	case "border-right-width":
		return lengthProp(c, value.PropBorderRightWidth)
	case "border-bottom-width":
		return lengthProp(c, value.PropBorderBottomWidth)
	case "border-left-width":
		return lengthProp(c, value.PropBorderLeftWidth)
	case "top":
		return lengthProp(c, value.PropTop)
	case "right":
		return lengthProp(c, value.PropRight)
	case "bottom":
		return lengthProp(c, value.PropBottom)
	case "left":
		return lengthProp(c, value.PropLeft)
	case "flex-basis":
		return lengthProp(c, value.PropFlexBasis)
	case "font-size":
		return lengthProp(c, value.PropFontSize)
	case "line-height":
		return lengthProp(c, value.PropLineHeight)

	case "z-index":
		return numberProp(c, value.PropZIndex)
	case "order":
		return numberProp(c, value.PropOrder)
	case "flex-grow":
		return numberProp(c, value.PropFlexGrow)
	case "flex-shrink":
		return numberProp(c, value.PropFlexShrink)
	case "opacity":
		return numberProp(c, value.PropOpacity)

	case "box-sizing":
		return boxSizingProp(c)
	case "position":
		return positionProp(c)
	case "display":
		return displayProp(c)
	case "flex-direction":
		return flexDirectionProp(c)
	case "flex-wrap":
		return flexWrapProp(c)
	case "justify-content", "align-items", "align-content", "align-self":
		return justifyProp(c, propIDForJustify(lower))
	case "border-style":
		return borderStyleProp(c)
	case "text-align":
		return textAlignProp(c)

	case "color":
		return colorProp(c, value.PropColor)
	case "background-color":
		return colorProp(c, value.PropBackgroundColor)
	case "border-color":
		return colorProp(c, value.PropBorderColor)

	case "background":
		bg, err := ParseBackground(c)
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropBackground, Background: bg}, nil

	case "transform":
		tf, err := ParseTransform(c)
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropTransform, Transform: tf}, nil

	case "font-family":
		fam, err := ParseFontFamily(c)
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropFontFamily, FontFamily: fam}, nil

	case "font-style":
		st, err := ParseFontStyle(c)
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropFontStyle, FontStyle: st}, nil

	case "font-weight":
		w, err := ParseFontWeight(c)
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropFontWeight, Number: value.I32(w.Value)}, nil

	case "transition-property":
		ident, err := c.ExpectIdent()
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropTransitionProperty, CustomName: ident}, nil

	case "transition":
		ts, err := ParseTransitionList(c)
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropTransition, Transitions: ts}, nil

	case "animation":
		as, err := ParseAnimationList(c)
		if err != nil {
			return value.Property{}, err
		}
		return value.Property{ID: value.PropAnimation, Animations: as}, nil
	}
	return value.Property{}, token.NewError(token.UnsupportedProperty, c.CurrentSourceLocation(), name)
}

func lengthProp(c *token.Cursor, id value.PropertyID) (value.Property, error) {
	l, err := ParseLength(c)
	if err != nil {
		return value.Property{}, err
	}
	return value.Property{ID: id, Length: l}, nil
}

func numberProp(c *token.Cursor, id value.PropertyID) (value.Property, error) {
	tok, err := c.Next()
	if err != nil {
		return value.Property{}, err
	}
	if tok.Kind != token.Number {
		return value.Property{}, token.NewError(token.Unsupported, tok.Loc, tok.Text)
	}
	return value.Property{ID: id, Number: value.F32(float32(tok.Num))}, nil
}

func colorProp(c *token.Cursor, id value.PropertyID) (value.Property, error) {
	col, err := ParseColor(c)
	if err != nil {
		return value.Property{}, err
	}
	return value.Property{ID: id, Color: col}, nil
}

func boxSizingProp(c *token.Cursor) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	switch strings.ToLower(ident) {
	case "content-box":
		return value.Property{ID: value.PropBoxSizing, BoxSizing: value.BoxSizingContentBox}, nil
	case "border-box":
		return value.Property{ID: value.PropBoxSizing, BoxSizing: value.BoxSizingBorderBox}, nil
	}
	return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
}

func positionProp(c *token.Cursor) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	switch strings.ToLower(ident) {
	case "static":
		return value.Property{ID: value.PropPosition, Position: value.PositionStatic}, nil
	case "relative":
		return value.Property{ID: value.PropPosition, Position: value.PositionRelative}, nil
	case "absolute":
		return value.Property{ID: value.PropPosition, Position: value.PositionAbsolute}, nil
	case "fixed":
		return value.Property{ID: value.PropPosition, Position: value.PositionFixed}, nil
	}
	return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
}

func displayProp(c *token.Cursor) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	var d value.Display
	switch strings.ToLower(ident) {
	case "block":
		d = value.DisplayBlock()
	case "inline":
		d = value.DisplayInline()
	case "flex":
		d = value.DisplayFlex()
	case "inline-flex":
		d = value.DisplayInlineFlex()
	case "none":
		d = value.DisplayNone()
	default:
		return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
	}
	return value.Property{ID: value.PropDisplay, Display: d}, nil
}

func flexDirectionProp(c *token.Cursor) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	switch strings.ToLower(ident) {
	case "row":
		return value.Property{ID: value.PropFlexDirection, FlexDir: value.FlexRow}, nil
	case "row-reverse":
		return value.Property{ID: value.PropFlexDirection, FlexDir: value.FlexRowReverse}, nil
	case "column":
		return value.Property{ID: value.PropFlexDirection, FlexDir: value.FlexColumn}, nil
	case "column-reverse":
		return value.Property{ID: value.PropFlexDirection, FlexDir: value.FlexColumnReverse}, nil
	}
	return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
}

func flexWrapProp(c *token.Cursor) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	switch strings.ToLower(ident) {
	case "nowrap":
		return value.Property{ID: value.PropFlexWrap, FlexWrap: value.NoWrap}, nil
	case "wrap":
		return value.Property{ID: value.PropFlexWrap, FlexWrap: value.Wrap}, nil
	case "wrap-reverse":
		return value.Property{ID: value.PropFlexWrap, FlexWrap: value.WrapReverse}, nil
	}
	return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
}

func propIDForJustify(name string) value.PropertyID {
	switch name {
	case "justify-content":
		return value.PropJustifyContent
	case "align-items":
		return value.PropAlignItems
	case "align-content":
		return value.PropAlignContent
	case "align-self":
		return value.PropAlignSelf
	}
	return value.PropUnknown
}

func justifyProp(c *token.Cursor, id value.PropertyID) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	j, ok := justifyKeyword(ident)
	if !ok {
		return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
	}
	return value.Property{ID: id, Justify: j}, nil
}

func justifyKeyword(ident string) (value.Justify, bool) {
	switch strings.ToLower(ident) {
	case "flex-start", "start":
		return value.JustifyFlexStart, true
	case "flex-end", "end":
		return value.JustifyFlexEnd, true
	case "center":
		return value.JustifyCenter, true
	case "space-between":
		return value.JustifySpaceBetween, true
	case "space-around":
		return value.JustifySpaceAround, true
	case "space-evenly":
		return value.JustifySpaceEvenly, true
	case "stretch":
		return value.JustifyStretch, true
	case "baseline":
		return value.JustifyBaseline, true
	}
	return value.JustifyFlexStart, false
}

func borderStyleProp(c *token.Cursor) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	switch strings.ToLower(ident) {
	case "none":
		return value.Property{ID: value.PropBorderStyle, BorderStyl: value.BorderStyleNone}, nil
	case "solid":
		return value.Property{ID: value.PropBorderStyle, BorderStyl: value.BorderStyleSolid}, nil
	case "dashed":
		return value.Property{ID: value.PropBorderStyle, BorderStyl: value.BorderStyleDashed}, nil
	case "dotted":
		return value.Property{ID: value.PropBorderStyle, BorderStyl: value.BorderStyleDotted}, nil
	}
	return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
}

func textAlignProp(c *token.Cursor) (value.Property, error) {
	ident, err := c.ExpectIdent()
	if err != nil {
		return value.Property{}, err
	}
	switch strings.ToLower(ident) {
	case "left":
		return value.Property{ID: value.PropTextAlign, TextAlign: value.TextAlignLeft}, nil
	case "right":
		return value.Property{ID: value.PropTextAlign, TextAlign: value.TextAlignRight}, nil
	case "center":
		return value.Property{ID: value.PropTextAlign, TextAlign: value.TextAlignCenter}, nil
	case "justify":
		return value.Property{ID: value.PropTextAlign, TextAlign: value.TextAlignJustify}, nil
	}
	return value.Property{}, token.NewError(token.Unsupported, c.CurrentSourceLocation(), ident)
}
