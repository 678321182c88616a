package value

// PropertyID names every longhand (and a handful of shorthands kept
// resolved, such as Background/Transition/Animation) this pipeline
// understands. It is intentionally a pragmatic subset of CSS, not a
// conformant one (§1 Non-goals).
type PropertyID uint16

const (
	PropUnknown PropertyID = iota

	// Box model
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth
	PropBoxSizing

	// Positioning
	PropPosition
	PropTop
	PropRight
	PropBottom
	PropLeft
	PropZIndex

	// Display & flex
	PropDisplay
	PropFlexDirection
	PropFlexWrap
	PropJustifyContent
	PropAlignItems
	PropAlignContent
	PropAlignSelf
	PropOrder
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis

	// Visual
	PropColor
	PropBackgroundColor
	PropBackground
	PropOpacity
	PropBorderColor
	PropBorderStyle
	PropTransform

	// Text & font
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontWeight
	PropLineHeight
	PropTextAlign

	// Animation
	PropTransitionProperty
	PropTransition
	PropAnimation

	PropCustom
)

// DisplayOuter is the outer display type: does this box participate in
// block or inline flow in its parent's formatting context?
type DisplayOuter uint8

const (
	DisplayOuterBlock DisplayOuter = iota
	DisplayOuterInline
	DisplayOuterNone
)

// DisplayInner is the inner display type: how does this box lay out
// its own children?
type DisplayInner uint8

const (
	DisplayInnerFlow DisplayInner = iota
	DisplayInnerFlex
	DisplayInnerGrid // declared, not executed by the layout core (§1 Non-goals)
)

type Display struct {
	Outer DisplayOuter
	Inner DisplayInner
}

func DisplayBlock() Display  { return Display{Outer: DisplayOuterBlock, Inner: DisplayInnerFlow} }
func DisplayInline() Display { return Display{Outer: DisplayOuterInline, Inner: DisplayInnerFlow} }
func DisplayFlex() Display   { return Display{Outer: DisplayOuterBlock, Inner: DisplayInnerFlex} }
func DisplayInlineFlex() Display {
	return Display{Outer: DisplayOuterInline, Inner: DisplayInnerFlex}
}
func DisplayNone() Display { return Display{Outer: DisplayOuterNone} }

// PositionKind is the `position` property keyword.
type PositionKind uint8

const (
	PositionStatic PositionKind = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// FlexDirection is the `flex-direction` keyword.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// FlexWrap is the `flex-wrap` keyword.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify is the shared keyword set for justify-content/align-*.
type Justify uint8

const (
	JustifyFlexStart Justify = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
	JustifyStretch
	JustifyBaseline
)

// BoxSizing is the `box-sizing` keyword.
type BoxSizing uint8

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox
)

// BorderStyleKind is the `border-style` keyword.
type BorderStyleKind uint8

const (
	BorderStyleNone BorderStyleKind = iota
	BorderStyleSolid
	BorderStyleDashed
	BorderStyleDotted
)

// TextAlignKind is the `text-align` keyword.
type TextAlignKind uint8

const (
	TextAlignLeft TextAlignKind = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// Property is the closed sum of every typed property value this
// pipeline produces, plus CustomProperty(name, raw_expr_text), per §3.
// A Property is by-value and comparable field-by-field; only the
// fields relevant to ID are meaningful.
type Property struct {
	ID        PropertyID
	Important bool

	Length  Length
	Number  Number
	Color   Color
	Display Display

	Position   PositionKind
	FlexDir    FlexDirection
	FlexWrap   FlexWrap
	Justify    Justify
	BoxSizing  BoxSizing
	BorderStyl BorderStyleKind
	TextAlign  TextAlignKind
	FontStyle  FontStyleKind

	Background  Background
	Transform   Transform
	Transitions []Transition
	Animations  []Animation
	FontFamily  FontFamily

	// CustomProperty: name starts with "--"; RawText is the
	// unparsed, trimmed RHS source text (§4.4).
	CustomName string
	RawText    string
}

func CustomProperty(name, rawText string) Property {
	return Property{ID: PropCustom, CustomName: name, RawText: rawText}
}

func (p Property) IsCustom() bool { return p.ID == PropCustom }

var propertyIDNames = map[PropertyID]string{
	PropWidth: "width", PropHeight: "height",
	PropMinWidth: "min-width", PropMinHeight: "min-height",
	PropMaxWidth: "max-width", PropMaxHeight: "max-height",
	PropMarginTop: "margin-top", PropMarginRight: "margin-right",
	PropMarginBottom: "margin-bottom", PropMarginLeft: "margin-left",
	PropPaddingTop: "padding-top", PropPaddingRight: "padding-right",
	PropPaddingBottom: "padding-bottom", PropPaddingLeft: "padding-left",
	PropBorderTopWidth: "border-top-width", PropBorderRightWidth: "border-right-width",
	PropBorderBottomWidth: "border-bottom-width", PropBorderLeftWidth: "border-left-width",
	PropBoxSizing: "box-sizing",
	PropPosition:  "position",
	PropTop: "top", PropRight: "right", PropBottom: "bottom", PropLeft: "left",
	PropZIndex:         "z-index",
	PropDisplay:        "display",
	PropFlexDirection:  "flex-direction",
	PropFlexWrap:       "flex-wrap",
	PropJustifyContent: "justify-content",
	PropAlignItems:     "align-items",
	PropAlignContent:   "align-content",
	PropAlignSelf:      "align-self",
	PropOrder:          "order",
	PropFlexGrow:       "flex-grow",
	PropFlexShrink:     "flex-shrink",
	PropFlexBasis:      "flex-basis",
	PropColor:          "color",
	PropBackgroundColor: "background-color",
	PropBackground:     "background",
	PropOpacity:        "opacity",
	PropBorderColor:    "border-color",
	PropBorderStyle:    "border-style",
	PropTransform:      "transform",
	PropFontFamily:     "font-family",
	PropFontSize:       "font-size",
	PropFontStyle:      "font-style",
	PropFontWeight:     "font-weight",
	PropLineHeight:     "line-height",
	PropTextAlign:      "text-align",
	PropTransitionProperty: "transition-property",
	PropTransition:     "transition",
	PropAnimation:      "animation",
	PropCustom:         "--custom",
}

// String renders a PropertyID as its CSS property name, for debug
// output (abi.Dump) rather than any parsing path.
func (id PropertyID) String() string {
	if name, ok := propertyIDNames[id]; ok {
		return name
	}
	return "unknown"
}

// PropertyMeta wraps a Property with the cascade-level annotations a
// Rule stores: plain, !important, or a debug group, per §3.
type PropertyMetaKind uint8

const (
	MetaNormal PropertyMetaKind = iota
	MetaImportant
	MetaDebugGroup
)

type PropertyMeta struct {
	Kind PropertyMetaKind

	Property Property // Normal / Important

	// DebugGroup
	OriginalText string
	Inner        []PropertyMeta
	GroupImportant bool
	Disabled       bool
}

func Normal(p Property) PropertyMeta    { return PropertyMeta{Kind: MetaNormal, Property: p} }
func Important(p Property) PropertyMeta {
	p.Important = true
	return PropertyMeta{Kind: MetaImportant, Property: p}
}
