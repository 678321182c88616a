package abi

import "github.com/npillmayer/wxcss/value"

// lengthProperties enumerates every longhand settable as a Length,
// covering §4.6's "style setters for each longhand" over the box
// model, positioning offsets, flex-basis and the two font metrics the
// layout core itself consults (font-size for em resolution, line-height
// for intrinsic text sizing).
var lengthProperties = map[string]value.PropertyID{
	"width": value.PropWidth, "height": value.PropHeight,
	"min-width": value.PropMinWidth, "min-height": value.PropMinHeight,
	"max-width": value.PropMaxWidth, "max-height": value.PropMaxHeight,
	"margin-top": value.PropMarginTop, "margin-right": value.PropMarginRight,
	"margin-bottom": value.PropMarginBottom, "margin-left": value.PropMarginLeft,
	"padding-top": value.PropPaddingTop, "padding-right": value.PropPaddingRight,
	"padding-bottom": value.PropPaddingBottom, "padding-left": value.PropPaddingLeft,
	"border-top-width": value.PropBorderTopWidth, "border-right-width": value.PropBorderRightWidth,
	"border-bottom-width": value.PropBorderBottomWidth, "border-left-width": value.PropBorderLeftWidth,
	"top": value.PropTop, "right": value.PropRight,
	"bottom": value.PropBottom, "left": value.PropLeft,
	"flex-basis": value.PropFlexBasis,
	"font-size":  value.PropFontSize,
	"line-height": value.PropLineHeight,
}

// LengthProperty names one of lengthProperties' longhands for use with
// the SetLength* functions below.
type LengthProperty string

func (p LengthProperty) id() (value.PropertyID, bool) {
	id, ok := lengthProperties[string(p)]
	return id, ok
}

func setLength(h Handle, p LengthProperty, l value.Length) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	id, ok := p.id()
	if !ok {
		return errUnknownLengthProperty(p)
	}
	n.SetProperty(value.Property{ID: id, Length: l})
	return nil
}

// SetLengthPx sets p to an absolute pixel value (§4.6's "pixel value"
// setter overload).
func SetLengthPx(h Handle, p LengthProperty, px float32) error {
	return setLength(h, p, value.Px(px))
}

// SetLengthPercent sets p to a percentage of its containing block
// (stored internally as a 0..1 ratio, per §3's Length.Ratio convention).
func SetLengthPercent(h Handle, p LengthProperty, percent float32) error {
	return setLength(h, p, value.Ratio(percent/100))
}

// SetLengthAuto sets p to `auto`.
func SetLengthAuto(h Handle, p LengthProperty) error {
	return setLength(h, p, value.Auto())
}

// SetLengthUndefined clears p back to its CSS initial/unset state.
func SetLengthUndefined(h Handle, p LengthProperty) error {
	return setLength(h, p, value.Undefined())
}

// SetLengthCalc sets p to a host-opaque calc() handle: an integer
// meaningful only to the resolver installed via SetResolveCalcFunc,
// invoked with (handle, percentage-basis) whenever the solver needs p's
// pixel value (§4.6).
func SetLengthCalc(h Handle, p LengthProperty, calcHandle uint64) error {
	return setLength(h, p, value.HostCalc(calcHandle))
}

// SetDisplay installs the `display` property.
func SetDisplay(h Handle, d value.Display) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetProperty(value.Property{ID: value.PropDisplay, Display: d})
	return nil
}

// SetPosition installs the `position` property.
func SetPosition(h Handle, pos value.PositionKind) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetProperty(value.Property{ID: value.PropPosition, Position: pos})
	return nil
}

// SetFlexDirection installs `flex-direction`.
func SetFlexDirection(h Handle, dir value.FlexDirection) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetProperty(value.Property{ID: value.PropFlexDirection, FlexDir: dir})
	return nil
}

// SetFlexWrap installs `flex-wrap`.
func SetFlexWrap(h Handle, wrap value.FlexWrap) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetProperty(value.Property{ID: value.PropFlexWrap, FlexWrap: wrap})
	return nil
}

// SetBoxSizing installs `box-sizing`.
func SetBoxSizing(h Handle, sizing value.BoxSizing) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetProperty(value.Property{ID: value.PropBoxSizing, BoxSizing: sizing})
	return nil
}

// SetNumberProperty installs a bare-number longhand (flex-grow,
// flex-shrink, order, opacity, z-index, ...) from an already-parsed
// value.Number.
func SetNumberProperty(h Handle, id value.PropertyID, n2 value.Number) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetProperty(value.Property{ID: id, Number: n2})
	return nil
}

// ClearProperty removes id entirely, reverting the node to that
// property's CSS initial behavior.
func ClearProperty(h Handle, id value.PropertyID) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.ClearProperty(id)
	return nil
}

// SetMediaStatus installs the viewport/font/inset environment the
// subtree rooted at h resolves percentage/viewport-relative lengths
// against.
func SetMediaStatus(h Handle, mq value.MediaQueryStatus) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetMediaStatus(mq)
	return nil
}

type errUnknownLengthProperty LengthProperty

func (e errUnknownLengthProperty) Error() string {
	return "abi: unknown length property " + string(e)
}
