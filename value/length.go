package value

import "math"

// LengthKind discriminates the Length sum type of §3.
type LengthKind uint8

const (
	LengthUndefined LengthKind = iota
	LengthAuto
	LengthPx
	LengthVw
	LengthVh
	LengthRem
	LengthRpx
	LengthEm
	LengthRatio // a CSS percentage, stored as 0..1
	LengthVmin
	LengthVmax
	LengthExpr
	LengthHostCalc
)

// LengthExprKind discriminates Length's Expr payload.
type LengthExprKind uint8

const (
	LengthExprInvalid LengthExprKind = iota
	LengthExprEnv
	LengthExprCalc
)

// Length is the CSS dimension option type: {Undefined, Auto, Px, Vw,
// Vh, Rem, Rpx, Em, Ratio, Vmin, Vmax, Expr(LengthExpr)}.
type Length struct {
	Kind LengthKind
	V    float32

	ExprKind   LengthExprKind
	EnvName    string
	EnvDefault *Length
	Calc       *CalcExpr

	// HostHandle identifies a host-opaque calc() expression (§4.6) when
	// Kind is LengthHostCalc. It is meaningless without a host resolver,
	// so ResolveAgainst alone cannot resolve it — see LayoutNode's
	// resolveLength, which consults the installed ResolveCalcFunc first.
	HostHandle uint64
}

func Undefined() Length   { return Length{Kind: LengthUndefined} }
func Auto() Length        { return Length{Kind: LengthAuto} }
func Px(v float32) Length { return Length{Kind: LengthPx, V: v} }
func Vw(v float32) Length { return Length{Kind: LengthVw, V: v} }
func Vh(v float32) Length { return Length{Kind: LengthVh, V: v} }
func Rem(v float32) Length { return Length{Kind: LengthRem, V: v} }
func Rpx(v float32) Length { return Length{Kind: LengthRpx, V: v} }
func Em(v float32) Length  { return Length{Kind: LengthEm, V: v} }
func Ratio(v float32) Length { return Length{Kind: LengthRatio, V: v} }
func Vmin(v float32) Length  { return Length{Kind: LengthVmin, V: v} }
func Vmax(v float32) Length  { return Length{Kind: LengthVmax, V: v} }

func CalcLength(expr *CalcExpr) Length {
	return Length{Kind: LengthExpr, ExprKind: LengthExprCalc, Calc: expr}
}

func EnvLength(name string, def Length) Length {
	d := def
	return Length{Kind: LengthExpr, ExprKind: LengthExprEnv, EnvName: name, EnvDefault: &d}
}

func InvalidExpr() Length {
	return Length{Kind: LengthExpr, ExprKind: LengthExprInvalid}
}

// HostCalc builds a Length carrying a host-opaque calc() handle (§4.6):
// an integer meaningful only to the host's own calc resolver, installed
// per-node via LayoutNode.SetResolveCalcFunc.
func HostCalc(handle uint64) Length {
	return Length{Kind: LengthHostCalc, HostHandle: handle}
}

func (l Length) IsUndefined() bool { return l.Kind == LengthUndefined }
func (l Length) IsAuto() bool      { return l.Kind == LengthAuto }

// ResolveAgainst resolves the length to a pixel float32, given the
// media/viewport status, the basis a percentage (Ratio) is taken of
// (§3's "relative length" parameter), and the font size an Em is taken
// of; a zero parentFontSizeBasis makes Em use the media status's base
// font size. Returns ok=false for Undefined/Auto or
// an unresolvable Expr, per the invariant in §3.
func (l Length) ResolveAgainst(mq MediaQueryStatus, relativeLength float32, parentFontSizeBasis float32) (float32, bool) {
	switch l.Kind {
	case LengthUndefined, LengthAuto:
		return 0, false
	case LengthPx:
		return normalizeNaN(l.V), true
	case LengthVw:
		return normalizeNaN(mq.ViewportWidth / 100 * l.V), true
	case LengthVh:
		return normalizeNaN(mq.ViewportHeight / 100 * l.V), true
	case LengthRem:
		return normalizeNaN(mq.BaseFontSize * l.V), true
	case LengthRpx:
		return normalizeNaN(mq.ViewportWidth / 750 * l.V), true
	case LengthEm:
		basis := mq.BaseFontSize
		if parentFontSizeBasis != 0 {
			basis = parentFontSizeBasis
		}
		return normalizeNaN(basis * l.V), true
	case LengthRatio:
		return normalizeNaN(relativeLength * l.V), true
	case LengthVmin:
		return normalizeNaN(minF32(mq.ViewportWidth, mq.ViewportHeight) / 100 * l.V), true
	case LengthVmax:
		return normalizeNaN(maxF32(mq.ViewportWidth, mq.ViewportHeight) / 100 * l.V), true
	case LengthHostCalc:
		return 0, false
	case LengthExpr:
		switch l.ExprKind {
		case LengthExprInvalid:
			return 0, false
		case LengthExprEnv:
			if v, ok := mq.Insets.lookup(l.EnvName); ok {
				return normalizeNaN(v), true
			}
			if l.EnvDefault != nil {
				return l.EnvDefault.ResolveAgainst(mq, relativeLength, parentFontSizeBasis)
			}
			return 0, false
		case LengthExprCalc:
			v, ok := l.Calc.Resolve(mq, relativeLength, parentFontSizeBasis)
			return normalizeNaN(v), ok
		}
	}
	return 0, false
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// IsInfinite reports whether a resolved pixel value represents the
// "unbounded available size" sentinel (§4.7, §6: +∞ crosses the ABI
// boundary as the Len::MAX sentinel).
func IsInfinite(v float32) bool {
	return math.IsInf(float64(v), 1)
}

const Inf float32 = float32(math.Inf(1))

// Clamp0 implements the layout engine's universal "negative size after
// subtraction is clamped to 0" rule (§4.7).
func Clamp0(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// --- pattern-matching helper, generalizing the teacher's DimenT.Match idiom ---

// LengthPatterns lets callers dispatch on a Length's kind without a type
// switch, mirroring css.DimenPattern/DimenPatterns in the teacher's
// css/dimen.go.
type LengthPatterns[T any] struct {
	Undefined T
	Auto      T
	Pixel     func(float32) T
	Default   T
}

func (l Length) Match(p LengthPatterns[any]) any {
	switch l.Kind {
	case LengthUndefined:
		return p.Undefined
	case LengthAuto:
		return p.Auto
	case LengthPx:
		if p.Pixel != nil {
			return p.Pixel(l.V)
		}
	}
	return p.Default
}
