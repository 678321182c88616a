// Package value implements the typed CSS value model (component B of the
// style pipeline): closed sum types for every property value family
// (lengths, numbers, angles, colors, gradients, transforms, transitions,
// fonts, backgrounds), generalizing the bit-flagged option-type idiom the
// teacher uses for DimenT and PositionT (see the style/css package) to
// the full value surface the specification requires.
package value

// SafeAreaInsets carries the four `env(safe-area-inset-*)` values, a
// first-class MediaQueryStatus field per the original implementation
// (see SPEC_FULL.md §C) rather than a generic string-keyed lookup.
type SafeAreaInsets struct {
	Left, Right, Top, Bottom float32
}

// MediaQueryStatus is the environment a Length/Number/Angle resolves
// against: viewport size, base font size and safe-area insets.
type MediaQueryStatus struct {
	ViewportWidth  float32
	ViewportHeight float32
	BaseFontSize   float32
	Insets         SafeAreaInsets
}
