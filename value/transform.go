package value

// TransformFuncKind discriminates one function in a `transform` list.
// The layout/paint stacks this module feeds never execute transforms
// (§1 lists the paint stack as an external collaborator); the value
// model still needs to parse and carry them so a `transform`
// declaration round-trips through the cascade without being rejected.
type TransformFuncKind uint8

const (
	TransformTranslate TransformFuncKind = iota
	TransformTranslateX
	TransformTranslateY
	TransformScale
	TransformScaleX
	TransformScaleY
	TransformRotate
	TransformSkewX
	TransformSkewY
)

type TransformFunc struct {
	Kind TransformFuncKind
	X, Y Length  // Translate/TranslateX/TranslateY
	SX, SY Number // Scale/ScaleX/ScaleY
	Angle  Angle  // Rotate/SkewX/SkewY
}

// Transform is the `transform` property value: an ordered function
// list applied left to right.
type Transform struct {
	Funcs []TransformFunc
}
