package value

// BackgroundImageKind discriminates a single background-image layer.
type BackgroundImageKind uint8

const (
	BackgroundImageNone BackgroundImageKind = iota
	BackgroundImageURL
	BackgroundImageGradient
)

type BackgroundImage struct {
	Kind     BackgroundImageKind
	URL      string
	Gradient Gradient
}

// BackgroundRepeat is the `repeat-x|repeat-y|repeat|space|round|no-repeat`
// keyword, per axis.
type BackgroundRepeatStyle uint8

const (
	RepeatRepeat BackgroundRepeatStyle = iota
	RepeatSpace
	RepeatRound
	RepeatNoRepeat
)

type BackgroundRepeat struct {
	X, Y BackgroundRepeatStyle
}

// BackgroundBox is the shared `origin`/`clip` box keyword set.
type BackgroundBox uint8

const (
	BoxBorderBox BackgroundBox = iota
	BoxPaddingBox
	BoxContentBox
)

type BackgroundAttachment uint8

const (
	AttachmentScroll BackgroundAttachment = iota
	AttachmentFixed
	AttachmentLocal
)

// BackgroundSizeKind discriminates background-size.
type BackgroundSizeKind uint8

const (
	BackgroundSizeAuto BackgroundSizeKind = iota
	BackgroundSizeCover
	BackgroundSizeContain
	BackgroundSizeExplicit
)

type BackgroundSize struct {
	Kind          BackgroundSizeKind
	Width, Height Length
}

// BackgroundLayer is one comma-separated layer of the `background`
// shorthand, per §4.4: image, position/size, repeat, origin, clip,
// attachment are all independently optional per layer; only the final
// layer may carry a background-color (enforced by the props parser,
// not by this type).
type BackgroundLayer struct {
	Image      BackgroundImage
	Position   GradientPosition
	Size       BackgroundSize
	Repeat     BackgroundRepeat
	Origin     BackgroundBox
	Clip       BackgroundBox
	Attachment BackgroundAttachment
}

// DefaultBackgroundLayer returns the CSS-initial value for every
// background-* longhand, used to seed a layer before applying whichever
// subset of longhands a shorthand or individual declaration specifies.
func DefaultBackgroundLayer() BackgroundLayer {
	return BackgroundLayer{
		Image:      BackgroundImage{Kind: BackgroundImageNone},
		Position:   GradientPosition{X: Ratio(0), Y: Ratio(0)},
		Size:       BackgroundSize{Kind: BackgroundSizeAuto},
		Repeat:     BackgroundRepeat{X: RepeatRepeat, Y: RepeatRepeat},
		Origin:     BoxPaddingBox,
		Clip:       BoxBorderBox,
		Attachment: AttachmentScroll,
	}
}

// Background is the fully expanded `background` shorthand: an ordered
// list of layers plus the single background-color that only the last
// layer may specify.
type Background struct {
	Layers []BackgroundLayer
	Color  Color
}
