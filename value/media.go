package value

// MediaType is the `@media` type keyword.
type MediaType uint8

const (
	MediaAll MediaType = iota
	MediaScreen
)

// Orientation is the `orientation` media feature value.
type Orientation uint8

const (
	OrientationNone Orientation = iota
	OrientationPortrait
	OrientationLandscape
)

// Theme is the `prefers-color-scheme` media feature value.
type Theme uint8

const (
	ThemeNone Theme = iota
	ThemeLight
	ThemeDark
)

// MediaExpressionKind discriminates MediaExpression, per §3.
type MediaExpressionKind uint8

const (
	MediaExprUnknown MediaExpressionKind = iota
	MediaExprType
	MediaExprOrientation
	MediaExprWidth
	MediaExprMinWidth
	MediaExprMaxWidth
	MediaExprHeight
	MediaExprMinHeight
	MediaExprMaxHeight
	MediaExprTheme
)

// MediaExpression is one feature test inside a media query's
// parenthesized list or a bare media-type ident.
type MediaExpression struct {
	Kind        MediaExpressionKind
	MediaType   MediaType
	Orientation Orientation
	Theme       Theme
	Px          float32
}

func (e MediaExpression) matches(mq MediaQueryStatus) bool {
	switch e.Kind {
	case MediaExprType:
		// MediaAll matches every status; MediaScreen is the only
		// other type this pipeline distinguishes (§1 Non-goals).
		return e.MediaType == MediaAll || e.MediaType == MediaScreen
	case MediaExprOrientation:
		if e.Orientation == OrientationNone {
			return false
		}
		portrait := mq.ViewportHeight >= mq.ViewportWidth
		if e.Orientation == OrientationPortrait {
			return portrait
		}
		return !portrait
	case MediaExprWidth:
		return mq.ViewportWidth == e.Px
	case MediaExprMinWidth:
		return mq.ViewportWidth >= e.Px
	case MediaExprMaxWidth:
		return mq.ViewportWidth <= e.Px
	case MediaExprHeight:
		return mq.ViewportHeight == e.Px
	case MediaExprMinHeight:
		return mq.ViewportHeight >= e.Px
	case MediaExprMaxHeight:
		return mq.ViewportHeight <= e.Px
	case MediaExprTheme:
		return false // theme is not carried by MediaQueryStatus (§1 Non-goals)
	}
	return false
}

// MediaDecorator is the `only`/`not` prefix a MediaQuery may carry.
type MediaDecorator uint8

const (
	MediaDecoratorNone MediaDecorator = iota
	MediaDecoratorOnly
	MediaDecoratorNot
)

// MediaQuery is a conjunction of MediaExpression, per §3.
type MediaQuery struct {
	Decorator   MediaDecorator
	Expressions []MediaExpression
}

func (q MediaQuery) matches(mq MediaQueryStatus) bool {
	all := true
	for _, e := range q.Expressions {
		if !e.matches(mq) {
			all = false
			break
		}
	}
	if q.Decorator == MediaDecoratorNot {
		return !all
	}
	return all
}

// Media is a disjunction of MediaQuery, optionally nested inside an
// enclosing @media block (Parent), in which case both this Media's own
// disjunction and the parent's must match, per the CSS nesting rule.
type Media struct {
	Queries []MediaQuery
	Parent  *Media
}

// Matches reports whether status satisfies this Media: any one of its
// MediaQuery disjuncts matching is sufficient, and (when nested) the
// enclosing Media must match too.
func (m *Media) Matches(mq MediaQueryStatus) bool {
	if m == nil {
		return true
	}
	if m.Parent != nil && !m.Parent.Matches(mq) {
		return false
	}
	if len(m.Queries) == 0 {
		return true
	}
	for _, q := range m.Queries {
		if q.matches(mq) {
			return true
		}
	}
	return false
}
