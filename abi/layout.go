package abi

import "github.com/npillmayer/wxcss/layout"

// Calculate runs a full layout pass rooted at h.
func Calculate(h Handle, availableWidth, availableHeight float32) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.Calculate(availableWidth, availableHeight)
	return nil
}

// CalculateDry runs the same algorithm without writing geometry,
// returning only the size h would resolve to (§4.6/§4.7's dry layout).
func CalculateDry(h Handle, availableWidth, availableHeight float32) (layout.Size, error) {
	n, err := resolve(h)
	if err != nil {
		return layout.Size{}, err
	}
	return n.CalculateDry(availableWidth, availableHeight), nil
}

// CalculateWithContainingSize decouples the percentage-resolution
// containing block from the available size.
func CalculateWithContainingSize(h Handle, availableWidth, availableHeight, containingWidth, containingHeight float32) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.CalculateWithContainingSize(availableWidth, availableHeight, containingWidth, containingHeight)
	return nil
}

func CalculateDryWithContainingSize(h Handle, availableWidth, availableHeight, containingWidth, containingHeight float32) (layout.Size, error) {
	n, err := resolve(h)
	if err != nil {
		return layout.Size{}, err
	}
	return n.CalculateDryWithContainingSize(availableWidth, availableHeight, containingWidth, containingHeight), nil
}

// Geometry is the flattened result of the most recent non-dry
// Calculate* call on a node (§4.6's layout getters: position, size, and
// resolved margin/border/padding on all four sides).
type Geometry struct {
	Left, Top, Width, Height float32

	MarginTop, MarginRight, MarginBottom, MarginLeft float32
	BorderTop, BorderRight, BorderBottom, BorderLeft float32
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft float32

	Baseline float32
}

// GetGeometry reads back h's layout result. It is the zero Geometry
// until the first non-dry Calculate* call.
func GetGeometry(h Handle) (Geometry, error) {
	n, err := resolve(h)
	if err != nil {
		return Geometry{}, err
	}
	r := n.Result()
	return Geometry{
		Left: r.X, Top: r.Y, Width: r.Width, Height: r.Height,
		MarginTop: r.Margin.Top, MarginRight: r.Margin.Right, MarginBottom: r.Margin.Bottom, MarginLeft: r.Margin.Left,
		BorderTop: r.Border.Top, BorderRight: r.Border.Right, BorderBottom: r.Border.Bottom, BorderLeft: r.Border.Left,
		PaddingTop: r.Padding.Top, PaddingRight: r.Padding.Right, PaddingBottom: r.Padding.Bottom, PaddingLeft: r.Padding.Left,
		Baseline: r.Baseline,
	}, nil
}
