package abi

import "github.com/npillmayer/wxcss/layout"

// SetMeasureFunc installs the callback the solver calls to size a leaf
// it has no intrinsic model for (text runs, images, embedded host
// views). Installing or clearing it invalidates h's layout cache.
func SetMeasureFunc(h Handle, f layout.MeasureFunc) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetMeasureFunc(f)
	return nil
}

func ClearMeasureFunc(h Handle) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.ClearMeasureFunc()
	return nil
}

// SetBaselineFunc installs the baseline callback. The solver calls it
// with the node's border-box size after each layout of the node and
// reports the answer as Geometry.Baseline; `align-items: baseline` does
// not use it, and places items at the cross-start edge of their line.
func SetBaselineFunc(h Handle, f layout.BaselineFunc) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetBaselineFunc(f)
	return nil
}

func ClearBaselineFunc(h Handle) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetBaselineFunc(nil)
	return nil
}

// SetResolveCalcFunc installs the resolver for style values set via
// SetLengthCalc: given the opaque handle and the percentage basis the
// solver computed, it returns the resolved pixel length.
func SetResolveCalcFunc(h Handle, f layout.ResolveCalcFunc) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetResolveCalcFunc(f)
	return nil
}

func ClearResolveCalcFunc(h Handle) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.SetResolveCalcFunc(nil)
	return nil
}

// SetDirtyCallback installs the callback fired once per dirty
// transition (edge-triggered: re-marking an already-dirty node does not
// re-fire it). The callback receives the handle, not the internal node.
func SetDirtyCallback(h Handle, f func(Handle)) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	if f == nil {
		n.SetDirtyCallback(nil)
		return nil
	}
	n.SetDirtyCallback(func(dirty *layout.LayoutNode) {
		if dh, ok := handleOf(dirty); ok {
			f(dh)
		}
	})
	return nil
}

func ClearDirtyCallback(h Handle) error {
	return SetDirtyCallback(h, nil)
}

// MarkDirty invalidates h's cache and bubbles dirtiness to the root.
func MarkDirty(h Handle) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.MarkDirty()
	return nil
}

// MarkDirtyPropagateToDescendants dirties h and every node beneath it.
func MarkDirtyPropagateToDescendants(h Handle) error {
	n, err := resolve(h)
	if err != nil {
		return err
	}
	n.MarkDirtyPropagateToDescendants()
	return nil
}

func IsDirty(h Handle) (bool, error) {
	n, err := resolve(h)
	if err != nil {
		return false, err
	}
	return n.IsDirty(), nil
}
