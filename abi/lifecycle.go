package abi

import "github.com/npillmayer/wxcss/layout"

// NewElement creates a handle for a new, empty element node. It starts
// dirty: no layout has ever been computed for it (§4.6).
func NewElement() Handle {
	return nodes.put(layout.New(layout.NodeElement))
}

// NewText creates a handle for a new text leaf. A text node has no
// children of its own; it is always sized through its measure callback.
func NewText() Handle {
	return nodes.put(layout.New(layout.NodeText))
}

// Free releases h. The caller must detach h from any parent first (§5):
// freeing a node with living children is the host's responsibility to
// prevent, not this function's to enforce.
func Free(h Handle) {
	nodes.free(h)
}

// AppendChild adds child as the last child of parent.
func AppendChild(parent, child Handle) error {
	p, err := resolve(parent)
	if err != nil {
		return err
	}
	c, err := resolve(child)
	if err != nil {
		return err
	}
	p.AppendChild(c)
	return nil
}

// InsertChildAt inserts child before the current child at index i.
func InsertChildAt(parent Handle, i int, child Handle) error {
	p, err := resolve(parent)
	if err != nil {
		return err
	}
	c, err := resolve(child)
	if err != nil {
		return err
	}
	p.InsertChildAt(i, c)
	return nil
}

// InsertBefore places child immediately preceding pivot in parent's
// child list. If pivot is the zero Handle or not currently a child of
// parent, child is appended instead.
func InsertBefore(parent, child, pivot Handle) error {
	p, err := resolve(parent)
	if err != nil {
		return err
	}
	c, err := resolve(child)
	if err != nil {
		return err
	}
	var ref *layout.LayoutNode
	if pivot != zeroHandle {
		ref, _ = resolve(pivot)
	}
	p.InsertBefore(c, ref)
	return nil
}

// RemoveChild detaches child from parent; child itself is left intact,
// not freed (§4.6).
func RemoveChild(parent, child Handle) error {
	p, err := resolve(parent)
	if err != nil {
		return err
	}
	c, err := resolve(child)
	if err != nil {
		return err
	}
	p.RemoveChild(c)
	return nil
}

// RemoveAllChildren detaches every child of parent, one at a time.
func RemoveAllChildren(parent Handle) error {
	p, err := resolve(parent)
	if err != nil {
		return err
	}
	for _, ch := range p.Children() {
		p.RemoveChild(ch)
	}
	return nil
}

// GetParent returns h's parent handle and true, or the zero Handle and
// false if h is a tree root or unknown.
func GetParent(h Handle) (Handle, bool) {
	n, err := resolve(h)
	if err != nil {
		return zeroHandle, false
	}
	p := n.Parent()
	if p == nil {
		return zeroHandle, false
	}
	return handleOf(p)
}

// GetChildCount returns the number of children h has.
func GetChildCount(h Handle) (int, error) {
	n, err := resolve(h)
	if err != nil {
		return 0, err
	}
	return n.ChildCount(), nil
}

// GetChild returns the handle of h's i-th child.
func GetChild(h Handle, i int) (Handle, bool) {
	n, err := resolve(h)
	if err != nil {
		return zeroHandle, false
	}
	ch, ok := n.Child(i)
	if !ok {
		return zeroHandle, false
	}
	return handleOf(ch)
}
