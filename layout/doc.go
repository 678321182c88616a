// Package layout implements the retained layout tree and box-layout
// solver: a LayoutNode tree whose geometry is produced by block, flex
// and absolute formatting algorithms, with dirty tracking, a
// per-node layout-result cache, and host-installable measure/baseline/
// calc-resolution callbacks for leaves the layout core cannot size on
// its own (text, images, embedded views).
//
// A LayoutNode's parent/child ownership is backed directly by the
// generic tree.Node[T] already used elsewhere in this module for
// retained trees: strong child ownership from the parent's children
// slice, a plain (GC-safe, so non-leaking) parent pointer for upward
// walks, mutex-protected mutation.
package layout
