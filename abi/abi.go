// Package abi is the stable, host-facing surface over the layout tree
// (§4.6/§6): opaque node handles instead of raw pointers, per-longhand
// style setters, layout entry points, dirty/callback management, and a
// dump-to-string debugger. It is the boundary a host embedder actually
// links against; everything else in this module is an internal detail
// reachable only through here.
package abi

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wxcss/layout"
)

func tracer() tracing.Trace {
	return tracing.Select("wxcss.abi")
}

// Handle is an opaque, host-visible node identifier. It is minted as a
// UUID rather than a Go pointer so the layout tree's real storage never
// leaks across the ABI boundary (§6, grounded on rupor-github-fb2cng's
// convert/content.go UUID-identity pattern).
type Handle uuid.UUID

func (h Handle) String() string { return uuid.UUID(h).String() }

var zeroHandle Handle

// registry owns the mapping from a minted Handle to its live
// LayoutNode. A *LayoutNode is never handed back to the host directly;
// every operation below re-resolves the handle on each call, so a freed
// or unknown handle fails safely instead of dereferencing stale memory.
type registry struct {
	mu    sync.RWMutex
	nodes map[Handle]*layout.LayoutNode
}

var nodes = &registry{nodes: make(map[Handle]*layout.LayoutNode)}

// put mints a handle for n and stashes it in n's own Host slot, so a
// node can report its own handle back (GetParent/GetChild) without the
// registry needing a reverse index.
func (r *registry) put(n *layout.LayoutNode) Handle {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	h := Handle(id)
	n.SetHost(h)
	r.mu.Lock()
	r.nodes[h] = n
	r.mu.Unlock()
	return h
}

func (r *registry) get(h Handle) (*layout.LayoutNode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[h]
	return n, ok
}

func (r *registry) free(h Handle) {
	r.mu.Lock()
	delete(r.nodes, h)
	r.mu.Unlock()
}

func handleOf(n *layout.LayoutNode) (Handle, bool) {
	h, ok := n.Host().(Handle)
	return h, ok
}

// resolve looks a handle up, returning an error (not panicking) on a
// miss: per §5, the ABI boundary must fail safely rather than trust host
// input.
func resolve(h Handle) (*layout.LayoutNode, error) {
	n, ok := nodes.get(h)
	if !ok {
		return nil, fmt.Errorf("abi: unknown node handle %s", h)
	}
	return n, nil
}
