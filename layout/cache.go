package layout

import "math"

// cacheKey identifies a prior layout call well enough to reuse its
// result: the constraints offered, the containing block used for
// percentage resolution, and whether the call was dry. Float fields
// compare by bit pattern, not by ==, so an available size of NaN or
// +Inf (both legal per the solver's failure semantics) round-trips
// through the cache instead of comparing unequal to itself forever.
type cacheKey struct {
	availWidth, availHeight           float32
	widthMode, heightMode             MeasureMode
	containingWidth, containingHeight float32
	dry                               bool
}

type cacheEntry struct {
	key    cacheKey
	size   Size
	result Result
}

func bitsEqual(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

func (k cacheKey) equal(o cacheKey) bool {
	return k.widthMode == o.widthMode && k.heightMode == o.heightMode && k.dry == o.dry &&
		bitsEqual(k.availWidth, o.availWidth) && bitsEqual(k.availHeight, o.availHeight) &&
		bitsEqual(k.containingWidth, o.containingWidth) && bitsEqual(k.containingHeight, o.containingHeight)
}

// lookupCache is only ever consulted while n is clean (see layout()),
// so a cache entry present here is always valid for n's current style.
func (n *LayoutNode) lookupCache(key cacheKey) (cacheEntry, bool) {
	for _, e := range n.cache {
		if e.key.equal(key) {
			return e, true
		}
	}
	return cacheEntry{}, false
}

// cacheLimit bounds the per-node cache: a node is usually asked for at
// most a handful of distinct constraint shapes (a real pass, a dry
// pass, an intrinsic-sizing probe), never an unbounded set.
const cacheLimit = 4

func (n *LayoutNode) storeCache(e cacheEntry) {
	n.cache = append(n.cache, e)
	if len(n.cache) > cacheLimit {
		n.cache = n.cache[len(n.cache)-cacheLimit:]
	}
}
