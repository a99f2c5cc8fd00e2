package world

import "slices"

// RegionTracker hands out sequential region ids and records which
// representative each id has been merged into.
type RegionTracker struct {
	current int
	merged  []int
}

// NewRegionTracker returns a tracker with no regions issued.
func NewRegionTracker() *RegionTracker {
	return &RegionTracker{current: -1}
}

// Start issues the next region id and makes it current.
func (r *RegionTracker) Start() int {
	r.current++
	r.merged = append(r.merged, r.current)
	return r.current
}

// Current returns the id of the region being carved, or -1 before the first Start.
func (r *RegionTracker) Current() int {
	return r.current
}

// Count returns how many region ids have been issued.
func (r *RegionTracker) Count() int {
	return r.current + 1
}

// Resolve returns the representative region for id.
func (r *RegionTracker) Resolve(id int) int {
	for r.merged[id] != id {
		id = r.merged[id]
	}
	return id
}

// ResolveAll maps ids through Resolve and drops duplicates, keeping first-seen order.
func (r *RegionTracker) ResolveAll(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		canonical := r.Resolve(id)
		if !slices.Contains(out, canonical) {
			out = append(out, canonical)
		}
	}
	return out
}

// Merge remaps every region currently represented by one of sources onto dest.
// All ids are visited so regions merged earlier follow their representative.
func (r *RegionTracker) Merge(dest int, sources []int) {
	roots := make([]int, len(r.merged))
	for i := range r.merged {
		roots[i] = r.Resolve(i)
	}
	for i, root := range roots {
		if slices.Contains(sources, root) {
			r.merged[i] = dest
		}
	}
}
