package geom

import "fmt"

// Handle is a generational reference into an Arena. index identifies the
// slot; generation distinguishes a live occupant from whatever previously
// lived in that slot before a Remove freed it for reuse. Mutating the arena
// never invalidates a live Handle (spec.md §5's stable-handle memory model).
type Handle struct {
	index      int
	generation int
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.index, h.generation)
}

type arenaSlot[T any] struct {
	value      T
	generation int
	occupied   bool
}

// Arena is a generational arena of T: Insert returns a Handle good until the
// matching Remove, at which point the slot is recycled and its generation
// bumped so a stale Handle is rejected rather than silently aliasing
// whatever value later reuses the slot.
type Arena[T any] struct {
	slots []arenaSlot[T]
	free  []int
}

// NewArena returns an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert adds v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].value = v
		a.slots[idx].occupied = true
		return Handle{index: idx, generation: a.slots[idx].generation}
	}
	a.slots = append(a.slots, arenaSlot[T]{value: v, occupied: true})
	return Handle{index: len(a.slots) - 1}
}

// Get returns a pointer to h's value, or false if h is stale or out of range.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.index < 0 || h.index >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil, false
	}
	return &s.value, true
}

// MustGet panics if h does not resolve to a live value; used throughout the
// DCEL, where a dangling handle indicates a structural invariant violation
// rather than a condition callers should recover from (spec.md §7).
func (a *Arena[T]) MustGet(h Handle) *T {
	v, ok := a.Get(h)
	if !ok {
		panic(fmt.Sprintf("geom: dereferenced stale or invalid handle %v", h))
	}
	return v
}

// Remove frees h's slot, bumping its generation.
func (a *Arena[T]) Remove(h Handle) {
	if _, ok := a.Get(h); !ok {
		panic(fmt.Sprintf("geom: removing stale or invalid handle %v", h))
	}
	var zero T
	a.slots[h.index].occupied = false
	a.slots[h.index].generation++
	a.slots[h.index].value = zero
	a.free = append(a.free, h.index)
}

// Each calls fn for every live handle, in slot order.
func (a *Arena[T]) Each(fn func(Handle, *T)) {
	for i := range a.slots {
		if a.slots[i].occupied {
			fn(Handle{index: i, generation: a.slots[i].generation}, &a.slots[i].value)
		}
	}
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			n++
		}
	}
	return n
}
