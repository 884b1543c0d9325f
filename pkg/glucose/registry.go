package glucose

import "sync"

// Handle is the opaque 64-bit identifier a caller holds for a solver
// instance. The zero Handle is never issued; Init returns it to signal
// allocation failure. A Handle is live from Init until Release; the
// registry detects released and never-issued handles through a
// generation tag, so stale handles are rejected instead of reaching a
// reused slot.
type Handle uint64

// Valid reports whether the handle could ever have been issued. It does
// not check liveness.
func (h Handle) Valid() bool {
	return h != 0
}

func (h Handle) index() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

type slot struct {
	generation uint32
	solver     *Solver
}

// registry maps handles to exclusively-owned solver instances. Slots
// are recycled through a free list; each reuse bumps the slot's
// generation so handles into a previous occupancy no longer match.
type registry struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
}

func newRegistry() *registry {
	return &registry{}
}

func (r *registry) create(solver *Solver) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		index = uint32(len(r.slots) - 1)
	}

	r.slots[index].generation++
	r.slots[index].solver = solver

	// Slot indices are stored off by one so that the zero Handle stays
	// reserved as the invalid sentinel.
	return Handle(uint64(r.slots[index].generation)<<32 | uint64(index+1))
}

func (r *registry) lookup(h Handle) *Solver {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slotOf(h)
	if s == nil {
		return nil
	}
	return s.solver
}

func (r *registry) release(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slotOf(h)
	if s == nil {
		return false
	}
	s.solver = nil
	r.free = append(r.free, h.index()-1)
	return true
}

// slotOf resolves a handle to its slot, nil when the handle was never
// issued or its slot has moved on to a later generation. Callers hold
// r.mu.
func (r *registry) slotOf(h Handle) *slot {
	index := h.index()
	if index == 0 || int(index) > len(r.slots) {
		return nil
	}
	s := &r.slots[index-1]
	if s.generation != h.generation() || s.solver == nil {
		return nil
	}
	return s
}
