package satsolver

import "github.com/mmaroti/uasat-go/core"

// vsids is the variable-activity decision heuristic: each conflict bumps
// the activity of the variables it touches, activities decay over time
// by a constant factor, and the next decision picks the unassigned
// variable with the highest activity. Activities are indexed by
// variable number directly, so every lookup is a plain array load.
type vsids struct {
	activity []float64
	bumpInc  float64
	decay    float64
	// There is no priority heap: choose does a linear scan of activity,
	// which for the variable counts this package targets (CNF encodings
	// of tensor expressions over a handful of domain elements) beats the
	// bookkeeping of a binary heap.
}

func newVSIDS() *vsids {
	return &vsids{bumpInc: 1.0, decay: 0.95}
}

func (h *vsids) grow(nvars int) {
	for len(h.activity) < nvars {
		h.activity = append(h.activity, 0)
	}
}

func (h *vsids) bump(v int) {
	h.activity[v] += h.bumpInc
	if h.activity[v] > 1e100 {
		for i := range h.activity {
			h.activity[i] *= 1e-100
		}
		h.bumpInc *= 1e-100
	}
}

func (h *vsids) decayAll() {
	h.bumpInc /= h.decay
}

// choose returns the unassigned variable (1-based) with the highest
// activity, or 0 if every variable is assigned or eliminated.
func (h *vsids) choose(vars []varState) core.Literal {
	best := -1.0
	choice := 0
	for i, vs := range vars {
		if vs.value != core.Undef || vs.eliminated || !vs.decision {
			continue
		}
		if a := h.activity[i]; choice == 0 || a > best {
			best = a
			choice = i + 1
		}
	}
	if choice == 0 {
		return core.Undef
	}
	return core.Literal(choice)
}

// luby computes the i-th term (0-based) of the base-2 Luby restart
// sequence, used to scale the conflict budget before each restart:
// 1 1 2 1 1 2 4 1 1 2 1 1 2 4 8 ...
func luby(i int) int {
	size, seq := 1, 0
	for size < i+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != i {
		size = (size - 1) / 2
		seq--
		i = i % size
	}
	return 1 << uint(seq)
}
