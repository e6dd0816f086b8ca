package circuit

import (
	"fmt"
	"slices"
)

// Outcome tells which of the four Connect branches was taken.
type Outcome int

const (
	// Created: neither point was assigned; a new two-member circuit exists.
	Created Outcome = iota + 1
	// Extended: one point was assigned; the other joined its circuit.
	Extended
	// AlreadyConnected: both points were in the same circuit; nothing changed.
	AlreadyConnected
	// Joined: the points were in different circuits; b's circuit was absorbed into a's.
	Joined
)

// String returns the lower-case branch name.
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Extended:
		return "extended"
	case AlreadyConnected:
		return "already-connected"
	case Joined:
		return "joined"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Changed reports whether the outcome modified the forest.
func (o Outcome) Changed() bool {
	return o == Created || o == Extended || o == Joined
}

// Forest is the disjoint-set manager over points [0, n). It owns every live
// Circuit (in creation order) and maps each assigned point to its Circuit.
//
// Invariants, preserved by every Connect:
//   - a point belongs to at most one live circuit;
//   - owner[p] == c  ⇔  c is live and c.Contains(p);
//   - every live circuit has at least two members.
//
// Points that were never connected are unassigned and belong to no circuit.
// A Forest is not safe for concurrent use: connections must be applied in
// ascending-distance order by a single caller.
type Forest struct {
	n        int
	nextID   int
	circuits []*Circuit
	owner    map[int]*Circuit
}

// NewForest returns an empty forest over n points.
// Returns ErrEmpty when n <= 0.
func NewForest(n int) (*Forest, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}

	return &Forest{n: n, owner: make(map[int]*Circuit)}, nil
}

// Points returns n, the number of points the forest ranges over.
func (f *Forest) Points() int { return f.n }

// Locate returns the circuit owning p, or false if p is unassigned
// (or outside [0, n)). O(1) via the index map.
func (f *Forest) Locate(p int) (*Circuit, bool) {
	c, ok := f.owner[p]

	return c, ok
}

// Connect links points a and b.
//
// Branches:
//  1. neither assigned   → create a circuit {a, b} and append it (Created);
//  2. exactly one assigned → add the other to that circuit (Extended);
//  3. same circuit         → no-op (AlreadyConnected);
//  4. different circuits   → move every member of b's circuit into a's circuit,
//     re-point their map entries, drop b's circuit (Joined).
//
// The circuit containing a always survives a join. This only affects which
// *Circuit identity remains, never the resulting partition.
//
// Afterwards Locate(a) == Locate(b).
//
// Errors: ErrOutOfRange, ErrSelfPair. The forest is unchanged on error.
func (f *Forest) Connect(a, b int) (Outcome, error) {
	// 1. Validate endpoints.
	if a < 0 || a >= f.n || b < 0 || b >= f.n {
		return 0, fmt.Errorf("Forest.Connect(%d,%d): %w", a, b, ErrOutOfRange)
	}
	if a == b {
		return 0, fmt.Errorf("Forest.Connect(%d,%d): %w", a, b, ErrSelfPair)
	}

	// 2. Dispatch on assignment state.
	ca, okA := f.owner[a]
	cb, okB := f.owner[b]
	switch {
	case !okA && !okB:
		c := newCircuit(f.nextID)
		f.nextID++
		f.assign(c, a)
		f.assign(c, b)
		f.circuits = append(f.circuits, c)

		return Created, nil

	case okA && !okB:
		f.assign(ca, b)

		return Extended, nil

	case !okA && okB:
		f.assign(cb, a)

		return Extended, nil

	case ca == cb:
		return AlreadyConnected, nil

	default:
		f.join(ca, cb)

		return Joined, nil
	}
}

// assign adds p to c and records the ownership.
func (f *Forest) assign(c *Circuit, p int) {
	c.Add(p)
	f.owner[p] = c
}

// join transfers every member of src into dst and removes src from the forest.
// Members are moved, never copied: afterwards no map entry refers to src.
func (f *Forest) join(dst, src *Circuit) {
	dst.members.Or(src.members)
	it := src.members.Iterator()
	for it.HasNext() {
		f.owner[int(it.Next())] = dst
	}
	src.members.Clear()

	// Remove src while keeping the creation order of the others.
	if i := slices.Index(f.circuits, src); i >= 0 {
		f.circuits = slices.Delete(f.circuits, i, i+1)
	}
}

// Circuits returns the live circuits in creation order.
// The slice is a copy; the circuits themselves are shared and must be treated
// as read-only by callers.
func (f *Forest) Circuits() []*Circuit {
	return slices.Clone(f.circuits)
}

// Len returns the number of live circuits.
func (f *Forest) Len() int { return len(f.circuits) }

// Assigned returns the number of points that belong to some circuit.
func (f *Forest) Assigned() int { return len(f.owner) }

// Complete reports full connectivity: a single circuit holds all n points.
// A one-point forest is trivially complete.
func (f *Forest) Complete() bool {
	if f.n == 1 {
		return true
	}

	return len(f.circuits) == 1 && len(f.owner) == f.n
}

// Sizes returns the size of every live circuit in creation order.
func (f *Forest) Sizes() []int {
	out := make([]int, len(f.circuits))
	for i, c := range f.circuits {
		out[i] = c.Size()
	}

	return out
}

// Validate re-derives the invariants from scratch and returns ErrInconsistent
// (wrapped with the offending point or circuit) when they do not hold.
// Complexity: O(n + Σ|circuit|).
func (f *Forest) Validate() error {
	live := make(map[*Circuit]bool, len(f.circuits))
	total := 0
	for _, c := range f.circuits {
		if live[c] {
			return fmt.Errorf("circuit %s listed twice: %w", c, ErrInconsistent)
		}
		live[c] = true
		if c.Size() < 2 {
			return fmt.Errorf("circuit %s has fewer than two members: %w", c, ErrInconsistent)
		}
		for _, p := range c.Members() {
			if f.owner[p] != c {
				return fmt.Errorf("point %d in %s maps elsewhere: %w", p, c, ErrInconsistent)
			}
		}
		total += c.Size()
	}
	if total != len(f.owner) {
		return fmt.Errorf("%d members but %d mapped points: %w", total, len(f.owner), ErrInconsistent)
	}
	for p, c := range f.owner {
		if !live[c] || !c.Contains(p) {
			return fmt.Errorf("point %d maps to a circuit that does not hold it: %w", p, ErrInconsistent)
		}
	}

	return nil
}
