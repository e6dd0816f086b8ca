package circuit

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Circuit is a named, growable set of point indices considered mutually
// connected. Identity is by pointer: two circuits are the same only if they
// are the same *Circuit, since members are mutated in place.
//
// Circuits only grow (Add) or are absorbed whole by a Forest join; there is
// no removal of individual members.
type Circuit struct {
	id      int
	members *roaring.Bitmap
}

// newCircuit allocates an empty circuit with the given id.
func newCircuit(id int) *Circuit {
	return &Circuit{id: id, members: roaring.New()}
}

// ID returns the creation sequence number assigned by the owning Forest.
func (c *Circuit) ID() int { return c.id }

// Add inserts point p (p >= 0). It reports whether p was new; adding a
// present index is a no-op.
//
// Add bypasses the Forest index map, so circuits returned by a Forest must
// only grow through Forest.Connect.
func (c *Circuit) Add(p int) bool {
	if p < 0 {
		return false
	}

	return c.members.CheckedAdd(uint32(p))
}

// Contains reports whether p is a member.
func (c *Circuit) Contains(p int) bool {
	if p < 0 {
		return false
	}

	return c.members.Contains(uint32(p))
}

// Size returns the number of members.
func (c *Circuit) Size() int {
	return int(c.members.GetCardinality())
}

// Members returns the member indices in ascending order.
func (c *Circuit) Members() []int {
	out := make([]int, 0, c.Size())
	it := c.members.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// String renders the circuit as "#id[a b c]".
func (c *Circuit) String() string {
	return fmt.Sprintf("#%d%v", c.id, c.Members())
}
