// Package circuit implements the Circuit and ClusterForest parts of the
// clustering engine: an explicit disjoint-set over point indices where every
// set is a named Circuit and every assigned point maps to its Circuit.
//
// Connect(a, b) is the only mutation of a Forest. It takes one of four
// branches (see Outcome):
//
//	neither assigned      → Created           new circuit {a, b}
//	one assigned          → Extended          other point joins that circuit
//	same circuit          → AlreadyConnected  no-op
//	different circuits    → Joined            b's circuit absorbed into a's
//
// Lifecycle of a Circuit:
//
//	nonexistent → created (two members) → growing → absorbed (removed, terminal)
//
// Membership is kept in a roaring bitmap per circuit; the point→circuit map
// gives O(1) Locate. Forest.Validate recomputes the invariants for tests and
// debugging.
package circuit
