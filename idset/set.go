package idset

import "sort"

// ID is a numeric identifier uniquely designating a record in a master
// dataset. IDs are compared by value only.
type ID int64

// Set is a duplicate-free, unordered collection of IDs.
// The zero value is not usable; construct with New or FromSlice.
type Set map[ID]struct{}

// New returns a Set containing the given IDs.
//
// Complexity: O(n).
func New(ids ...ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// FromSlice builds a Set from raw IDs, silently collapsing duplicates.
// Callers that must *report* duplicates should run Duplicates first.
//
// Complexity: O(n).
func FromSlice(ids []ID) Set {
	return New(ids...)
}

// Add inserts id into s. The only mutating operation on Set.
func (s Set) Add(id ID) {
	s[id] = struct{}{}
}

// Has reports whether id is a member of s.
func (s Set) Has(id ID) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Diff returns a new set holding the members of s absent from every other.
//
// Complexity: O(|s|·k) for k other sets.
func (s Set) Diff(others ...Set) Set {
	out := make(Set, len(s))
outer:
	for id := range s {
		for _, o := range others {
			if o.Has(id) {
				continue outer
			}
		}
		out[id] = struct{}{}
	}

	return out
}

// Intersect returns a new set holding the members common to s and o.
//
// Complexity: O(min(|s|,|o|)).
func (s Set) Intersect(o Set) Set {
	small, large := s, o
	if large.Len() < small.Len() {
		small, large = large, small
	}
	out := make(Set)
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// Union returns a new set holding every member of s or o.
//
// Complexity: O(|s|+|o|).
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range o {
		out[id] = struct{}{}
	}

	return out
}

// Sorted returns the members in ascending order. This is the canonical
// iteration order: every consumer that needs determinism (the sampler,
// report rows, findings text) must go through Sorted, never range over
// the map directly.
//
// Complexity: O(n log n) time, O(n) space.
func (s Set) Sorted() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Duplicates returns the set of values appearing more than once in ids.
// Used to surface duplicate rows in source files before they are collapsed
// into a Set.
//
// Complexity: O(n) time, O(n) space.
func Duplicates(ids []ID) Set {
	seen := make(map[ID]int, len(ids))
	dup := make(Set)
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			dup[id] = struct{}{}
		}
	}

	return dup
}
