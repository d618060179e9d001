// SPDX-License-Identifier: MIT

package degseq

// stampSet is a set of vertices with O(1) reset. A vertex is a member when
// its stamp equals the current generation; members also keeps insertion
// order so the set can be scanned without touching all n slots.
type stampSet struct {
	stamp   []uint32
	gen     uint32
	members []int
}

func newStampSet(n int) *stampSet {
	return &stampSet{stamp: make([]uint32, n), gen: 1}
}

// insert adds v; a repeated insert is a no-op.
func (s *stampSet) insert(v int) {
	if s.stamp[v] == s.gen {
		return
	}
	s.stamp[v] = s.gen
	s.members = append(s.members, v)
}

func (s *stampSet) contains(v int) bool { return s.stamp[v] == s.gen }

func (s *stampSet) len() int { return len(s.members) }

// reset empties the set. The stamp vector is rewritten only when the
// generation counter wraps.
func (s *stampSet) reset() {
	s.members = s.members[:0]
	s.gen++
	if s.gen == 0 {
		clear(s.stamp)
		s.gen = 1
	}
}
