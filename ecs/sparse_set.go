package ecs

// SparseSet maps entity ids to component values with dense iteration
// order. Lookups go through a sparse index slice, values live packed
// in insertion order and removal swaps the last value into the hole.
type SparseSet struct {
	ids   []int
	items []any
	// index[id-1] holds dense position + 1, zero means absent.
	index []int
}

func (s *SparseSet) slot(id int) (int, bool) {
	if s == nil || id <= 0 || id > len(s.index) {
		return 0, false
	}
	pos := s.index[id-1]
	if pos == 0 {
		return 0, false
	}
	return pos - 1, true
}

// Has reports whether id has a value in the set.
func (s *SparseSet) Has(id int) bool {
	_, ok := s.slot(id)
	return ok
}

// Get returns the value stored for id, or nil when absent.
func (s *SparseSet) Get(id int) any {
	pos, ok := s.slot(id)
	if !ok {
		return nil
	}
	return s.items[pos]
}

// Set inserts or replaces the value stored for id.
func (s *SparseSet) Set(id int, v any) {
	if s == nil || id <= 0 {
		return
	}
	for id > len(s.index) {
		s.index = append(s.index, 0)
	}
	if pos, ok := s.slot(id); ok {
		s.items[pos] = v
		return
	}
	s.ids = append(s.ids, id)
	s.items = append(s.items, v)
	s.index[id-1] = len(s.ids)
}

// Remove drops the value stored for id if present.
func (s *SparseSet) Remove(id int) {
	pos, ok := s.slot(id)
	if !ok {
		return
	}
	last := len(s.ids) - 1
	movedID := s.ids[last]
	s.ids[pos] = movedID
	s.items[pos] = s.items[last]
	s.index[movedID-1] = pos + 1

	s.ids = s.ids[:last]
	s.items = s.items[:last]
	s.index[id-1] = 0
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Entities returns the dense id list. Callers must not mutate it.
func (s *SparseSet) Entities() []int {
	if s == nil {
		return nil
	}
	return s.ids
}

// ForEach visits every stored id and value in dense order. Values
// added or removed mid-iteration are not guaranteed to be visited.
func (s *SparseSet) ForEach(fn func(id int, v any)) {
	if s == nil {
		return
	}
	for i, id := range s.ids {
		fn(id, s.items[i])
	}
}
