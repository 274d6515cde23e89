package ecs

// IntersectEntities returns the ids present in every given set,
// iterating the smallest set and probing the rest. Order follows the
// smallest set's dense order.
func IntersectEntities(sets ...*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]int, 0, sets[smallest].Len())
probe:
	for _, id := range sets[smallest].ids {
		for i, s := range sets {
			if i == smallest {
				continue
			}
			if !s.Has(id) {
				continue probe
			}
		}
		out = append(out, id)
	}
	return out
}
