package ecs

import "strconv"

// Entity is a live-entity handle: a dense id plus the generation it
// was allocated under. A handle goes stale when its entity is
// destroyed and the id is recycled.
type Entity struct {
	ID  int
	Gen int
}

// Valid reports whether the handle was ever allocated.
func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

// entityStore allocates entity ids densely and recycles them through
// a free list, bumping the generation on every destroy so stale
// handles can be told apart from live ones.
type entityStore struct {
	next  int
	gens  []int
	live  []bool
	free  []int
	alive int
}

func (s *entityStore) alloc() Entity {
	if s == nil {
		return Entity{}
	}
	var id int
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.next++
		id = s.next
		s.gens = append(s.gens, 0)
		s.live = append(s.live, false)
	}
	s.live[id-1] = true
	s.alive++
	return Entity{ID: id, Gen: s.gens[id-1]}
}

func (s *entityStore) release(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gens[e.ID-1]++
	s.live[e.ID-1] = false
	s.free = append(s.free, e.ID)
	s.alive--
	return true
}

// handleFor rebuilds the live handle for a raw id, as stored in
// component sets.
func (s *entityStore) handleFor(id int) (Entity, bool) {
	if s == nil || id <= 0 || id > len(s.gens) || !s.live[id-1] {
		return Entity{}, false
	}
	return Entity{ID: id, Gen: s.gens[id-1]}, true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gens) {
		return false
	}
	return s.live[e.ID-1] && s.gens[e.ID-1] == e.Gen
}

func (s *entityStore) liveCount() int {
	if s == nil {
		return 0
	}
	return s.alive
}
