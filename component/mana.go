package component

// Mana holds gathered mana stores indexed by type (earth, wind, ...).
// No single pool may exceed Max.
type Mana struct {
	Pools map[string]float64 `yaml:"pools"`
	Max   float64            `yaml:"max"`
}

// NewMana returns an empty mana component with a pool cap of 100.
func NewMana() *Mana {
	return &Mana{Pools: map[string]float64{}, Max: 100}
}

// Gain adds amount to the named pool, clamped to Max. It returns the
// amount actually stored.
func (m *Mana) Gain(pool string, amount float64) float64 {
	if m == nil || amount <= 0 {
		return 0
	}
	if m.Pools == nil {
		m.Pools = map[string]float64{}
	}
	have := m.Pools[pool]
	room := m.Max - have
	if room <= 0 {
		return 0
	}
	if amount > room {
		amount = room
	}
	m.Pools[pool] = have + amount
	return amount
}

// Spend removes amount from the named pool if the pool covers it.
func (m *Mana) Spend(pool string, amount float64) bool {
	if m == nil || m.Pools == nil || m.Pools[pool] < amount {
		return false
	}
	m.Pools[pool] -= amount
	return true
}
