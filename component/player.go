package component

// Player marks the entity controlled by the local player.
type Player struct{}

func NewPlayer() *Player {
	return &Player{}
}
