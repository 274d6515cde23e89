package component

// Character carries an entity's displayed name.
type Character struct {
	Name string `yaml:"name"`
}

func NewCharacter() *Character {
	return &Character{}
}
