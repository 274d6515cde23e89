package common

import "fmt"

// Direction is a compass direction encoded as a bitmask so that
// diagonals compose from their cardinal parts.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West

	NorthEast = North | East
	SouthEast = South | East
	NorthWest = North | West
	SouthWest = South | West
)

var directionNames = map[Direction]string{
	North:     "north",
	East:      "east",
	South:     "south",
	West:      "west",
	NorthEast: "north_east",
	SouthEast: "south_east",
	NorthWest: "north_west",
	SouthWest: "south_west",
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Suffix returns the animation state suffix for d. Sprite sheets carry
// four directional rows, so diagonals collapse onto their horizontal
// cardinal.
func (d Direction) Suffix() string {
	if d&East != 0 {
		return "east"
	}
	if d&West != 0 {
		return "west"
	}
	if d&North != 0 {
		return "north"
	}
	return "south"
}

// DirectionFromVector maps a movement vector to a Direction. A zero
// vector maps to South, the default facing.
func DirectionFromVector(v Vec2) Direction {
	var d Direction
	if v.Y < 0 {
		d |= North
	} else if v.Y > 0 {
		d |= South
	}
	if v.X > 0 {
		d |= East
	} else if v.X < 0 {
		d |= West
	}
	if d == 0 {
		return South
	}
	return d
}

// ParseDirection maps a lowercase direction name back to a Direction.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("common: unknown direction %q", name)
}

// UnmarshalYAML decodes a direction from its lowercase name.
func (d *Direction) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseDirection(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes a direction as its lowercase name.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}
