package component

import "github.com/milk9111/overworld/common"

// Position tracks an entity in up to three coordinate spaces: raw
// screen pixels, layer pixels, and map tiles. Primary names the space
// gameplay writes to; the others are derived by outer systems.
type Position struct {
	Screen  common.Vec2 `yaml:"screen"`
	Layer   common.Vec2 `yaml:"layer"`
	Map     common.Vec2 `yaml:"map"`
	Primary string      `yaml:"primary"`

	// Prev holds the primary position before the last move so
	// collision handling can roll a move back.
	Prev common.Vec2 `yaml:"-"`
}

// NewPosition returns a position at the origin, layer-primary.
func NewPosition() *Position {
	return &Position{Primary: "layer"}
}

// At returns the primary position.
func (p *Position) At() common.Vec2 {
	if p == nil {
		return common.Vec2{}
	}
	switch p.Primary {
	case "screen":
		return p.Screen
	case "map":
		return p.Map
	default:
		return p.Layer
	}
}

// MoveTo sets the primary position, recording the previous one.
func (p *Position) MoveTo(v common.Vec2) {
	if p == nil {
		return
	}
	p.Prev = p.At()
	switch p.Primary {
	case "screen":
		p.Screen = v
	case "map":
		p.Map = v
	default:
		p.Layer = v
	}
}
