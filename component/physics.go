package component

import "image"

// Physics describes the collision core of an entity: a small rectangle
// around the feet rather than the full sprite, offset from the sprite
// center.
type Physics struct {
	CoreSize   [2]int `yaml:"core_size"`
	CoreOffset [2]int `yaml:"core_offset"`
}

// NewPhysics returns a physics component with an empty core.
func NewPhysics() *Physics {
	return &Physics{}
}

// Core returns the collision rectangle centered on cx, cy.
func (p *Physics) Core(cx, cy int) image.Rectangle {
	if p == nil {
		return image.Rectangle{}
	}
	w, h := p.CoreSize[0], p.CoreSize[1]
	x := cx + p.CoreOffset[0] - w/2
	y := cy + p.CoreOffset[1] - h/2
	return image.Rect(x, y, x+w, y+h)
}
