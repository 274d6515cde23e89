package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Drawer is implemented by systems that also draw to the screen each
// frame. Draw order follows system registration order.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image, camX, camY, zoom float64)
}

// Draw invokes every registered system that implements Drawer.
func (w *World) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.systems {
		if d, ok := s.(Drawer); ok && d != nil {
			d.Draw(w, screen, camX, camY, zoom)
		}
	}
}
