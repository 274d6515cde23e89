package system

import (
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
)

// RenderSystem composites layered animation frames to the screen.
// World-space entities are painter-sorted by their vertical position
// and drawn under the camera transform; screen-space entities (the
// cursor) are drawn last in raw screen pixels.
type RenderSystem struct {
	log    *zap.Logger
	assets *assets.Registry

	missing map[string]bool
}

// NewRenderSystemFactory returns the registry factory for rendering.
func NewRenderSystemFactory() Factory {
	return func(deps Deps, cfg prefabs.SystemConfig) (ecs.System, error) {
		return NewRenderSystem(deps.logger(), deps.Assets), nil
	}
}

// NewRenderSystem creates a render system over a sheet registry.
func NewRenderSystem(log *zap.Logger, reg *assets.Registry) *RenderSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &RenderSystem{log: log, assets: reg, missing: map[string]bool{}}
}

// Update is a no-op; rendering happens in Draw.
func (r *RenderSystem) Update(w *ecs.World, dt time.Duration) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	if r == nil || w == nil || screen == nil || r.assets == nil {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}

	type drawable struct {
		id          int
		pos         *component.Position
		animator    *component.Animator
		screenSpace bool
	}

	var world, overlay []drawable
	for _, id := range ecs.IntersectEntities(w.Positions(), w.Animators()) {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		d := drawable{
			id:       id,
			pos:      w.GetPosition(e),
			animator: w.GetAnimator(e),
		}
		if d.pos.Primary == "screen" {
			d.screenSpace = true
			overlay = append(overlay, d)
			continue
		}
		world = append(world, d)
	}

	sort.SliceStable(world, func(i, j int) bool {
		yi, yj := world[i].pos.At().Y, world[j].pos.At().Y
		if yi != yj {
			return yi < yj
		}
		return world[i].id < world[j].id
	})

	for _, d := range world {
		at := d.pos.At()
		r.drawFrames(screen, d.animator, (at.X-camX)*zoom, (at.Y-camY)*zoom, zoom)
	}
	for _, d := range overlay {
		at := d.pos.At()
		r.drawFrames(screen, d.animator, at.X, at.Y, 1)
	}
}

func (r *RenderSystem) drawFrames(screen *ebiten.Image, a *component.Animator, x, y, scale float64) {
	for _, lf := range a.CurrentFrame() {
		sheet, err := r.assets.Sheet(lf.Asset)
		if err != nil || sheet.Image == nil {
			if !r.missing[lf.Asset] {
				r.missing[lf.Asset] = true
				r.log.Warn("sprite sheet unavailable", zap.String("sheet", lf.Asset), zap.Error(err))
			}
			continue
		}
		sub, ok := sheet.Image.SubImage(lf.Rect).(*ebiten.Image)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		screen.DrawImage(sub, op)
	}
}
