package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/prefabs"
)

const (
	screenWidth  = 960
	screenHeight = 640
)

// Game previews one resolved template's animation table at a time,
// driving a playback cursor over generated placeholder sheets.
type Game struct {
	reg   *assets.Registry
	store *prefabs.Store

	names []string
	idx   int

	animator *component.Animator
	ui       *ebitenui.UI

	zoom float64
}

func NewGame(document, start string, zoom float64) (*Game, error) {
	doc, err := prefabs.LoadDocument(document)
	if err != nil {
		return nil, err
	}

	reg := assets.NewRegistry(assets.DefaultDir)
	if err := registerPlaceholderSheets(reg, doc); err != nil {
		return nil, err
	}

	store := prefabs.NewStore(doc, reg)
	if err := store.ResolveAll(); err != nil {
		return nil, err
	}

	g := &Game{reg: reg, store: store, zoom: zoom}
	for _, name := range store.Names() {
		r, err := store.Resolve(name)
		if err != nil {
			return nil, err
		}
		if sp := r.Sprite(); sp != nil && len(sp.States) > 0 {
			g.names = append(g.names, name)
		}
	}
	if len(g.names) == 0 {
		return nil, errors.New("document has no templates with animations")
	}
	sort.Strings(g.names)

	idx := 0
	for i, n := range g.names {
		if n == start {
			idx = i
		}
	}
	if err := g.selectTemplate(idx); err != nil {
		return nil, err
	}
	return g, nil
}

// selectTemplate points the preview at a template, starting playback
// on its authored initial state when that state is claimed.
func (g *Game) selectTemplate(i int) error {
	name := g.names[i]
	r, err := g.store.Resolve(name)
	if err != nil {
		return err
	}
	sprite := r.Sprite()
	states := sprite.StateNames()

	initial := states[0]
	if v, ok := r.Component("sprite"); ok {
		if sp, ok := v.(*component.Sprite); ok {
			if _, err := sprite.Animation(sp.StateName()); err == nil {
				initial = sp.StateName()
			}
		}
	}

	anim, err := component.NewAnimator(sprite, initial)
	if err != nil {
		return err
	}

	g.idx = i
	g.animator = anim
	g.ui = newPreviewUI(name, states, func(state string) {
		if err := g.animator.SetState(state); err != nil {
			log.Printf("set state %s: %v", state, err)
		}
	}, func() {
		if err := g.selectTemplate((g.idx + 1) % len(g.names)); err != nil {
			log.Printf("select template: %v", err)
		}
	})
	return nil
}

func (g *Game) Update() error {
	g.ui.Update()
	g.animator.Advance(common.TickDuration)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x26, G: 0x26, B: 0x2e, A: 0xff})
	g.drawFrame(screen)
	g.ui.Draw(screen)

	status := fmt.Sprintf("%s    state: %s    frame: %d", g.names[g.idx], g.animator.State(), g.animator.Frame())
	if g.animator.Finished() {
		status += "    (finished)"
	}
	ebitenutil.DebugPrint(screen, status)
}

// drawFrame composites the current frame's layers back to front at the
// center of the screen.
func (g *Game) drawFrame(screen *ebiten.Image) {
	c := g.animator.Animation()
	if c == nil {
		return
	}
	ox := (screenWidth - float64(c.FrameSize[0])*g.zoom) / 2
	oy := (screenHeight - float64(c.FrameSize[1])*g.zoom) / 2

	for _, lf := range g.animator.CurrentFrame() {
		sheet, err := g.reg.Sheet(lf.Asset)
		if err != nil || sheet.Image == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.zoom, g.zoom)
		op.GeoM.Translate(ox, oy)
		screen.DrawImage(sheet.Image.SubImage(lf.Rect).(*ebiten.Image), op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	document := flag.String("document", prefabs.DefaultDocument, "entity document to preview")
	template := flag.String("template", "player", "template to open first")
	zoom := flag.Float64("zoom", 4, "preview scale factor")
	flag.Parse()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Animation Preview")

	game, err := NewGame(*document, *template, *zoom)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
