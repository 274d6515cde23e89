package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/ecs/system"
	"github.com/milk9111/overworld/prefabs"
)

// scene is one loaded world: the template store it was spawned from,
// the live entities, and the systems driving them.
type scene struct {
	world  *ecs.World
	store  *prefabs.Store
	player ecs.Entity
	cursor ecs.Entity
}

type Game struct {
	log    *zap.Logger
	assets *assets.Registry

	document string
	debug    bool

	scene   *scene
	watcher *prefabs.Watcher

	frames int
}

func NewGame(log *zap.Logger, document, assetDir string, watch, debug bool) (*Game, error) {
	g := &Game{
		log:      log,
		assets:   assets.NewRegistry(assetDir),
		document: document,
		debug:    debug,
	}

	sc, err := g.loadScene()
	if err != nil {
		return nil, err
	}
	g.scene = sc

	if watch {
		w, err := prefabs.Watch("prefabs", "prefabs/scripts")
		if err != nil {
			log.Warn("template watching disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadScene parses the entity document, resolves every template, and
// spawns the starting entities into a fresh world.
func (g *Game) loadScene() (*scene, error) {
	doc, err := prefabs.LoadDocument(g.document)
	if err != nil {
		return nil, err
	}
	store := prefabs.NewStore(doc, g.assets)
	if err := store.ResolveAll(); err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	w.SetManaField(defaultManaField())

	systems, err := system.DefaultRegistry().BuildAll(system.Deps{
		Log:    g.log,
		Assets: g.assets,
	}, doc.Entities.Systems)
	if err != nil {
		return nil, err
	}
	for _, s := range systems {
		w.AddSystem(s)
	}

	sc := &scene{world: w, store: store}
	sc.player, err = entity.NewPlayerAt(w, store, common.BaseWidth/2, common.BaseHeight/2)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	if _, ok := store.Template("cursor"); ok {
		sc.cursor, err = entity.NewCursor(w, store)
		if err != nil {
			return nil, fmt.Errorf("spawn cursor: %w", err)
		}
	}

	g.log.Info("scene loaded",
		zap.String("document", g.document),
		zap.Strings("templates", store.Names()),
		zap.Int("systems", len(systems)))
	return sc, nil
}

// defaultManaField scatters a few gatherable sources around the
// starting area.
func defaultManaField() *ecs.ManaField {
	f := ecs.NewManaField()
	f.AddSource(&ecs.ManaSource{
		ID:       "spring_west",
		Type:     "water",
		Position: common.Vec2{X: common.BaseWidth/2 - 220, Y: common.BaseHeight / 2},
		Radius:   48,
		Amount:   100,
		Max:      100,
	})
	f.AddSource(&ecs.ManaSource{
		ID:       "grove_east",
		Type:     "earth",
		Position: common.Vec2{X: common.BaseWidth/2 + 220, Y: common.BaseHeight/2 - 90},
		Radius:   64,
		Amount:   100,
		Max:      100,
	})
	return f
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		g.drainWatcher()
	}

	g.pollInput()
	g.scene.world.Update(common.TickDuration)
	return nil
}

// drainWatcher applies pending template reloads. A reload rebuilds the
// scene from scratch; a document that no longer parses keeps the old
// scene running.
func (g *Game) drainWatcher() {
	reload := false
	for {
		select {
		case path := <-g.watcher.Events:
			g.log.Info("template change detected", zap.String("path", path))
			reload = true
		case err := <-g.watcher.Errors:
			g.log.Warn("template watcher error", zap.Error(err))
		default:
			if !reload {
				return
			}
			sc, err := g.loadScene()
			if err != nil {
				g.log.Error("template reload failed, keeping old scene", zap.Error(err))
				return
			}
			sc.world.Events().PushData(ecs.EventTemplateReload, ecs.TemplateReloadEvent{Path: g.document})
			g.scene = sc
			return
		}
	}
}

// pollInput maps the keyboard onto every player-controlled entity's
// input component and pins the cursor entity to the mouse.
func (g *Game) pollInput() {
	w := g.scene.world
	for _, id := range ecs.IntersectEntities(w.Players(), w.Inputs()) {
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		in := w.GetInput(e)
		in.MoveUp = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
		in.MoveDown = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
		in.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
		in.MoveRight = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
		in.ManaGather = ebiten.IsKeyPressed(ebiten.KeyG)
		if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
			in.SkillUsage = true
			in.SelectedSkill = "haste"
		} else {
			in.SkillUsage = false
			in.SelectedSkill = ""
		}
	}

	if g.scene.cursor.Valid() && w.IsAlive(g.scene.cursor) {
		if pos := w.GetPosition(g.scene.cursor); pos != nil {
			x, y := ebiten.CursorPosition()
			pos.MoveTo(common.Vec2{X: float64(x), Y: float64(y)})
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 28, G: 32, B: 24, A: 255})

	camX, camY := g.cameraOrigin()
	g.scene.world.Draw(screen, camX, camY, 1)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f    Entities: %d",
			g.frames, ebiten.ActualFPS(), g.scene.world.EntityCount()))
	}
}

// cameraOrigin centers the view on the player.
func (g *Game) cameraOrigin() (float64, float64) {
	w := g.scene.world
	p := g.scene.player
	if !p.Valid() || !w.IsAlive(p) {
		return 0, 0
	}
	pos := w.GetPosition(p)
	if pos == nil {
		return 0, 0
	}
	at := pos.At()
	return at.X - common.BaseWidth/2, at.Y - common.BaseHeight/2
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
