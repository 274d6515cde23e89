package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/prefabs"
)

func main() {
	document := flag.String("document", prefabs.DefaultDocument, "entity document to load")
	assetDir := flag.String("assets", assets.DefaultDir, "directory holding sprite sheets")
	watch := flag.Bool("watch", false, "reload the scene when prefab files change")
	debug := flag.Bool("debug", false, "enable the debug overlay and verbose logging")
	monitor := flag.Int("m", 0, "monitor index to open the window on")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	monitors := ebiten.AppendMonitors(nil)
	if *monitor > 0 && *monitor < len(monitors) {
		ebiten.SetMonitor(monitors[*monitor])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Overworld")

	game, err := NewGame(logger, *document, *assetDir, *watch, *debug)
	if err != nil {
		logger.Fatal("boot failed", zap.Error(err))
	}
	defer game.Close()

	// Hide the native OS cursor; the cursor template draws its own.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
