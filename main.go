package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/utkedit/config"
)

const appName = "utkedit"

func main() {
	configPath := flag.String("config", "", "editor configuration file (YAML), built-in defaults when empty")
	levelPath := flag.String("level", "", "open this .LEV file at start")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	store, err := config.OpenStore(appName)
	if err != nil {
		log.Printf("preferences disabled: %v", err)
	}
	prefs, havePrefs := store.Load()
	if havePrefs {
		prefs.Apply(cfg)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	game := NewGame(cfg, store, *levelPath)
	if havePrefs {
		game.ApplyPreferences(prefs)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
