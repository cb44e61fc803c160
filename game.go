package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/utkedit/assets"
	"github.com/milk9111/utkedit/backend"
	"github.com/milk9111/utkedit/config"
	"github.com/milk9111/utkedit/editor"
	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/glyphs"
	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/levels"
)

// Game runs the editor inside ebiten. Input is turned into editor events
// in Update; the screen is only redrawn after an event asked for it.
type Game struct {
	ctx      *editor.Context
	state    *editor.State
	input    *backend.Input
	renderer *backend.Renderer
	watcher  *levels.Watcher
	store    *config.Store

	events  []editor.Event
	dirty   bool
	laidOut bool
}

func NewGame(cfg *config.Config, store *config.Store, levelPath string) *Game {
	renderer := backend.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	textures := editor.Textures{
		Floor:   renderer.CreateTexture(assets.LoadAtlas(cfg.Assets.Floor, level.Floor)),
		Walls:   renderer.CreateTexture(assets.LoadAtlas(cfg.Assets.Walls, level.Walls)),
		Shadows: renderer.CreateTexture(assets.LoadAtlas(cfg.Assets.Shadows, level.Shadow)),
	}
	font := glyphs.Default(renderer, cfg.TextSize)

	g := geom.NewGraphics(uint32(cfg.Window.Width), uint32(cfg.Window.Height), cfg.RenderMultiplier)
	g.SupportsScaling = cfg.SupportsScaling
	lvl := level.NewDefault(cfg.DefaultLevel.Width, cfg.DefaultLevel.Height)
	ctx := editor.NewContext(g, font, textures, lvl)

	input := backend.NewInput()
	game := &Game{
		ctx:      ctx,
		state:    editor.NewState(levels.FileWriter{Dir: cfg.LevelsDir}, levels.NewDirLister(cfg.LevelsDir), input),
		input:    input,
		renderer: renderer,
		store:    store,
		dirty:    true,
	}

	if w, err := levels.NewWatcher(cfg.LevelsDir); err != nil {
		log.Printf("level directory not watched: %v", err)
	} else {
		game.watcher = w
	}

	if levelPath != "" {
		game.openLevel(levelPath)
	}
	return game
}

// ApplyPreferences restores settings saved by a previous session.
func (g *Game) ApplyPreferences(p config.Preferences) {
	g.ctx.AutomaticShadows = p.AutomaticShadows
	if g.ctx.SavedLevelName == "" {
		g.ctx.LevelSaveName = p.LastSaveName
	}
}

func (g *Game) openLevel(path string) {
	data, err := levels.ReadFile(path)
	if err == nil {
		var lvl *level.Level
		if lvl, err = level.Decode(data); err == nil {
			name := filepath.Base(path)
			g.ctx.Level = lvl
			g.ctx.SavedLevelName = name
			g.ctx.LevelSaveName = strings.TrimSuffix(name, filepath.Ext(name))
			return
		}
	}
	log.Printf("open %s: %v", path, err)
	g.ctx.Notice = "could not open " + filepath.Base(path)
}

func (g *Game) Update() error {
	g.events = g.input.Poll(g.events[:0])
	if g.watcher != nil {
		if g.watcher.Changed() {
			g.events = append(g.events, editor.LevelsChangedEvent())
		}
		select {
		case err := <-g.watcher.Errors:
			log.Printf("level directory watch: %v", err)
		default:
		}
	}

	for _, ev := range g.events {
		rs := g.state.HandleEvent(g.ctx, ev)
		if rs.Quit {
			g.shutdown()
			return ebiten.Termination
		}
		if rs.NeedsRender {
			g.dirty = true
		}
	}
	return nil
}

func (g *Game) shutdown() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	err := g.store.Save(config.Preferences{
		RenderMultiplier: g.ctx.Graphics.RenderMultiplier,
		AutomaticShadows: g.ctx.AutomaticShadows,
		LastSaveName:     g.ctx.LevelSaveName,
	})
	if err != nil {
		log.Printf("save preferences: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.renderer.SetTarget(screen)
	g.state.Render(g.renderer, g.ctx)
	g.dirty = false
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.SetWindowSize(outsideWidth, outsideHeight)
	// Later size changes reach the editor as resize events.
	if !g.laidOut && outsideWidth > 0 && outsideHeight > 0 {
		g.ctx.Resize(uint32(outsideWidth), uint32(outsideHeight))
		g.renderer.SetSize(outsideWidth, outsideHeight)
		g.laidOut = true
	}
	return outsideWidth, outsideHeight
}
