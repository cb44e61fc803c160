package editor

import (
	"math"

	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/render"
)

// steamPuffs is how many circles trace a steam emitter's direction.
const steamPuffs = 6

// Render draws the visible part of the level, the entities, the cursor
// highlight and any open prompt.
func (e *Editor) Render(r render.Renderer, ctx *Context) {
	r.ClearScreen()
	e.renderLevel(r, ctx)

	g := ctx.Graphics
	font := ctx.Font
	lvl := ctx.Level
	rs := g.RenderSize()

	hovered := geom.TileID(g, ctx.limitedMouse(ctx.Mouse), g.XTilesPerScreen(), geom.Point{})
	render.HighlightTile(r, g, hovered, render.White)

	ox, oy := lvl.Origin(rs)
	font.DrawText(r, "PL1", ox+int(lvl.P1.X*rs), oy+int(lvl.P1.Y*rs))
	font.DrawText(r, "PL2", ox+int(lvl.P2.X*rs), oy+int(lvl.P2.Y*rs))

	font.DrawText(r, e.statusText(), int(font.Px(4)), int(font.Px(4)))
	e.renderPrompt(r, ctx)

	if e.tool == ToolNone && e.leftHeld {
		ids := geom.SelectedTiles(g,
			ctx.limitedMouse(e.anchor), ctx.limitedMouse(ctx.Mouse),
			g.XTilesPerScreen(), geom.Point{})
		for _, id := range ids {
			render.HighlightTile(r, g, id, render.White)
		}
	}

	x, y := render.BottomTextPosition(font, g.ResolutionY)
	if ctx.SavedLevelName != "" {
		font.DrawText(r, ctx.SavedLevelName, x, y)
	}
	if ctx.Notice != "" {
		font.DrawText(r, ctx.Notice, x, y-int(font.LineHeight()))
	}
}

func (e *Editor) statusText() string {
	switch e.spawn {
	case 1:
		return "place PL1 start point"
	case 2:
		return "place PL2 start point"
	}
	switch e.tool {
	case ToolSpotlight:
		switch e.phase {
		case PhaseTuning:
			return "use UP and DOWN keys to adjust size, ENTER to accept"
		case PhaseDelete:
			return "delete spotlight (ESC to cancel)"
		default:
			return "place spotlight (ESC to cancel)"
		}
	case ToolSteam:
		switch e.phase {
		case PhaseTuning:
			return "UP/DOWN: range, LEFT/RIGHT: dir, ENTER to accept"
		case PhaseDelete:
			return "delete steam (ESC to cancel)"
		default:
			return "place steam (ESC to cancel)"
		}
	case ToolNormalCrate, ToolDeathmatchCrate:
		switch e.phase {
		case PhaseTuning:
			return "UP/DOWN/LEFT/RIGHT: select CRATE, ENTER to accept"
		case PhaseDelete:
			return "delete crate"
		}
		if e.tool == ToolDeathmatchCrate {
			return "place deathmatch game crate"
		}
		return "place normal game crate"
	}
	return "F1 for help"
}

func (e *Editor) renderLevel(r render.Renderer, ctx *Context) {
	g := ctx.Graphics
	lvl := ctx.Level
	rs := g.RenderSize()

	rows := min(lvl.Height(), g.YTilesPerScreen())
	cols := min(lvl.Width(), g.XTilesPerScreen())
	for y := uint32(0); y < rows; y++ {
		for x := uint32(0); x < cols; x++ {
			xi, yi := geom.ScrollCorrected(lvl.Scroll, x, y)
			tile, ok := lvl.Tile(uint32(xi), uint32(yi))
			if !ok {
				continue
			}
			ax, ay := geom.AbsoluteFromLogical(x, y, rs)
			dst := render.NewRect(ax, ay, rs, rs)

			atlas := ctx.Textures.Of(tile.Type)
			src := render.TileSource(atlas, tile.ID)
			r.RenderTexture(atlas, &src, dst)
			if tile.Shadow > 0 {
				src := render.TileSource(ctx.Textures.Shadows, tile.Shadow-1)
				r.RenderTexture(ctx.Textures.Shadows, &src, dst)
			}
		}
	}

	m := g.RenderMultiplier
	for p, intensity := range lvl.Spotlights {
		center := geom.ScreenFromLevel(g, p, lvl.Scroll)
		r.DrawCircle(center, level.SpotlightRadius(intensity)*m, render.Blue)
	}

	for p, s := range lvl.Steams {
		center := geom.ScreenFromLevel(g, p, lvl.Scroll)
		rad := float64(s.Angle) * math.Pi / 180
		for i := uint32(0); i < steamPuffs; i++ {
			dist := float64(i) * 6 * float64(s.Range)
			puff := geom.ScreenPoint{
				X: center.X + int(math.Sin(rad)*dist),
				Y: center.Y + int(math.Cos(rad)*dist),
			}
			r.DrawCircle(puff, level.SteamRadius()+i*2, render.Red)
		}
	}

	for p, c := range lvl.Crates.Static {
		pos := geom.ScreenFromLevel(g, p, lvl.Scroll)
		color := render.LightGreen
		if c.Variant == level.Deathmatch {
			color = render.LightBlue
		}
		size := level.CrateSize
		r.DrawRect(render.NewRect(pos.X, pos.Y, size, size), color)
		r.DrawRect(render.NewRect(pos.X+1, pos.Y+1, size-2, size-2), color)

		name := c.Name()
		_, h := ctx.Font.TextSize(name)
		ctx.Font.DrawText(r, name, pos.X-10, pos.Y-9-int(h))
	}
}

func (e *Editor) renderPrompt(r render.Renderer, ctx *Context) {
	if e.prompt == PromptNone {
		return
	}
	font := ctx.Font
	x := int(ctx.Graphics.ResolutionX/2) - int(font.Px(50))
	y := int(font.Px(100))
	spacing := int(font.Px(15))

	var title string
	switch e.prompt {
	case PromptNewLevel, PromptNewLevelX, PromptNewLevelY:
		title = "create new level?"
		if e.prompt != PromptNewLevel {
			renderInput(font, r, x, y+2*spacing, "x-size (min. 16 blocks):", e.sizeX)
		}
		if e.prompt == PromptNewLevelY {
			renderInput(font, r, x, y+3*spacing, "y-size (min. 12 blocks):", e.sizeY)
		}
	case PromptSave, PromptSaveName:
		title = "save level?"
		if e.prompt == PromptSaveName {
			renderInput(font, r, x, y+2*spacing, "filename:", ctx.LevelSaveName)
		}
	case PromptQuit:
		title = "really wanna quit?"
	case PromptShadowsEnabled:
		title = "disable auto shadow?"
	case PromptShadowsDisabled:
		title = "enable auto shadow?"
	}
	font.DrawText(r, title, x, y)
	font.DrawText(r, "press Y to confirm", x, y+spacing)
}

func renderInput(font render.Font, r render.Renderer, x, y int, label, input string) {
	font.DrawText(r, label, x, y)
	if input == "" {
		return
	}
	w, _ := font.TextSize(label)
	font.DrawText(r, input, x+int(w)+10, y)
}
