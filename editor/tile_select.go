package editor

import (
	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/render"
)

// TileSelect shows one atlas at a time and lets the user pick the tile
// that mouse painting applies.
type TileSelect struct{}

func (TileSelect) HandleEvent(ctx *Context, ev Event) Result {
	switch ev.Kind {
	case EventQuit, EventWindowResized:
		return change(ModeEditor)
	case EventKeyDown:
		switch ev.Key {
		case KeyEscape, KeySpace:
			return change(ModeEditor)
		case KeyPageDown, KeyDown:
			ctx.ScrolledTexture = nextTexture(ctx.ScrolledTexture)
		case KeyPageUp, KeyUp:
			ctx.ScrolledTexture = prevTexture(ctx.ScrolledTexture)
		default:
			return ignored()
		}
	case EventMouseMotion:
		ctx.Mouse = geom.Point{X: ev.X, Y: ev.Y}
	case EventMouseDown:
		if ev.Button != ButtonLeft {
			return ignored()
		}
		if id, ok := atlasTileAt(ctx); ok {
			ctx.SelectedTile = id
			ctx.SelectedTexture = ctx.ScrolledTexture
			return change(ModeEditor)
		}
	default:
		return ignored()
	}
	return keep()
}

func nextTexture(t level.TextureType) level.TextureType {
	switch t {
	case level.Floor:
		return level.Walls
	case level.Walls:
		return level.Shadow
	default:
		return level.Floor
	}
}

func prevTexture(t level.TextureType) level.TextureType {
	switch t {
	case level.Floor:
		return level.Shadow
	case level.Shadow:
		return level.Walls
	default:
		return level.Floor
	}
}

func atlasRenderSize(ctx *Context) (uint32, uint32) {
	w, h := ctx.Textures.Of(ctx.ScrolledTexture).Size()
	m := ctx.Graphics.RenderMultiplier
	return w * m, h * m
}

// atlasTileAt returns the atlas tile under the cursor. Clicks past the
// populated tiles report false.
func atlasTileAt(ctx *Context) (uint32, bool) {
	g := ctx.Graphics
	w, h := atlasRenderSize(ctx)
	rs := g.RenderSize()
	p := geom.LimitCoordinates(ctx.Mouse, geom.Point{X: w, Y: h})
	id := geom.TileID(g, p, w/rs, geom.Point{})
	aw, ah := ctx.Textures.Of(ctx.ScrolledTexture).Size()
	if id >= geom.TilesInAtlas(aw, ah) {
		return 0, false
	}
	return id, true
}

func (TileSelect) Render(r render.Renderer, ctx *Context) {
	r.ClearScreen()
	g := ctx.Graphics
	atlas := ctx.Textures.Of(ctx.ScrolledTexture)

	dst := render.TextureRect(atlas, g.RenderMultiplier)
	r.FillRect(dst, render.LightGrey)
	r.RenderTexture(atlas, nil, dst)

	w, h := atlasRenderSize(ctx)
	hovered := geom.TileID(g,
		geom.LimitCoordinates(ctx.Mouse, geom.Point{X: w, Y: h}),
		g.XTilesPerScreen(), geom.Point{})
	render.HighlightTile(r, g, hovered, render.White)

	if ctx.SelectedTexture == ctx.ScrolledTexture {
		aw, _ := atlas.Size()
		p := geom.AtlasCoordinates(ctx.SelectedTile, aw)
		m := g.RenderMultiplier
		selected := geom.TileID(g, geom.Point{X: p.X * m, Y: p.Y * m}, g.XTilesPerScreen(), geom.Point{})
		render.HighlightTile(r, g, selected, render.Red)
	}

	var text string
	switch ctx.ScrolledTexture {
	case level.Floor:
		text = "floor blocks (PAGEUP/DOWN)"
	case level.Walls:
		text = "wall blocks (PAGEUP/DOWN)"
	default:
		text = "shadows (PAGEUP/DOWN) - clear with RIGHT CLICK"
	}
	x, y := render.BottomTextPosition(ctx.Font, g.ResolutionY)
	ctx.Font.DrawText(r, text, x, y)
}
