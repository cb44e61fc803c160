package editor

import (
	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/render"
)

// Textures holds the three tile atlases.
type Textures struct {
	Floor   render.Texture
	Walls   render.Texture
	Shadows render.Texture
}

// Of returns the atlas used for a texture kind.
func (t Textures) Of(kind level.TextureType) render.Texture {
	switch kind {
	case level.Walls:
		return t.Walls
	case level.Shadow:
		return t.Shadows
	default:
		return t.Floor
	}
}

// Context is the state shared by every mode: the level being edited, the
// output surface and the palette selection. The shell owns it and passes
// it to each call.
type Context struct {
	Graphics geom.Graphics
	Font     render.Font
	Textures Textures
	Level    *level.Level

	// SelectedTile and SelectedTexture are what mouse painting applies.
	SelectedTile    uint32
	SelectedTexture level.TextureType
	// ScrolledTexture is the atlas shown in tile select mode.
	ScrolledTexture level.TextureType

	// Mouse is the last cursor position in screen pixels.
	Mouse geom.Point

	// LevelSaveName is the editable file stem for saving.
	LevelSaveName string
	// SavedLevelName is the file name last saved or loaded, shown at the
	// bottom of the editor. Empty when the level was never stored.
	SavedLevelName string
	// Notice is a one-line message about the last failed load or save.
	Notice string

	AutomaticShadows bool
}

// NewContext returns a context editing lvl with floor tile 0 selected and
// automatic shadows on.
func NewContext(g geom.Graphics, font render.Font, textures Textures, lvl *level.Level) *Context {
	return &Context{
		Graphics:         g,
		Font:             font,
		Textures:         textures,
		Level:            lvl,
		SelectedTexture:  level.Floor,
		ScrolledTexture:  level.Floor,
		AutomaticShadows: true,
	}
}

// Resize updates the output resolution and pulls the scroll back so it
// never passes the level's content.
func (c *Context) Resize(w, h uint32) {
	c.Graphics.ResolutionX = w
	c.Graphics.ResolutionY = h
	c.clampScroll()
}

func (c *Context) clampScroll() {
	lvl := c.Level
	if lvl == nil {
		return
	}
	g := c.Graphics
	lvl.Scroll.X = min(lvl.Scroll.X, lvl.Width()-min(lvl.Width(), g.FullXTilesPerScreen()))
	lvl.Scroll.Y = min(lvl.Scroll.Y, lvl.Height()-min(lvl.Height(), g.FullYTilesPerScreen()))
}

// limitedMouse clamps p to the part of the level visible on screen, then to
// the screen itself.
func (c *Context) limitedMouse(p geom.Point) geom.Point {
	rs := c.Graphics.RenderSize()
	lvl := c.Level
	maxX := int64(lvl.Width()) - int64(lvl.Scroll.X)
	maxY := int64(lvl.Height()) - int64(lvl.Scroll.Y)
	limit := func(v uint32, tiles int64) uint32 {
		edge := tiles*int64(rs) - 1
		if edge < 0 {
			return 0
		}
		return uint32(min(int64(v), edge))
	}
	return geom.LimitCoordinates(
		geom.Point{X: limit(p.X, maxX), Y: limit(p.Y, maxY)},
		c.Graphics.Resolution(),
	)
}
