package geom

// TileSize is the edge length of one tile in unscaled pixels.
const TileSize uint32 = 20

// Graphics describes the output surface: its resolution in screen pixels
// and the integer zoom applied to tiles.
type Graphics struct {
	RenderMultiplier uint32
	ResolutionX      uint32
	ResolutionY      uint32
	// SupportsScaling reports whether the backend allows switching the
	// render multiplier at runtime.
	SupportsScaling bool
}

func NewGraphics(resolutionX, resolutionY, renderMultiplier uint32) Graphics {
	if renderMultiplier == 0 {
		renderMultiplier = 1
	}
	return Graphics{
		RenderMultiplier: renderMultiplier,
		ResolutionX:      resolutionX,
		ResolutionY:      resolutionY,
	}
}

// RenderSize is the on-screen edge length of a tile.
func (g Graphics) RenderSize() uint32 {
	return TileSize * g.multiplier()
}

// XTilesPerScreen counts tiles touched horizontally, including a partial one.
func (g Graphics) XTilesPerScreen() uint32 {
	rs := g.RenderSize()
	return (g.ResolutionX + rs - 1) / rs
}

// FullXTilesPerScreen counts tiles that fit completely horizontally.
func (g Graphics) FullXTilesPerScreen() uint32 {
	return g.ResolutionX / g.RenderSize()
}

func (g Graphics) YTilesPerScreen() uint32 {
	rs := g.RenderSize()
	return (g.ResolutionY + rs - 1) / rs
}

func (g Graphics) FullYTilesPerScreen() uint32 {
	return g.ResolutionY / g.RenderSize()
}

// Resolution returns the screen size as a point usable with LimitCoordinates.
func (g Graphics) Resolution() Point {
	return Point{X: g.ResolutionX, Y: g.ResolutionY}
}

func (g Graphics) multiplier() uint32 {
	if g.RenderMultiplier == 0 {
		return 1
	}
	return g.RenderMultiplier
}
