// Package geom converts between screen pixels, level pixels and tile
// indices, and holds the small spatial predicates used by the editor.
//
// Three coordinate spaces are involved:
//   - screen: pixels on the output surface, already scaled by the render
//     multiplier and shifted by the scroll offset;
//   - level: unscaled pixels measured from the level's top-left corner;
//   - logical: whole tiles, optionally offset by the scroll.
package geom

import "math"

// Point is an unsigned coordinate pair. Depending on context it holds
// screen pixels, level pixels or tile coordinates.
type Point struct {
	X uint32
	Y uint32
}

// ScreenPoint is a signed screen position; entities scrolled off the top or
// left edge have negative coordinates.
type ScreenPoint struct {
	X int
	Y int
}

// LogicalCoordinates maps a screen pixel to tile coordinates, adding scroll.
func LogicalCoordinates(g Graphics, x, y uint32, scroll Point) Point {
	m := g.multiplier()
	return Point{
		X: x/m/TileSize + scroll.X,
		Y: y/m/TileSize + scroll.Y,
	}
}

// TileID converts a screen pixel to a linear tile index in a grid rowWidth
// tiles wide.
func TileID(g Graphics, p Point, rowWidth uint32, scroll Point) uint32 {
	l := LogicalCoordinates(g, p.X, p.Y, scroll)
	return l.X + l.Y*rowWidth
}

// ScrollCorrected offsets on-screen tile indices by the scroll.
func ScrollCorrected(scroll Point, x, y uint32) (int, int) {
	return int(x + scroll.X), int(y + scroll.Y)
}

// AbsoluteFromLogical returns the screen pixel of the top-left corner of an
// on-screen tile.
func AbsoluteFromLogical(x, y, renderSize uint32) (int, int) {
	return int(x * renderSize), int(y * renderSize)
}

// LevelFromScreen converts a screen pixel into level pixels.
func LevelFromScreen(g Graphics, p Point, scroll Point) Point {
	m := g.multiplier()
	return Point{
		X: p.X/m + scroll.X*TileSize,
		Y: p.Y/m + scroll.Y*TileSize,
	}
}

// ScreenFromLevel is the inverse of LevelFromScreen.
func ScreenFromLevel(g Graphics, p Point, scroll Point) ScreenPoint {
	m := g.multiplier()
	rs := g.RenderSize()
	return ScreenPoint{
		X: int(p.X*m) - int(scroll.X*rs),
		Y: int(p.Y*m) - int(scroll.Y*rs),
	}
}

// LimitCoordinates clamps p into [0, limit-1] on both axes.
func LimitCoordinates(p Point, limit Point) Point {
	return Point{
		X: clampBelow(p.X, limit.X),
		Y: clampBelow(p.Y, limit.Y),
	}
}

func clampBelow(v, limit uint32) uint32 {
	if limit == 0 {
		return 0
	}
	if v > limit-1 {
		return limit - 1
	}
	return v
}

// SelectedTiles returns every tile index inside the rectangle spanned by two
// screen points. The corners are sorted per axis in pixel space before they
// are converted to indices, so the index difference decomposes cleanly into
// a column span and a row span.
func SelectedTiles(g Graphics, p0, p1 Point, rowWidth uint32, scroll Point) []uint32 {
	if rowWidth == 0 {
		return nil
	}
	first := TileID(g, Point{X: min(p0.X, p1.X), Y: min(p0.Y, p1.Y)}, rowWidth, scroll)
	last := TileID(g, Point{X: max(p0.X, p1.X), Y: max(p0.Y, p1.Y)}, rowWidth, scroll)

	diff := last - first
	cols := diff%rowWidth + 1
	rows := diff/rowWidth + 1

	ids := make([]uint32, 0, cols*rows)
	for y := uint32(0); y < rows; y++ {
		start := first + y*rowWidth
		for x := uint32(0); x < cols; x++ {
			ids = append(ids, start+x)
		}
	}
	return ids
}

// Distance is the Euclidean distance between two points.
func Distance(p0, p1 Point) float64 {
	dx := float64(int64(p1.X) - int64(p0.X))
	dy := float64(int64(p1.Y) - int64(p0.Y))
	return math.Sqrt(dx*dx + dy*dy)
}

// BoxContains reports whether p lies in the half-open square of the given
// size whose top-left corner is box.
func BoxContains(p, box Point, size uint32) bool {
	return p.X >= box.X && p.X < box.X+size &&
		p.Y >= box.Y && p.Y < box.Y+size
}

// AtlasCoordinates returns the pixel position of tile id inside an atlas
// image of the given pixel width.
func AtlasCoordinates(id, atlasWidth uint32) Point {
	if atlasWidth == 0 {
		return Point{}
	}
	return Point{
		X: id * TileSize % atlasWidth,
		Y: id * TileSize / atlasWidth * TileSize,
	}
}

// TilesInAtlas counts the whole tiles in an atlas of the given pixel size.
func TilesInAtlas(width, height uint32) uint32 {
	return (width / TileSize) * (height / TileSize)
}
