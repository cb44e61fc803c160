// Package level holds the UTK level model: the tile grid, placed entities,
// per-level metadata and the binary .LEV codec.
package level

import (
	"fmt"

	"github.com/milk9111/utkedit/geom"
)

// TileSize is the unscaled tile edge in pixels.
const TileSize = geom.TileSize

const (
	MinWidth  = 16
	MinHeight = 12
)

type TextureType uint32

const (
	Floor TextureType = iota
	Walls
	// Shadow is a palette kind only. Painting it edits a tile's shadow
	// overlay, it is never stored as a tile's type.
	Shadow
)

func (t TextureType) String() string {
	switch t {
	case Floor:
		return "floor"
	case Walls:
		return "walls"
	case Shadow:
		return "shadow"
	default:
		return fmt.Sprintf("TextureType(%d)", uint32(t))
	}
}

// Tile is one grid cell. Shadow is 0 for none, otherwise the shadow atlas
// tile id plus one.
type Tile struct {
	Type   TextureType
	ID     uint32
	Shadow uint32
}

// Position is a coordinate stored in a level: tile units for spawn points
// and scroll, level pixels for entities.
type Position = geom.Point

type GeneralInfo struct {
	// Comment is at most 19 characters; the file reserves 20 bytes.
	Comment   string
	TimeLimit uint32
	Enemies   [DiffEnemies]uint32
}

// Steam is a steam emitter. Angle is in degrees (0-355, step 5, 0 points
// down, counter clockwise) and Range is 0-6.
type Steam struct {
	Angle uint16
	Range uint8
}

type Level struct {
	Tiles      [][]Tile
	P1         Position
	P2         Position
	Scroll     Position
	Spotlights map[Position]uint8
	Steams     map[Position]Steam
	Info       GeneralInfo
	Crates     Crates
}

// NewDefault builds a walled level of the given size in tiles. Sizes below
// MinWidth x MinHeight are raised to the minimum.
func NewDefault(width, height uint32) *Level {
	width = max(width, MinWidth)
	height = max(height, MinHeight)

	l := &Level{
		Tiles:      defaultTiles(width, height),
		P1:         Position{X: 1, Y: 1},
		P2:         Position{X: 1, Y: 3},
		Spotlights: make(map[Position]uint8),
		Steams:     make(map[Position]Steam),
		Info: GeneralInfo{
			Comment:   "UTK level editor",
			TimeLimit: 60,
			Enemies:   [DiffEnemies]uint32{1, 0, 0, 0, 0, 1, 0, 0},
		},
		Crates: Crates{
			Random: RandomCrates{
				Normal:     defaultCrateSet(),
				Deathmatch: defaultCrateSet(),
			},
			Static: make(map[Position]StaticCrate),
		},
	}
	l.CreateShadows()
	return l
}

func defaultCrateSet() CrateSet {
	var s CrateSet
	s.Weapons[0] = 1
	s.Bullets[0] = 1
	s.Energy = 1
	return s
}

// defaultTiles lays out the border walls: corners and edges of the top and
// bottom rows use distinct atlas ids, side walls use id 16.
func defaultTiles(width, height uint32) [][]Tile {
	wall := func(id uint32) Tile { return Tile{Type: Walls, ID: id} }

	tiles := make([][]Tile, 0, height)
	for y := uint32(0); y < height; y++ {
		row := make([]Tile, width)
		for x := uint32(0); x < width; x++ {
			switch {
			case y == 0 && x == 0:
				row[x] = wall(0)
			case y == 0 && x == width-1:
				row[x] = wall(2)
			case y == height-1 && x == 0:
				row[x] = wall(32)
			case y == height-1 && x == width-1:
				row[x] = wall(18)
			case y == 0 || y == height-1:
				row[x] = wall(1)
			case x == 0 || x == width-1:
				row[x] = wall(16)
			default:
				row[x] = Tile{Type: Floor}
			}
		}
		tiles = append(tiles, row)
	}
	return tiles
}

// Width is the number of tile columns.
func (l *Level) Width() uint32 {
	if len(l.Tiles) == 0 {
		return 0
	}
	return uint32(len(l.Tiles[0]))
}

// Height is the number of tile rows.
func (l *Level) Height() uint32 {
	return uint32(len(l.Tiles))
}

// Tile returns the tile at column x, row y.
func (l *Level) Tile(x, y uint32) (Tile, bool) {
	if y >= l.Height() || x >= l.Width() {
		return Tile{}, false
	}
	return l.Tiles[y][x], true
}

func (l *Level) tileIndex(index uint32) (uint32, uint32, bool) {
	w := l.Width()
	if w == 0 {
		return 0, 0, false
	}
	x, y := index%w, index/w
	return x, y, y < l.Height()
}

// PutTile paints the tile at a linear index. For Floor and Walls it
// replaces the type and id and keeps the shadow. For Shadow it only sets
// the shadow overlay to id+1. Out of range indices are ignored.
func (l *Level) PutTile(index, id uint32, kind TextureType) {
	x, y, ok := l.tileIndex(index)
	if !ok {
		return
	}
	t := &l.Tiles[y][x]
	if kind == Shadow {
		t.Shadow = id + 1
		return
	}
	t.Type = kind
	t.ID = id
}

// ClearShadow removes the shadow overlay at a linear index.
func (l *Level) ClearShadow(index uint32) {
	x, y, ok := l.tileIndex(index)
	if !ok {
		return
	}
	l.Tiles[y][x].Shadow = 0
}

// CreateShadows recomputes every shadow from wall adjacency. Each non-wall
// tile looks at its right, top-right and top neighbors (outside the grid
// counts as floor); the checks form a priority chain.
func (l *Level) CreateShadows() {
	isWall := func(x, y int) bool {
		if y < 0 || y >= len(l.Tiles) || x < 0 || x >= len(l.Tiles[y]) {
			return false
		}
		return l.Tiles[y][x].Type == Walls
	}

	for y := len(l.Tiles) - 1; y >= 0; y-- {
		for x := range l.Tiles[y] {
			t := &l.Tiles[y][x]
			if t.Type == Walls {
				t.Shadow = 0
				continue
			}
			right := isWall(x+1, y)
			topRight := isWall(x+1, y-1)
			top := isWall(x, y-1)
			switch {
			case topRight || (right && top):
				t.Shadow = 1
			case top:
				t.Shadow = 3
			case right:
				t.Shadow = 2
			default:
				t.Shadow = 0
			}
		}
	}
}

// Origin is the screen offset of the level's top-left corner for the
// current scroll.
func (l *Level) Origin(renderSize uint32) (int, int) {
	return -int(l.Scroll.X * renderSize), -int(l.Scroll.Y * renderSize)
}
