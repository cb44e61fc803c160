package level

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Version is the .LEV format version written by MarshalBinary.
const Version uint32 = 5

// commentBytes is the fixed width of the comment block, NUL padded.
const commentBytes = 20

var (
	ErrInvalidVersion    = errors.New("level: unsupported version")
	ErrInvalidLevelSize  = errors.New("level: invalid level size")
	ErrInvalidTileType   = errors.New("level: invalid tile type")
	ErrInvalidCrateClass = errors.New("level: invalid crate class")
)

// IsContentError reports whether err means the data was readable but
// describes something this editor does not accept. Truncated input is not
// a content error; it matches io.ErrUnexpectedEOF instead.
func IsContentError(err error) bool {
	return errors.Is(err, ErrInvalidVersion) ||
		errors.Is(err, ErrInvalidLevelSize) ||
		errors.Is(err, ErrInvalidTileType) ||
		errors.Is(err, ErrInvalidCrateClass)
}

// MarshalBinary encodes the level in the current .LEV format.
func (l *Level) MarshalBinary() ([]byte, error) {
	w, h := l.Width(), l.Height()
	if w == 0 || h == 0 {
		return nil, ErrInvalidLevelSize
	}

	b := make([]byte, 0, 256+int(w*h)*12)
	put := func(v uint32) { b = binary.LittleEndian.AppendUint32(b, v) }

	put(Version)
	put(w)
	put(h)
	for _, row := range l.Tiles {
		for _, t := range row {
			put(uint32(t.Type))
			put(t.ID)
			put(t.Shadow)
		}
	}

	put(l.P1.X)
	put(l.P1.Y)
	put(l.P2.X)
	put(l.P2.Y)

	put(uint32(len(l.Spotlights)))
	for _, p := range sortedPositions(l.Spotlights) {
		put(p.X)
		put(p.Y)
		put(uint32(l.Spotlights[p]))
	}

	put(uint32(len(l.Steams)))
	for _, p := range sortedPositions(l.Steams) {
		s := l.Steams[p]
		put(p.X)
		put(p.Y)
		put(uint32(s.Angle))
		put(uint32(s.Range))
	}

	var comment [commentBytes]byte
	copy(comment[:], l.Info.Comment)
	b = append(b, comment[:]...)

	put(l.Info.TimeLimit)
	for _, n := range l.Info.Enemies {
		put(n)
	}
	for _, set := range []*CrateSet{&l.Crates.Random.Normal, &l.Crates.Random.Deathmatch} {
		for _, n := range set.Weapons {
			put(n)
		}
		for _, n := range set.Bullets {
			put(n)
		}
		put(set.Energy)
	}

	for _, variant := range []GameType{Normal, Deathmatch} {
		var ps []Position
		for _, p := range sortedPositions(l.Crates.Static) {
			if l.Crates.Static[p].Variant == variant {
				ps = append(ps, p)
			}
		}
		put(uint32(len(ps)))
		for _, p := range ps {
			c := l.Crates.Static[p]
			put(uint32(c.Class))
			put(uint32(c.Type))
			put(p.X)
			put(p.Y)
		}
	}
	return b, nil
}

// Encode writes the binary form of the level to w.
func (l *Level) Encode(w io.Writer) error {
	b, err := l.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("level: write: %w", err)
	}
	return nil
}

// Decode parses a .LEV file into a new level.
func Decode(data []byte) (*Level, error) {
	l := &Level{}
	if err := l.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return l, nil
}

// UnmarshalBinary replaces the level's contents with a decoded .LEV file of
// any version up to Version. All state is reset first, so a failed decode
// never mixes old and new data.
func (l *Level) UnmarshalBinary(data []byte) error {
	l.reset()

	d := &decoder{r: bytes.NewReader(data)}

	version := d.u32("version")
	if d.err != nil {
		return d.err
	}
	if version > Version {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	width := d.u32("width")
	if d.err == nil && width == 0 {
		return ErrInvalidLevelSize
	}
	height := d.u32("height")
	if d.err != nil {
		return d.err
	}
	if height == 0 {
		return ErrInvalidLevelSize
	}
	if uint64(width)*uint64(height)*12 > uint64(d.r.Len()) {
		return fmt.Errorf("level: read tiles: %w", io.ErrUnexpectedEOF)
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		row := make([]Tile, width)
		for x := range row {
			typ := TextureType(d.u32("tile type"))
			row[x] = Tile{Type: typ, ID: d.u32("tile id"), Shadow: d.u32("tile shadow")}
			if d.err != nil {
				return d.err
			}
			if typ != Floor && typ != Walls {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidTileType, uint32(typ), x, y)
			}
		}
		tiles[y] = row
	}
	l.Tiles = tiles

	l.P1 = Position{X: d.u32("p1 x"), Y: d.u32("p1 y")}
	l.P2 = Position{X: d.u32("p2 x"), Y: d.u32("p2 y")}

	spotlights := d.u32("spotlight count")
	for i := uint32(0); i < spotlights && d.err == nil; i++ {
		p := Position{X: d.u32("spotlight x"), Y: d.u32("spotlight y")}
		intensity := d.u32("spotlight intensity")
		if d.err == nil {
			l.Spotlights[p] = uint8(intensity)
		}
	}

	steams := d.u32("steam count")
	for i := uint32(0); i < steams && d.err == nil; i++ {
		p := Position{X: d.u32("steam x"), Y: d.u32("steam y")}
		s := Steam{Angle: uint16(d.u32("steam angle")), Range: uint8(d.u32("steam range"))}
		if d.err == nil {
			l.Steams[p] = s
		}
	}

	l.Info.Comment = d.comment()
	l.Info.TimeLimit = d.u32("time limit")

	enemies := DiffEnemies
	if version < 4 {
		enemies--
	}
	for i := 0; i < enemies; i++ {
		l.Info.Enemies[i] = d.u32("enemy count")
	}

	weapons, bullets := DiffWeapons, DiffBullets
	switch version {
	case 1:
		weapons, bullets = DiffWeapons-2, DiffBullets-2
	case 2:
		weapons, bullets = DiffWeapons-1, DiffBullets-1
	}
	for _, set := range []*CrateSet{&l.Crates.Random.Normal, &l.Crates.Random.Deathmatch} {
		for i := 0; i < weapons; i++ {
			set.Weapons[i] = d.u32("weapon count")
		}
		for i := 0; i < bullets; i++ {
			set.Bullets[i] = d.u32("bullet count")
		}
		set.Energy = d.u32("energy count")
	}
	if d.err != nil {
		return d.err
	}

	if version >= 5 {
		for _, variant := range []GameType{Normal, Deathmatch} {
			if err := d.staticCrates(variant, l.Crates.Static); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Level) reset() {
	l.Tiles = nil
	l.P1, l.P2 = Position{}, Position{}
	l.Scroll = Position{}
	l.Spotlights = make(map[Position]uint8)
	l.Steams = make(map[Position]Steam)
	l.Info = GeneralInfo{}
	l.Crates = Crates{Static: make(map[Position]StaticCrate)}
}

type decoder struct {
	r   *bytes.Reader
	buf [4]byte
	err error
}

func (d *decoder) u32(field string) uint32 {
	if d.err != nil {
		return 0
	}
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.err = fmt.Errorf("level: read %s: %w", field, err)
		return 0
	}
	return binary.LittleEndian.Uint32(d.buf[:])
}

func (d *decoder) comment() string {
	if d.err != nil {
		return ""
	}
	var raw [commentBytes]byte
	if _, err := io.ReadFull(d.r, raw[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.err = fmt.Errorf("level: read comment: %w", err)
		return ""
	}
	out := make([]byte, 0, commentBytes)
	for _, c := range raw {
		if c != 0 {
			out = append(out, c)
		}
	}
	return string(out)
}

func (d *decoder) staticCrates(variant GameType, into map[Position]StaticCrate) error {
	n := d.u32("crate count")
	for i := uint32(0); i < n && d.err == nil; i++ {
		class := CrateClass(d.u32("crate class"))
		typ := d.u32("crate type")
		p := Position{X: d.u32("crate x"), Y: d.u32("crate y")}
		if d.err != nil {
			break
		}
		if class > Energy {
			return fmt.Errorf("%w: %d", ErrInvalidCrateClass, uint32(class))
		}
		into[p] = StaticCrate{Variant: variant, Class: class, Type: uint8(typ)}
	}
	return d.err
}

func sortedPositions[V any](m map[Position]V) []Position {
	return slices.SortedFunc(maps.Keys(m), func(a, b Position) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
