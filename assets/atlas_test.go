package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/level"
)

func TestPlaceholder(t *testing.T) {
	cases := []struct {
		kind  level.TextureType
		w, h  int
		tiles uint32
	}{
		{level.Floor, 320, 200, 160},
		{level.Walls, 320, 200, 160},
		{level.Shadow, 160, 20, 8},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			img := Placeholder(c.kind)
			b := img.Bounds()
			if b.Dx() != c.w || b.Dy() != c.h {
				t.Fatalf("expected %dx%d, got %v", c.w, c.h, b)
			}
			if got := geom.TilesInAtlas(uint32(b.Dx()), uint32(b.Dy())); got != c.tiles {
				t.Fatalf("expected %d tiles, got %d", c.tiles, got)
			}
		})
	}
}

func TestPlaceholderShadows(t *testing.T) {
	img := Placeholder(level.Shadow)
	cases := []struct {
		name   string
		x, y   int
		shaded bool
	}{
		{"corner", 5, 15, true},
		{"right edge", 35, 5, true},
		{"right edge interior", 22, 5, false},
		{"top edge", 45, 3, true},
		{"top edge interior", 45, 15, false},
		{"unused", 70, 10, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := img.RGBAAt(c.x, c.y).A
			if (a != 0) != c.shaded {
				t.Fatalf("alpha %d at (%d,%d)", a, c.x, c.y)
			}
		})
	}
}

func TestLoadAtlas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "FLOOR1.PNG")

	src := image.NewPaletted(image.Rect(0, 0, 40, 20), color.Palette{color.Black, color.White})
	src.SetColorIndex(21, 3, 1)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img := LoadAtlas(path, level.Floor)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("expected the file's 40x20 atlas, got %v", b)
	}
	if got := img.RGBAAt(21, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("pixel not preserved: %v", got)
	}

	if b := LoadAtlas(filepath.Join(dir, "missing.png"), level.Walls).Bounds(); b.Dx() != 320 {
		t.Fatalf("missing file should fall back to the generated atlas, got %v", b)
	}
	if b := LoadAtlas("", level.Shadow).Bounds(); b.Dx() != 160 {
		t.Fatalf("empty path should use the generated atlas, got %v", b)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	if _, err := DecodeImage([]byte("not an image")); err == nil {
		t.Fatalf("expected a decode error")
	}
}
