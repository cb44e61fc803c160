// Package assets loads the tile atlases the editor paints with.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"log"
	"os"

	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/level"
)

// Placeholder atlas sizes, in tiles.
const (
	placeholderCols  = 16
	placeholderRows  = 10
	shadowAtlasTiles = 8
)

// LoadImage decodes the image file at path into RGBA.
func LoadImage(path string) (*image.RGBA, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return DecodeImage(b)
}

// DecodeImage decodes an encoded image into RGBA.
func DecodeImage(b []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba, nil
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba, nil
}

// LoadAtlas loads the atlas for kind from path. When path is empty or the
// file cannot be used, a generated atlas is returned instead.
func LoadAtlas(path string, kind level.TextureType) *image.RGBA {
	if path != "" {
		img, err := LoadImage(path)
		if err == nil {
			return img
		}
		log.Printf("assets: %v, using generated %s atlas", err, kind)
	}
	return Placeholder(kind)
}

// Placeholder draws a stand-in atlas for kind. Floor and wall atlases get
// a distinct shade per tile; the shadow atlas holds the three automatic
// shadow shapes followed by empty tiles.
func Placeholder(kind level.TextureType) *image.RGBA {
	ts := int(geom.TileSize)
	if kind == level.Shadow {
		img := image.NewRGBA(image.Rect(0, 0, shadowAtlasTiles*ts, ts))
		shade := image.NewUniform(color.RGBA{0, 0, 0, 96})
		// corner, right edge, top edge
		draw.Draw(img, image.Rect(0, 0, ts, ts), shade, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(ts+ts/2, 0, 2*ts, ts), shade, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(2*ts, 0, 3*ts, ts/2), shade, image.Point{}, draw.Src)
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, placeholderCols*ts, placeholderRows*ts))
	for id := 0; id < placeholderCols*placeholderRows; id++ {
		x, y := id%placeholderCols*ts, id/placeholderCols*ts
		base := tileColor(kind, id)
		draw.Draw(img, image.Rect(x, y, x+ts, y+ts), image.NewUniform(base), image.Point{}, draw.Src)
		if kind == level.Walls {
			edge := image.NewUniform(color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255})
			draw.Draw(img, image.Rect(x, y+ts-2, x+ts, y+ts), edge, image.Point{}, draw.Src)
			draw.Draw(img, image.Rect(x+ts-2, y, x+ts, y+ts), edge, image.Point{}, draw.Src)
		}
	}
	return img
}

func tileColor(kind level.TextureType, id int) color.RGBA {
	v := uint8(40 + id%8*8)
	w := uint8(id / 8 * 6)
	if kind == level.Walls {
		return color.RGBA{v + 60, v + 40 + w/2, v + 20, 255}
	}
	return color.RGBA{v, v + w/3, v + w/2, 255}
}
