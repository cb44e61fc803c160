// Package render declares the drawing surface the editor talks to. The
// editor never touches a graphics library directly; a backend implements
// Renderer and Texture, and a glyph set implements Font.
package render

import (
	"image"
	"image/color"

	"github.com/milk9111/utkedit/geom"
)

// Color is one of the fixed palette entries the editor draws with.
type Color uint8

const (
	Black Color = iota
	White
	Red
	Blue
	LightBlue
	LightGreen
	LightGrey
)

var palette = [...]color.RGBA{
	Black:      {0, 0, 0, 255},
	White:      {255, 255, 255, 255},
	Red:        {255, 0, 0, 255},
	Blue:       {0, 0, 255, 255},
	LightBlue:  {100, 100, 255, 255},
	LightGreen: {100, 255, 100, 255},
	LightGrey:  {200, 200, 200, 255},
}

// RGBA returns the opaque color value of c. Unknown values map to black.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[Black]
	}
	return palette[c]
}

// Rect is a screen rectangle. X and Y may be negative for content scrolled
// off the top or left edge.
type Rect struct {
	X, Y int
	W, H uint32
}

func NewRect(x, y int, w, h uint32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Texture is an image the backend has uploaded.
type Texture interface {
	// Size returns the texture's pixel dimensions.
	Size() (uint32, uint32)
}

// Renderer is the drawing surface for one frame.
type Renderer interface {
	// CreateTexture uploads raw RGBA pixels.
	CreateTexture(img *image.RGBA) Texture
	ClearScreen()
	// DrawRect strokes a one pixel outline.
	DrawRect(r Rect, c Color)
	FillRect(r Rect, c Color)
	DrawCircle(center geom.ScreenPoint, radius uint32, c Color)
	// RenderTexture draws t into dst. A nil src draws the whole texture.
	RenderTexture(t Texture, src *Rect, dst Rect)
	// WindowSize reports the current output size in pixels.
	WindowSize() (uint32, uint32)
}

// Font draws short strings. Coordinates are screen pixels of the top-left
// corner of the text.
type Font interface {
	DrawText(r Renderer, text string, x, y int)
	TextSize(text string) (uint32, uint32)
	LineHeight() uint32
	// Px scales a layout distance given at text size 1.
	Px(v uint32) uint32
}

// TextureRect is the destination rectangle of a texture drawn at the origin
// with the render multiplier applied.
func TextureRect(t Texture, multiplier uint32) Rect {
	w, h := t.Size()
	return Rect{W: w * multiplier, H: h * multiplier}
}

// TileSource is the source rectangle of an atlas tile.
func TileSource(t Texture, id uint32) Rect {
	w, _ := t.Size()
	p := geom.AtlasCoordinates(id, w)
	return Rect{X: int(p.X), Y: int(p.Y), W: geom.TileSize, H: geom.TileSize}
}

// HighlightTile outlines the on-screen tile with linear index id, counted in
// tiles of the current render size across the screen.
func HighlightTile(r Renderer, g geom.Graphics, id uint32, c Color) {
	perRow := g.XTilesPerScreen()
	if perRow == 0 {
		return
	}
	rs := g.RenderSize()
	x, y := id%perRow, id/perRow
	r.DrawRect(Rect{X: int(x * rs), Y: int(y * rs), W: rs, H: rs}, c)
}

// TitlePosition is where a mode's heading is drawn.
func TitlePosition(f Font) (int, int) {
	return int(f.Px(10)), int(f.Px(5))
}

// BottomTextPosition is where status text is drawn along the bottom edge.
func BottomTextPosition(f Font, resolutionY uint32) (int, int) {
	x, _ := TitlePosition(f)
	return x, int(resolutionY) - int(f.Px(13))
}
