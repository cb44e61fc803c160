// Package glyphs turns a bitmap font face into one texture per printable
// ASCII character and draws text with them through a render.Renderer.
package glyphs

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/milk9111/utkedit/render"
)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
	numGlyphs  = lastGlyph - firstGlyph + 1

	// fallback is drawn for characters outside the printable range.
	fallback = '?'
)

// Font draws fixed-width text. Every length it reports is already scaled
// by the text multiplier.
type Font struct {
	textures   [numGlyphs]render.Texture
	advance    uint32
	height     uint32
	multiplier uint32
}

// New rasterizes face and uploads every glyph through r. A zero multiplier
// is treated as 1.
func New(r render.Renderer, face font.Face, multiplier uint32) *Font {
	if multiplier == 0 {
		multiplier = 1
	}
	m := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = m.Height
	}

	f := &Font{
		advance:    uint32(adv.Ceil()),
		height:     uint32(m.Height.Ceil()),
		multiplier: multiplier,
	}
	for c := rune(firstGlyph); c <= lastGlyph; c++ {
		f.textures[c-firstGlyph] = r.CreateTexture(Rasterize(face, c))
	}
	return f
}

// Default builds a Font from the 7x13 basic face.
func Default(r render.Renderer, multiplier uint32) *Font {
	return New(r, basicfont.Face7x13, multiplier)
}

// Rasterize draws c in white with a one pixel black drop shadow. The image
// is one pixel wider and taller than the glyph cell to fit the shadow.
func Rasterize(face font.Face, c rune) *image.RGBA {
	m := face.Metrics()
	adv, ok := face.GlyphAdvance(c)
	if !ok {
		adv, _ = face.GlyphAdvance(fallback)
	}
	w, h := adv.Ceil(), m.Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, w+1, h+1))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(1), Y: m.Ascent + fixed.I(1)},
	}
	d.DrawString(string(c))

	d.Src = image.White
	d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent}
	d.DrawString(string(c))
	return img
}

func (f *Font) glyph(c byte) render.Texture {
	if c < firstGlyph || c > lastGlyph {
		c = fallback
	}
	return f.textures[c-firstGlyph]
}

func (f *Font) DrawText(r render.Renderer, text string, x, y int) {
	step := int(f.Px(f.advance))
	for i := 0; i < len(text); i++ {
		t := f.glyph(text[i])
		w, h := t.Size()
		r.RenderTexture(t, nil, render.NewRect(x, y, f.Px(w), f.Px(h)))
		x += step
	}
}

func (f *Font) TextSize(text string) (uint32, uint32) {
	return f.Px(uint32(len(text)) * f.advance), f.LineHeight()
}

func (f *Font) LineHeight() uint32 { return f.Px(f.height) }

// Px scales a layout distance by the text multiplier.
func (f *Font) Px(v uint32) uint32 { return v * f.multiplier }
