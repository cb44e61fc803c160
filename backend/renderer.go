// Package backend implements the editor's collaborators on ebiten: the
// renderer and its textures, input polling and text input.
package backend

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/render"
)

// Texture is an uploaded ebiten image.
type Texture struct {
	img  *ebiten.Image
	w, h uint32
}

func (t *Texture) Size() (uint32, uint32) { return t.w, t.h }

// Renderer draws onto the screen image of the current frame.
type Renderer struct {
	screen        *ebiten.Image
	width, height uint32
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: uint32(max(width, 0)), height: uint32(max(height, 0))}
}

// SetTarget sets the image the following draw calls go to.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
	b := screen.Bounds()
	r.width, r.height = uint32(b.Dx()), uint32(b.Dy())
}

// SetSize records the window size before a target is available.
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = uint32(max(width, 0)), uint32(max(height, 0))
}

func (r *Renderer) CreateTexture(img *image.RGBA) render.Texture {
	b := img.Bounds()
	return &Texture{
		img: ebiten.NewImageFromImage(img),
		w:   uint32(b.Dx()),
		h:   uint32(b.Dy()),
	}
}

func (r *Renderer) ClearScreen() {
	if r.screen != nil {
		r.screen.Fill(render.Black.RGBA())
	}
}

func (r *Renderer) DrawRect(rect render.Rect, c render.Color) {
	if r.screen == nil || rect.W == 0 || rect.H == 0 {
		return
	}
	// strokes are centered on the path, so inset by half a pixel to stay
	// inside the rectangle
	vector.StrokeRect(r.screen,
		float32(rect.X)+0.5, float32(rect.Y)+0.5,
		float32(rect.W)-1, float32(rect.H)-1,
		1, c.RGBA(), false)
}

func (r *Renderer) FillRect(rect render.Rect, c render.Color) {
	if r.screen == nil {
		return
	}
	vector.FillRect(r.screen,
		float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
		c.RGBA(), false)
}

func (r *Renderer) DrawCircle(center geom.ScreenPoint, radius uint32, c render.Color) {
	if r.screen == nil {
		return
	}
	vector.StrokeCircle(r.screen,
		float32(center.X), float32(center.Y), float32(radius),
		1, c.RGBA(), true)
}

// RenderTexture copies src of t, or all of it when src is nil, scaled into
// dst.
func (r *Renderer) RenderTexture(t render.Texture, src *render.Rect, dst render.Rect) {
	tex, ok := t.(*Texture)
	if !ok || r.screen == nil || dst.W == 0 || dst.H == 0 {
		return
	}
	img := tex.img
	sw, sh := tex.w, tex.h
	if src != nil {
		img = tex.img.SubImage(image.Rect(src.X, src.Y, src.X+int(src.W), src.Y+int(src.H))).(*ebiten.Image)
		sw, sh = src.W, src.H
	}
	if sw == 0 || sh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(sw), float64(dst.H)/float64(sh))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.Filter = ebiten.FilterNearest
	r.screen.DrawImage(img, op)
}

func (r *Renderer) WindowSize() (uint32, uint32) { return r.width, r.height }
