package editor

import (
	"errors"
	"image"

	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/render"
)

type fakeTexture struct{ w, h uint32 }

func (t fakeTexture) Size() (uint32, uint32) { return t.w, t.h }

type fakeRenderer struct {
	clears   int
	rects    []render.Rect
	circles  int
	textures int
}

func (r *fakeRenderer) CreateTexture(img *image.RGBA) render.Texture {
	b := img.Bounds()
	return fakeTexture{uint32(b.Dx()), uint32(b.Dy())}
}
func (r *fakeRenderer) ClearScreen() { r.clears++ }
func (r *fakeRenderer) DrawRect(rect render.Rect, _ render.Color) {
	r.rects = append(r.rects, rect)
}
func (r *fakeRenderer) FillRect(render.Rect, render.Color)                {}
func (r *fakeRenderer) DrawCircle(geom.ScreenPoint, uint32, render.Color) { r.circles++ }
func (r *fakeRenderer) RenderTexture(render.Texture, *render.Rect, render.Rect) {
	r.textures++
}
func (r *fakeRenderer) WindowSize() (uint32, uint32) { return 640, 480 }

type fakeFont struct {
	texts []string
}

func (f *fakeFont) DrawText(_ render.Renderer, text string, _, _ int) {
	f.texts = append(f.texts, text)
}
func (f *fakeFont) TextSize(text string) (uint32, uint32) { return uint32(len(text)) * 8, 10 }
func (f *fakeFont) LineHeight() uint32                    { return 10 }
func (f *fakeFont) Px(v uint32) uint32                    { return v }

func (f *fakeFont) drew(text string) bool {
	for _, t := range f.texts {
		if t == text {
			return true
		}
	}
	return false
}

type fakeTextInput struct {
	active bool
	starts int
	stops  int
}

func (t *fakeTextInput) Start() { t.active = true; t.starts++ }
func (t *fakeTextInput) Stop()  { t.active = false; t.stops++ }

type fakeWriter struct {
	name string
	data []byte
	err  error
}

func (w *fakeWriter) Write(name string, data []byte) error {
	if w.err != nil {
		return w.err
	}
	w.name = name
	w.data = data
	return nil
}

type fakeLevel struct {
	name string
	data []byte
	err  error
}

type fakeLister struct {
	levels    []fakeLevel
	refreshes int
	resets    int
}

func (l *fakeLister) Refresh() error { l.refreshes++; return nil }
func (l *fakeLister) Reset()         { l.resets++ }
func (l *fakeLister) Len() int       { return len(l.levels) }
func (l *fakeLister) Name(i int) string {
	return l.levels[i].name
}
func (l *fakeLister) Load(i int) ([]byte, error) {
	return l.levels[i].data, l.levels[i].err
}

var errDisk = errors.New("disk full")

// newTestContext returns a 640x480 context at 1x zoom, so one tile is 20px
// and the screen shows 32x24 tiles.
func newTestContext(w, h uint32) (*Context, *fakeFont) {
	font := &fakeFont{}
	textures := Textures{
		Floor:   fakeTexture{320, 200},
		Walls:   fakeTexture{320, 200},
		Shadows: fakeTexture{100, 20},
	}
	ctx := NewContext(geom.NewGraphics(640, 480, 1), font, textures, level.NewDefault(w, h))
	return ctx, font
}

func keys(e *Editor, ctx *Context, ti TextInput, ks ...Key) Result {
	var res Result
	for _, k := range ks {
		res = e.HandleEvent(ctx, ti, KeyDownEvent(k))
	}
	return res
}

func click(e *Editor, ctx *Context, ti TextInput, x, y uint32) {
	e.HandleEvent(ctx, ti, MouseMotionEvent(x, y))
	e.HandleEvent(ctx, ti, MouseDownEvent(ButtonLeft))
	e.HandleEvent(ctx, ti, MouseUpEvent(ButtonLeft))
}
