package backend

import "github.com/milk9111/utkedit/editor"

// Key repeat timing in ticks, at 60 ticks per second.
const (
	repeatDelay    = 24
	repeatInterval = 3
)

// frame is the raw input sampled in one tick.
type frame struct {
	closing bool
	size    [2]int
	cursor  [2]int
	// pressed and released hold mouse button edges.
	pressed  []editor.MouseButton
	released []editor.MouseButton
	keys     []editor.Key
	text     []rune
	paste    string
}

// tracker remembers what the previous frame reported so unchanged state
// produces no events.
type tracker struct {
	size   [2]int
	cursor [2]int
	seen   bool
}

// events turns a frame into editor events: close and resize first, then
// the mouse, then keys, then text.
func (t *tracker) events(f frame, out []editor.Event) []editor.Event {
	if f.closing {
		out = append(out, editor.QuitEvent())
	}
	if t.seen && f.size != t.size && f.size[0] > 0 && f.size[1] > 0 {
		out = append(out, editor.WindowResizedEvent(uint32(f.size[0]), uint32(f.size[1])))
	}
	if (!t.seen || f.cursor != t.cursor) && f.cursor[0] >= 0 && f.cursor[1] >= 0 {
		out = append(out, editor.MouseMotionEvent(uint32(f.cursor[0]), uint32(f.cursor[1])))
	}
	t.size, t.cursor, t.seen = f.size, f.cursor, true

	for _, b := range f.pressed {
		out = append(out, editor.MouseDownEvent(b))
	}
	for _, b := range f.released {
		out = append(out, editor.MouseUpEvent(b))
	}
	for _, k := range f.keys {
		out = append(out, editor.KeyDownEvent(k))
	}
	for _, c := range f.text {
		out = append(out, editor.TextInputEvent(string(c)))
	}
	if f.paste != "" {
		out = append(out, editor.TextInputEvent(f.paste))
	}
	return out
}

// repeats reports whether a key held for d ticks fires this tick.
func repeats(d int, repeatable bool) bool {
	if d == 1 {
		return true
	}
	if !repeatable || d < repeatDelay {
		return false
	}
	return (d-repeatDelay)%repeatInterval == 0
}
