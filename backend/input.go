package backend

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/utkedit/editor"
)

type keyBinding struct {
	key        ebiten.Key
	editor     editor.Key
	repeatable bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyEscape, editor.KeyEscape, false},
	{ebiten.KeyBackspace, editor.KeyBackspace, true},
	{ebiten.KeyEnter, editor.KeyEnter, false},
	{ebiten.KeyNumpadEnter, editor.KeyKeypadEnter, false},
	{ebiten.KeySpace, editor.KeySpace, false},
	{ebiten.KeyPageUp, editor.KeyPageUp, true},
	{ebiten.KeyPageDown, editor.KeyPageDown, true},
	{ebiten.KeyArrowUp, editor.KeyUp, true},
	{ebiten.KeyArrowDown, editor.KeyDown, true},
	{ebiten.KeyArrowLeft, editor.KeyLeft, true},
	{ebiten.KeyArrowRight, editor.KeyRight, true},
	{ebiten.KeyEqual, editor.KeyPlus, false},
	{ebiten.KeyMinus, editor.KeyMinus, false},
	{ebiten.KeyNumpadAdd, editor.KeyKeypadPlus, false},
	{ebiten.KeyNumpadSubtract, editor.KeyKeypadMinus, false},
	{ebiten.KeyA, editor.KeyA, false},
	{ebiten.KeyC, editor.KeyC, false},
	{ebiten.KeyQ, editor.KeyQ, false},
	{ebiten.KeyS, editor.KeyS, false},
	{ebiten.KeyW, editor.KeyW, false},
	{ebiten.KeyX, editor.KeyX, false},
	{ebiten.KeyY, editor.KeyY, false},
	{ebiten.KeyZ, editor.KeyZ, false},
	{ebiten.KeyDigit1, editor.Key1, false},
	{ebiten.KeyDigit2, editor.Key2, false},
	{ebiten.KeyF1, editor.KeyF1, false},
	{ebiten.KeyF2, editor.KeyF2, false},
	{ebiten.KeyF3, editor.KeyF3, false},
	{ebiten.KeyF4, editor.KeyF4, false},
	{ebiten.KeyF6, editor.KeyF6, false},
	{ebiten.KeyF7, editor.KeyF7, false},
	{ebiten.KeyF8, editor.KeyF8, false},
	{ebiten.KeyF9, editor.KeyF9, false},
}

var mouseBindings = []struct {
	button ebiten.MouseButton
	editor editor.MouseButton
}{
	{ebiten.MouseButtonLeft, editor.ButtonLeft},
	{ebiten.MouseButtonRight, editor.ButtonRight},
}

// Input polls ebiten once per tick and produces editor events. It also
// implements editor.TextInput: typed characters and clipboard pastes are
// only reported while text input is started.
type Input struct {
	tracker   tracker
	textOn    bool
	clipboard bool
	size      [2]int
	f         frame
}

func NewInput() *Input {
	in := &Input{}
	if err := clipboard.Init(); err != nil {
		log.Printf("backend: clipboard unavailable: %v", err)
	} else {
		in.clipboard = true
	}
	return in
}

func (in *Input) Start() { in.textOn = true }
func (in *Input) Stop()  { in.textOn = false }

// SetWindowSize records the outside size ebiten passes to Layout. A change
// is reported as a resize on the next Poll.
func (in *Input) SetWindowSize(w, h int) { in.size = [2]int{w, h} }

// Poll samples this tick's input and appends the resulting events to out.
func (in *Input) Poll(out []editor.Event) []editor.Event {
	f := &in.f
	f.closing = ebiten.IsWindowBeingClosed()
	f.size = in.size
	f.cursor[0], f.cursor[1] = ebiten.CursorPosition()

	f.pressed, f.released = f.pressed[:0], f.released[:0]
	for _, m := range mouseBindings {
		if inpututil.IsMouseButtonJustPressed(m.button) {
			f.pressed = append(f.pressed, m.editor)
		}
		if inpututil.IsMouseButtonJustReleased(m.button) {
			f.released = append(f.released, m.editor)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	f.keys = f.keys[:0]
	for _, b := range keyBindings {
		if repeats(inpututil.KeyPressDuration(b.key), b.repeatable) {
			f.keys = append(f.keys, b.editor)
		}
	}

	f.text, f.paste = f.text[:0], ""
	if in.textOn {
		if ctrl {
			if inpututil.IsKeyJustPressed(ebiten.KeyV) {
				f.paste = in.readClipboard()
			}
		} else {
			f.text = ebiten.AppendInputChars(f.text)
		}
	}
	return in.tracker.events(*f, out)
}

// readClipboard returns the first line of the clipboard text.
func (in *Input) readClipboard() string {
	if !in.clipboard {
		return ""
	}
	text := string(clipboard.Read(clipboard.FmtText))
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return text
}
