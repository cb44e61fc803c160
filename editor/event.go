package editor

import "fmt"

type EventKind uint8

const (
	EventQuit EventKind = iota
	EventWindowResized
	EventKeyDown
	EventMouseMotion
	EventMouseDown
	EventMouseUp
	EventTextInput
	// EventLevelsChanged is raised by the shell when the level directory
	// changed on disk.
	EventLevelsChanged
)

// Key identifies the keys the editor reacts to. Backends map their own key
// codes onto these and drop everything else.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyBackspace
	KeyEnter
	KeyKeypadEnter
	KeySpace
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPlus
	KeyMinus
	KeyKeypadPlus
	KeyKeypadMinus
	KeyA
	KeyC
	KeyQ
	KeyS
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF6
	KeyF7
	KeyF8
	KeyF9
)

var keyNames = [...]string{
	KeyUnknown:     "unknown",
	KeyEscape:      "escape",
	KeyBackspace:   "backspace",
	KeyEnter:       "enter",
	KeyKeypadEnter: "keypad enter",
	KeySpace:       "space",
	KeyPageUp:      "page up",
	KeyPageDown:    "page down",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyPlus:        "plus",
	KeyMinus:       "minus",
	KeyKeypadPlus:  "keypad plus",
	KeyKeypadMinus: "keypad minus",
	KeyA:           "a",
	KeyC:           "c",
	KeyQ:           "q",
	KeyS:           "s",
	KeyW:           "w",
	KeyX:           "x",
	KeyY:           "y",
	KeyZ:           "z",
	Key1:           "1",
	Key2:           "2",
	KeyF1:          "f1",
	KeyF2:          "f2",
	KeyF3:          "f3",
	KeyF4:          "f4",
	KeyF6:          "f6",
	KeyF7:          "f7",
	KeyF8:          "f8",
	KeyF9:          "f9",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// IsEnter reports whether k confirms input.
func (k Key) IsEnter() bool {
	return k == KeyEnter || k == KeyKeypadEnter
}

type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
)

// Event is one input event. Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Key    Key
	Button MouseButton
	// X and Y hold the cursor position for motion events and the new
	// window size for resize events.
	X, Y uint32
	Text string
}

func QuitEvent() Event { return Event{Kind: EventQuit} }

func WindowResizedEvent(w, h uint32) Event {
	return Event{Kind: EventWindowResized, X: w, Y: h}
}

func KeyDownEvent(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

func MouseMotionEvent(x, y uint32) Event {
	return Event{Kind: EventMouseMotion, X: x, Y: y}
}

func MouseDownEvent(b MouseButton) Event { return Event{Kind: EventMouseDown, Button: b} }

func MouseUpEvent(b MouseButton) Event { return Event{Kind: EventMouseUp, Button: b} }

func TextInputEvent(text string) Event { return Event{Kind: EventTextInput, Text: text} }

func LevelsChangedEvent() Event { return Event{Kind: EventLevelsChanged} }
