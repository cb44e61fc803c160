package editor

// Mode is the top-level screen the editor is showing.
type Mode uint8

const (
	ModeEditor Mode = iota
	ModeTileSelect
	ModeHelp
	ModeGeneralLevelInfo
	ModeRandomItemsNormal
	ModeRandomItemsDeathmatch
	ModeLoadLevel
)

func (m Mode) String() string {
	switch m {
	case ModeEditor:
		return "editor"
	case ModeTileSelect:
		return "tile select"
	case ModeHelp:
		return "help"
	case ModeGeneralLevelInfo:
		return "general level info"
	case ModeRandomItemsNormal:
		return "random items (normal)"
	case ModeRandomItemsDeathmatch:
		return "random items (deathmatch)"
	case ModeLoadLevel:
		return "load level"
	default:
		return "unknown"
	}
}

type ResultKind uint8

const (
	// ResultKeep means the event was handled and the mode stays.
	ResultKeep ResultKind = iota
	// ResultIgnored means the event had no effect; nothing needs redrawing.
	ResultIgnored
	ResultChange
	ResultQuit
)

// Result is what a controller returns for one event.
type Result struct {
	Kind ResultKind
	// Mode is the next mode when Kind is ResultChange.
	Mode Mode
}

func keep() Result         { return Result{Kind: ResultKeep} }
func ignored() Result      { return Result{Kind: ResultIgnored} }
func change(m Mode) Result { return Result{Kind: ResultChange, Mode: m} }
func quit() Result         { return Result{Kind: ResultQuit} }

// TextInput switches the platform's text composition on and off. TextInput
// events only arrive while it is started.
type TextInput interface {
	Start()
	Stop()
}

// LevelLister enumerates stored levels for the load screen.
type LevelLister interface {
	// Refresh rescans the level source.
	Refresh() error
	// Reset is called when the load screen is left.
	Reset()
	Len() int
	Name(i int) string
	Load(i int) ([]byte, error)
}

// LevelWriter persists encoded levels.
type LevelWriter interface {
	Write(name string, data []byte) error
}
