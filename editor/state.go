package editor

import "github.com/milk9111/utkedit/render"

// RunState tells the shell what to do after an event.
type RunState struct {
	Quit        bool
	NeedsRender bool
}

// State owns one controller per mode and routes events to the active one.
type State struct {
	mode      Mode
	textInput TextInput

	editor      *Editor
	tileSelect  TileSelect
	info        GeneralInfo
	randomItems RandomItems
	loadLevel   *LoadLevel
	help        Help
}

func NewState(writer LevelWriter, lister LevelLister, ti TextInput) *State {
	return &State{
		mode:      ModeEditor,
		textInput: ti,
		editor:    NewEditor(writer),
		loadLevel: NewLoadLevel(lister),
	}
}

func (s *State) Mode() Mode { return s.mode }

// Editor exposes the editing controller.
func (s *State) Editor() *Editor { return s.editor }

// HandleEvent runs ev through the active mode and performs any mode change
// it requests.
func (s *State) HandleEvent(ctx *Context, ev Event) RunState {
	if ev.Kind == EventWindowResized {
		ctx.Resize(ev.X, ev.Y)
	}

	var res Result
	switch s.mode {
	case ModeTileSelect:
		res = s.tileSelect.HandleEvent(ctx, ev)
	case ModeHelp:
		res = s.help.HandleEvent(ev)
	case ModeGeneralLevelInfo:
		res = s.info.HandleEvent(ctx, s.textInput, ev)
	case ModeRandomItemsNormal, ModeRandomItemsDeathmatch:
		res = s.randomItems.HandleEvent(ctx, s.textInput, gameTypeOf(s.mode), ev)
	case ModeLoadLevel:
		res = s.loadLevel.HandleEvent(ctx, ev)
	default:
		res = s.editor.HandleEvent(ctx, s.textInput, ev)
	}

	switch res.Kind {
	case ResultQuit:
		return RunState{Quit: true}
	case ResultChange:
		s.switchMode(res.Mode)
	}
	return RunState{NeedsRender: res.Kind != ResultIgnored || ev.Kind == EventWindowResized}
}

func (s *State) switchMode(next Mode) {
	if next == s.mode {
		return
	}
	if s.mode == ModeLoadLevel {
		s.loadLevel.Leave()
	}
	s.mode = next
	switch next {
	case ModeGeneralLevelInfo:
		s.info.Enter(s.textInput)
	case ModeRandomItemsNormal, ModeRandomItemsDeathmatch:
		s.randomItems.Enter()
	case ModeLoadLevel:
		s.loadLevel.Enter()
	}
}

// Render draws the active mode.
func (s *State) Render(r render.Renderer, ctx *Context) {
	switch s.mode {
	case ModeTileSelect:
		s.tileSelect.Render(r, ctx)
	case ModeHelp:
		s.help.Render(r, ctx)
	case ModeGeneralLevelInfo:
		s.info.Render(r, ctx)
	case ModeRandomItemsNormal, ModeRandomItemsDeathmatch:
		s.randomItems.Render(r, ctx, gameTypeOf(s.mode))
	case ModeLoadLevel:
		s.loadLevel.Render(r, ctx)
	default:
		s.editor.Render(r, ctx)
	}
}
