package editor

import (
	"testing"

	"github.com/milk9111/utkedit/level"
)

func newTestState(lister *fakeLister) (*State, *fakeTextInput, *fakeWriter) {
	ti := &fakeTextInput{}
	w := &fakeWriter{}
	if lister == nil {
		lister = &fakeLister{}
	}
	return NewState(w, lister, ti), ti, w
}

func send(s *State, ctx *Context, evs ...Event) RunState {
	var rs RunState
	for _, ev := range evs {
		rs = s.HandleEvent(ctx, ev)
	}
	return rs
}

func encoded(t *testing.T, l *level.Level) []byte {
	t.Helper()
	data, err := l.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestStateQuit(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	s, _, _ := newTestState(nil)

	if rs := send(s, ctx, KeyDownEvent(KeyEscape)); rs.Quit || !rs.NeedsRender {
		t.Fatalf("escape should open the quit prompt, got %+v", rs)
	}
	if rs := send(s, ctx, KeyDownEvent(KeyY)); !rs.Quit {
		t.Fatalf("expected quit, got %+v", rs)
	}
}

func TestStateIgnoredEventsSkipRender(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	s, _, _ := newTestState(nil)

	if rs := send(s, ctx, KeyDownEvent(KeyBackspace)); rs.NeedsRender {
		t.Fatalf("ignored key should not request a render")
	}
	if rs := send(s, ctx, KeyDownEvent(KeyKeypadPlus)); rs.NeedsRender {
		t.Fatalf("zoom without scaling should not request a render")
	}
}

func TestStateResize(t *testing.T) {
	cases := []struct {
		name string
		mode Key
	}{
		{"editor", KeyUnknown},
		{"tile select", KeySpace},
		{"help", KeyF1},
		{"info", KeyF7},
		{"random items", KeyF8},
		{"load level", KeyF3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, _ := newTestContext(32, 22)
			s, _, _ := newTestState(nil)
			if c.mode != KeyUnknown {
				send(s, ctx, KeyDownEvent(c.mode))
			}
			rs := send(s, ctx, WindowResizedEvent(800, 600))
			if !rs.NeedsRender {
				t.Fatalf("resize must request a render")
			}
			if ctx.Graphics.ResolutionX != 800 || ctx.Graphics.ResolutionY != 600 {
				t.Fatalf("resolution not updated: %+v", ctx.Graphics)
			}
			if s.Mode() != ModeEditor {
				t.Fatalf("resize should return to the editor, got %v", s.Mode())
			}
		})
	}
}

func TestStateResizeClampsScroll(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	s, _, _ := newTestState(nil)

	send(s, ctx, WindowResizedEvent(320, 240))
	for i := 0; i < 40; i++ {
		send(s, ctx, KeyDownEvent(KeyRight), KeyDownEvent(KeyDown))
	}
	if got := ctx.Level.Scroll; got != (level.Position{X: 16, Y: 10}) {
		t.Fatalf("expected scroll at the far corner, got %+v", got)
	}

	cases := []struct {
		w, h uint32
		want level.Position
	}{
		{480, 360, level.Position{X: 8, Y: 4}},
		{400, 300, level.Position{X: 8, Y: 4}},
		{640, 480, level.Position{}},
		{320, 240, level.Position{}},
	}
	for _, c := range cases {
		send(s, ctx, WindowResizedEvent(c.w, c.h))
		if got := ctx.Level.Scroll; got != c.want {
			t.Fatalf("after resize to %dx%d: scroll %+v, want %+v", c.w, c.h, got, c.want)
		}
	}
}

func TestStateHelp(t *testing.T) {
	ctx, font := newTestContext(32, 22)
	s, _, _ := newTestState(nil)

	send(s, ctx, KeyDownEvent(KeyF1))
	if s.Mode() != ModeHelp {
		t.Fatalf("expected help, got %v", s.Mode())
	}
	s.Render(&fakeRenderer{}, ctx)
	if !font.drew("F1   - this help") || font.drew("+/- adjust rendering size") {
		t.Fatalf("unexpected help text %v", font.texts)
	}

	ctx.Graphics.SupportsScaling = true
	font.texts = nil
	s.Render(&fakeRenderer{}, ctx)
	if !font.drew("+/- adjust rendering size") {
		t.Fatalf("expected window help with scaling")
	}

	if rs := send(s, ctx, MouseMotionEvent(5, 5)); rs.NeedsRender || s.Mode() != ModeHelp {
		t.Fatalf("mouse motion should not leave help")
	}
	send(s, ctx, KeyDownEvent(KeyA))
	if s.Mode() != ModeEditor {
		t.Fatalf("any key should leave help, got %v", s.Mode())
	}
	if tool, _ := s.Editor().Tool(); tool != ToolNone {
		t.Fatalf("the key leaving help must not reach the editor")
	}
}

func TestStateTileSelect(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	s, _, _ := newTestState(nil)

	send(s, ctx, KeyDownEvent(KeySpace))
	if s.Mode() != ModeTileSelect {
		t.Fatalf("expected tile select, got %v", s.Mode())
	}
	send(s, ctx, KeyDownEvent(KeyPageDown))
	if ctx.ScrolledTexture != level.Walls {
		t.Fatalf("expected walls atlas, got %v", ctx.ScrolledTexture)
	}
	send(s, ctx, MouseMotionEvent(45, 25), MouseDownEvent(ButtonLeft))

	if s.Mode() != ModeEditor {
		t.Fatalf("a valid click should return to the editor")
	}
	if ctx.SelectedTile != 18 || ctx.SelectedTexture != level.Walls {
		t.Fatalf("unexpected selection %d %v", ctx.SelectedTile, ctx.SelectedTexture)
	}
}

func TestTileSelectCycle(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	var ts TileSelect

	want := []level.TextureType{level.Walls, level.Shadow, level.Floor}
	for _, w := range want {
		ts.HandleEvent(ctx, KeyDownEvent(KeyDown))
		if ctx.ScrolledTexture != w {
			t.Fatalf("expected %v, got %v", w, ctx.ScrolledTexture)
		}
	}
	ts.HandleEvent(ctx, KeyDownEvent(KeyPageUp))
	if ctx.ScrolledTexture != level.Shadow {
		t.Fatalf("expected shadow going backwards, got %v", ctx.ScrolledTexture)
	}
}

func TestTileSelectOutsideAtlas(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	ctx.Textures.Shadows = fakeTexture{50, 20}
	ctx.ScrolledTexture = level.Shadow
	ctx.SelectedTile = 7
	var ts TileSelect

	cases := []struct {
		name string
		x, y uint32
		ok   bool
		tile uint32
	}{
		{"partial column", 45, 5, false, 7},
		{"far outside", 500, 400, false, 7},
		{"second tile", 25, 5, true, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts.HandleEvent(ctx, MouseMotionEvent(c.x, c.y))
			res := ts.HandleEvent(ctx, MouseDownEvent(ButtonLeft))
			if c.ok != (res.Kind == ResultChange) {
				t.Fatalf("unexpected result %+v", res)
			}
			if ctx.SelectedTile != c.tile {
				t.Fatalf("expected tile %d, got %d", c.tile, ctx.SelectedTile)
			}
		})
	}
	if ctx.SelectedTexture != level.Shadow {
		t.Fatalf("expected shadow palette, got %v", ctx.SelectedTexture)
	}
}

func TestStateGeneralInfo(t *testing.T) {
	ctx, font := newTestContext(32, 22)
	ctx.Level.Info.Comment = "abc"
	ctx.Level.Info.TimeLimit = 15
	s, ti, _ := newTestState(nil)

	send(s, ctx, KeyDownEvent(KeyF7))
	if s.Mode() != ModeGeneralLevelInfo || !ti.active {
		t.Fatalf("expected info mode with text input, got %v %v", s.Mode(), ti.active)
	}

	send(s, ctx, TextInputEvent("d"), TextInputEvent("!"), TextInputEvent("  "))
	send(s, ctx, KeyDownEvent(KeyBackspace))
	if got := ctx.Level.Info.Comment; got != "abcd " {
		t.Fatalf("unexpected comment %q", got)
	}

	send(s, ctx, KeyDownEvent(KeyDown))
	if ti.active {
		t.Fatalf("text input should stop off the comment row")
	}
	if rs := send(s, ctx, TextInputEvent("x")); rs.NeedsRender {
		t.Fatalf("text outside the comment row should be ignored")
	}
	send(s, ctx, KeyDownEvent(KeyRight), KeyDownEvent(KeyLeft))
	if got := ctx.Level.Info.TimeLimit; got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
	send(s, ctx, KeyDownEvent(KeyLeft), KeyDownEvent(KeyLeft))
	if got := ctx.Level.Info.TimeLimit; got != 0 {
		t.Fatalf("time limit should floor at 0, got %d", got)
	}

	send(s, ctx, KeyDownEvent(KeyDown), KeyDownEvent(KeyRight), KeyDownEvent(KeyRight))
	if got := ctx.Level.Info.Enemies[0]; got != 3 {
		t.Fatalf("expected 3 pistol boys, got %d", got)
	}
	for i := 0; i < 20; i++ {
		send(s, ctx, KeyDownEvent(KeyDown))
	}
	send(s, ctx, KeyDownEvent(KeyLeft))
	if got := ctx.Level.Info.Enemies[level.DiffEnemies-1]; got != 0 {
		t.Fatalf("enemy count should floor at 0, got %d", got)
	}

	s.Render(&fakeRenderer{}, ctx)
	for _, want := range []string{"level comment:", "abcd ", "0 seconds", "flamers:", "press ESC to exit"} {
		if !font.drew(want) {
			t.Fatalf("expected %q drawn, got %v", want, font.texts)
		}
	}

	for i := 0; i < 20; i++ {
		send(s, ctx, KeyDownEvent(KeyUp))
	}
	if !ti.active {
		t.Fatalf("text input should resume on the comment row")
	}
	send(s, ctx, KeyDownEvent(KeyEscape))
	if s.Mode() != ModeEditor || ti.active {
		t.Fatalf("escape should leave info and stop text input")
	}
}

func TestStateRandomItems(t *testing.T) {
	cases := []struct {
		key   Key
		game  level.GameType
		title string
	}{
		{KeyF8, level.Normal, "NORMAL GAME CRATES"},
		{KeyF9, level.Deathmatch, "DEATHMATCH CRATES"},
	}
	for _, c := range cases {
		t.Run(c.game.String(), func(t *testing.T) {
			ctx, font := newTestContext(32, 22)
			s, _, _ := newTestState(nil)
			crates := &ctx.Level.Crates.Random

			send(s, ctx, KeyDownEvent(c.key))
			send(s, ctx, KeyDownEvent(KeyRight), KeyDownEvent(KeyRight))
			if got := crates.Set(c.game).Weapons[0]; got != 3 {
				t.Fatalf("expected 3 pistols, got %d", got)
			}

			for i := 0; i < level.DiffWeapons; i++ {
				send(s, ctx, KeyDownEvent(KeyDown))
			}
			send(s, ctx, KeyDownEvent(KeyLeft), KeyDownEvent(KeyLeft))
			if got := crates.Set(c.game).Bullets[0]; got != 0 {
				t.Fatalf("bullet count should floor at 0, got %d", got)
			}

			for i := 0; i < 30; i++ {
				send(s, ctx, KeyDownEvent(KeyDown))
			}
			send(s, ctx, KeyDownEvent(KeyRight))
			if got := crates.Set(c.game).Energy; got != 2 {
				t.Fatalf("expected energy 2, got %d", got)
			}

			other := level.Normal
			if c.game == level.Normal {
				other = level.Deathmatch
			}
			if got := crates.Set(other).Weapons[0]; got != 1 {
				t.Fatalf("the other game type changed: %d", got)
			}

			s.Render(&fakeRenderer{}, ctx)
			if !font.drew(c.title) || !font.drew("mines (5)") {
				t.Fatalf("unexpected render %v", font.texts)
			}

			send(s, ctx, KeyDownEvent(KeyEscape))
			if s.Mode() != ModeEditor {
				t.Fatalf("escape should return to the editor")
			}
		})
	}
}

func TestStateRandomItemsReentry(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	s, _, _ := newTestState(nil)

	send(s, ctx, KeyDownEvent(KeyF8), KeyDownEvent(KeyDown), KeyDownEvent(KeyEscape))
	send(s, ctx, KeyDownEvent(KeyF9), KeyDownEvent(KeyRight))
	if got := ctx.Level.Crates.Random.Deathmatch.Weapons[0]; got != 2 {
		t.Fatalf("selection should reset on entry, pistols = %d", got)
	}
}

func TestStateLoadLevel(t *testing.T) {
	other := level.NewDefault(20, 15)
	other.Info.Comment = "loaded"

	lister := &fakeLister{levels: []fakeLevel{
		{name: "broken.lev", data: []byte{1, 2, 3}},
		{name: "arena.LEV", data: encoded(t, other)},
		{name: "gone.lev", err: errDisk},
	}}
	ctx, font := newTestContext(32, 22)
	original := ctx.Level
	s, _, _ := newTestState(lister)

	send(s, ctx, KeyDownEvent(KeyF3))
	if s.Mode() != ModeLoadLevel || lister.refreshes != 1 {
		t.Fatalf("expected load mode with one refresh, got %v %d", s.Mode(), lister.refreshes)
	}
	s.Render(&fakeRenderer{}, ctx)
	for _, want := range []string{"LOAD LEVEL:", "broken.lev", "arena.LEV", "gone.lev", "*"} {
		if !font.drew(want) {
			t.Fatalf("expected %q drawn, got %v", want, font.texts)
		}
	}

	send(s, ctx, KeyDownEvent(KeyEnter))
	if s.Mode() != ModeEditor || lister.resets != 1 {
		t.Fatalf("enter should return to the editor and reset the lister")
	}
	if ctx.Level != original || ctx.Notice != "corrupt level broken.lev" {
		t.Fatalf("corrupt load must keep the level, notice %q", ctx.Notice)
	}

	send(s, ctx, KeyDownEvent(KeyF3), KeyDownEvent(KeyDown), KeyDownEvent(KeyDown), KeyDownEvent(KeyDown))
	send(s, ctx, KeyDownEvent(KeyEnter))
	if ctx.Level != original || ctx.Notice != "could not read gone.lev" {
		t.Fatalf("failed read must keep the level, notice %q", ctx.Notice)
	}

	send(s, ctx, KeyDownEvent(KeyF3), KeyDownEvent(KeyDown), KeyDownEvent(KeyKeypadEnter))
	if ctx.Level.Info.Comment != "loaded" || ctx.Level.Width() != 20 {
		t.Fatalf("expected the loaded level, got %+v", ctx.Level.Info)
	}
	if ctx.SavedLevelName != "arena.LEV" || ctx.LevelSaveName != "arena" || ctx.Notice != "" {
		t.Fatalf("unexpected names %q %q %q", ctx.SavedLevelName, ctx.LevelSaveName, ctx.Notice)
	}
}

func TestStateLoadUnsupported(t *testing.T) {
	data := encoded(t, level.NewDefault(16, 12))
	data[0] = 9
	lister := &fakeLister{levels: []fakeLevel{{name: "new.lev", data: data}}}
	ctx, _ := newTestContext(32, 22)
	s, _, _ := newTestState(lister)

	send(s, ctx, KeyDownEvent(KeyF3), KeyDownEvent(KeyEnter))
	if ctx.Notice != "unsupported level new.lev" {
		t.Fatalf("unexpected notice %q", ctx.Notice)
	}
}

func TestStateLoadEmptyAndLevelsChanged(t *testing.T) {
	lister := &fakeLister{}
	ctx, _ := newTestContext(32, 22)
	original := ctx.Level
	s, _, _ := newTestState(lister)

	// outside the browser the notification is ignored
	send(s, ctx, LevelsChangedEvent())
	if lister.refreshes != 0 {
		t.Fatalf("levels changed outside load mode should not rescan")
	}

	send(s, ctx, KeyDownEvent(KeyF3))
	lister.levels = []fakeLevel{{name: "a.lev"}, {name: "b.lev"}}
	if rs := send(s, ctx, LevelsChangedEvent()); !rs.NeedsRender || lister.refreshes != 2 {
		t.Fatalf("levels changed should rescan and redraw, got %+v %d", rs, lister.refreshes)
	}
	send(s, ctx, KeyDownEvent(KeyDown), KeyDownEvent(KeyDown))
	lister.levels = lister.levels[:1]
	send(s, ctx, LevelsChangedEvent())
	if s.loadLevel.selected != 0 {
		t.Fatalf("selection should clamp to the shorter list, got %d", s.loadLevel.selected)
	}

	lister.levels = nil
	send(s, ctx, LevelsChangedEvent(), KeyDownEvent(KeyEnter))
	if s.Mode() != ModeEditor || ctx.Level != original {
		t.Fatalf("enter on an empty list should just return")
	}
}

func TestStateSwitchKeepsTextInputConsistent(t *testing.T) {
	ctx, _ := newTestContext(32, 22)
	s, ti, _ := newTestState(nil)

	send(s, ctx, KeyDownEvent(KeyF2), KeyDownEvent(KeyY))
	if !ti.active {
		t.Fatalf("expected text input for the save name")
	}
	send(s, ctx, KeyDownEvent(KeyF3))
	if s.Mode() != ModeEditor {
		t.Fatalf("load must be refused while typing a name, got %v", s.Mode())
	}
	send(s, ctx, KeyDownEvent(KeyEscape), KeyDownEvent(KeyF2), KeyDownEvent(KeyF3))
	if s.Mode() != ModeLoadLevel || ti.active {
		t.Fatalf("expected load mode without text input, got %v %v", s.Mode(), ti.active)
	}
}

func TestStateRenderEveryMode(t *testing.T) {
	modeKeys := []Key{KeyUnknown, KeySpace, KeyF1, KeyF3, KeyF7, KeyF8, KeyF9}
	for _, k := range modeKeys {
		t.Run(k.String(), func(t *testing.T) {
			ctx, font := newTestContext(32, 22)
			s, _, _ := newTestState(&fakeLister{levels: []fakeLevel{{name: "x.lev"}}})
			if k != KeyUnknown {
				send(s, ctx, KeyDownEvent(k))
			}
			r := &fakeRenderer{}
			s.Render(r, ctx)
			if r.clears != 1 {
				t.Fatalf("expected one clear, got %d", r.clears)
			}
			if len(font.texts) == 0 {
				t.Fatalf("nothing drawn in %v", s.Mode())
			}
		})
	}
}
