package editor

import "github.com/milk9111/utkedit/render"

var helpLines = []string{
	"ESC - quit",
	"F1   - this help",
	"F2   - save level",
	"F3   - load level",
	"F4   - create new level",
	"F6   - enable/disable automatic shadows",
	"F7   - edit general level variables",
	"F8/F9 - edit random crates for normal/dm games",
	" ",
	"- EDITOR -",
	"Q/W  - place/delete spotlights",
	"A/S  - place/delete steams",
	"Z/X/C - place/delete crates",
	"1/2  - place pl1/pl2 start",
	"SPACE - tile selection/editing mode",
	"ARROW KEYS - move viewport",
}

var windowHelpLines = []string{
	" ",
	"- WINDOW -",
	"+/- adjust rendering size",
}

// Help lists the key bindings. Any key returns to the editor.
type Help struct{}

func (Help) HandleEvent(ev Event) Result {
	switch ev.Kind {
	case EventQuit, EventKeyDown, EventWindowResized:
		return change(ModeEditor)
	default:
		return ignored()
	}
}

func (Help) Render(r render.Renderer, ctx *Context) {
	r.ClearScreen()
	font := ctx.Font
	x, y := int(font.Px(10)), int(font.Px(3))
	step := int(font.LineHeight() + font.Px(1))

	lines := helpLines
	if ctx.Graphics.SupportsScaling {
		lines = append(lines[:len(lines):len(lines)], windowHelpLines...)
	}
	for _, line := range lines {
		font.DrawText(r, line, x, y)
		y += step
	}
}
