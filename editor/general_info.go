package editor

import (
	"strconv"

	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/render"
)

type infoField uint8

const (
	fieldComment infoField = iota
	fieldTimeLimit
	fieldEnemy
)

type infoRow struct {
	label string
	field infoField
	enemy int
}

var infoRows = [...]infoRow{
	{label: "level comment:", field: fieldComment},
	{label: "time limit:", field: fieldTimeLimit},
	{label: "pistol boys:", field: fieldEnemy, enemy: 0},
	{label: "shotgun maniacs:", field: fieldEnemy, enemy: 1},
	{label: "uzi rebels:", field: fieldEnemy, enemy: 2},
	{label: "commandos:", field: fieldEnemy, enemy: 3},
	{label: "granade mofos:", field: fieldEnemy, enemy: 4},
	{label: "civilians:", field: fieldEnemy, enemy: 5},
	{label: "punishers:", field: fieldEnemy, enemy: 6},
	{label: "flamers:", field: fieldEnemy, enemy: 7},
}

// timeLimitStep is how much Left/Right change the time limit, in seconds.
const timeLimitStep = 10

// GeneralInfo edits the level comment, time limit and enemy counts.
type GeneralInfo struct {
	selected int
}

// Enter selects the first row, which is the comment, so text entry starts.
func (g *GeneralInfo) Enter(ti TextInput) {
	g.selected = 0
	g.syncTextInput(ti)
}

func (g *GeneralInfo) syncTextInput(ti TextInput) {
	if infoRows[g.selected].field == fieldComment {
		ti.Start()
	} else {
		ti.Stop()
	}
}

func (g *GeneralInfo) HandleEvent(ctx *Context, ti TextInput, ev Event) Result {
	info := &ctx.Level.Info
	row := infoRows[g.selected]

	switch ev.Kind {
	case EventQuit, EventWindowResized:
		ti.Stop()
		return change(ModeEditor)
	case EventTextInput:
		if row.field != fieldComment {
			return ignored()
		}
		info.Comment = appendComment(info.Comment, ev.Text)
		return keep()
	case EventKeyDown:
	default:
		return ignored()
	}

	switch ev.Key {
	case KeyEscape:
		ti.Stop()
		return change(ModeEditor)
	case KeyDown:
		if g.selected < len(infoRows)-1 {
			g.selected++
			g.syncTextInput(ti)
		}
	case KeyUp:
		if g.selected > 0 {
			g.selected--
			g.syncTextInput(ti)
		}
	case KeyRight:
		switch row.field {
		case fieldEnemy:
			info.Enemies[row.enemy]++
		case fieldTimeLimit:
			info.TimeLimit += timeLimitStep
		default:
			return ignored()
		}
	case KeyLeft:
		switch row.field {
		case fieldEnemy:
			if info.Enemies[row.enemy] > 0 {
				info.Enemies[row.enemy]--
			}
		case fieldTimeLimit:
			info.TimeLimit -= min(info.TimeLimit, timeLimitStep)
		default:
			return ignored()
		}
	case KeyBackspace:
		if row.field != fieldComment {
			return ignored()
		}
		info.Comment = popLast(info.Comment)
	default:
		return ignored()
	}
	return keep()
}

func infoValue(info *level.GeneralInfo, row infoRow) string {
	switch row.field {
	case fieldComment:
		return info.Comment
	case fieldTimeLimit:
		return strconv.FormatUint(uint64(info.TimeLimit), 10) + " seconds"
	default:
		return strconv.FormatUint(uint64(info.Enemies[row.enemy]), 10)
	}
}

func (g *GeneralInfo) Render(r render.Renderer, ctx *Context) {
	r.ClearScreen()
	font := ctx.Font
	x, y := int(font.Px(20)), int(font.Px(10))
	valueX := int(font.Px(150))

	for i, row := range infoRows {
		if i == g.selected {
			font.DrawText(r, "*", x-int(font.Px(10)), y+int(font.Px(1)))
		}
		font.DrawText(r, row.label, x, y)
		if v := infoValue(&ctx.Level.Info, row); v != "" {
			font.DrawText(r, v, valueX, y)
		}
		y += int(font.LineHeight() + font.Px(2))
	}

	bx, by := render.BottomTextPosition(font, ctx.Graphics.ResolutionY)
	font.DrawText(r, "press ESC to exit", bx, by)
}
