package editor

import (
	"strconv"

	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/render"
)

// RandomItems edits how many of each crate item may spawn randomly. One
// instance serves both game types; the mode picks the set.
type RandomItems struct {
	selected int
}

func (ri *RandomItems) Enter() {
	ri.selected = 0
}

func gameTypeOf(m Mode) level.GameType {
	if m == ModeRandomItemsDeathmatch {
		return level.Deathmatch
	}
	return level.Normal
}

func (ri *RandomItems) HandleEvent(ctx *Context, ti TextInput, g level.GameType, ev Event) Result {
	switch ev.Kind {
	case EventQuit:
		ti.Stop()
		return change(ModeEditor)
	case EventWindowResized:
		return change(ModeEditor)
	case EventKeyDown:
	default:
		return ignored()
	}

	set := ctx.Level.Crates.Random.Set(g)
	switch ev.Key {
	case KeyEscape:
		ti.Stop()
		return change(ModeEditor)
	case KeyDown:
		if ri.selected < len(level.AllCrates)-1 {
			ri.selected++
		}
	case KeyUp:
		if ri.selected > 0 {
			ri.selected--
		}
	case KeyRight:
		set.Set(ri.selected, set.Get(ri.selected)+1)
	case KeyLeft:
		if v := set.Get(ri.selected); v > 0 {
			set.Set(ri.selected, v-1)
		}
	default:
		return ignored()
	}
	return keep()
}

func (ri *RandomItems) Render(r render.Renderer, ctx *Context, g level.GameType) {
	r.ClearScreen()
	font := ctx.Font

	title := "NORMAL GAME CRATES"
	if g == level.Deathmatch {
		title = "DEATHMATCH CRATES"
	}
	tx, ty := render.TitlePosition(font)
	font.DrawText(r, title, tx, ty)

	top := int(font.Px(25))
	x, y := int(font.Px(20)), top
	valueX := int(font.Px(140))
	set := ctx.Level.Crates.Random.Set(g)

	for i, name := range level.AllCrates {
		if i == ri.selected {
			font.DrawText(r, "*", x-int(font.Px(10)), y+int(font.Px(1)))
		}
		font.DrawText(r, name, x, y)
		font.DrawText(r, strconv.FormatUint(uint64(set.Get(i)), 10), valueX, y)

		// weapons fill the first column, everything else the second
		if i == level.DiffWeapons-1 {
			x = int(font.Px(165))
			valueX = x + int(font.Px(125))
			y = top
		} else {
			y += int(font.Px(10))
		}
	}

	bx, by := render.BottomTextPosition(font, ctx.Graphics.ResolutionY)
	font.DrawText(r, "press ESC to exit", bx, by)
}
