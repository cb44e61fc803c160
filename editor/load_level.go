package editor

import (
	"log"
	"strings"

	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/render"
)

// LoadLevel browses the levels a LevelLister provides.
type LoadLevel struct {
	lister   LevelLister
	selected int
}

func NewLoadLevel(lister LevelLister) *LoadLevel {
	return &LoadLevel{lister: lister}
}

// Enter rescans the level source and selects the first entry.
func (ll *LoadLevel) Enter() {
	ll.refresh()
	ll.selected = 0
}

// Leave lets the lister drop whatever it loaded for the browser.
func (ll *LoadLevel) Leave() {
	ll.lister.Reset()
}

func (ll *LoadLevel) refresh() {
	if err := ll.lister.Refresh(); err != nil {
		log.Printf("editor: list levels: %v", err)
	}
	if n := ll.lister.Len(); ll.selected >= n {
		ll.selected = max(n-1, 0)
	}
}

func (ll *LoadLevel) HandleEvent(ctx *Context, ev Event) Result {
	switch ev.Kind {
	case EventQuit, EventWindowResized:
		return change(ModeEditor)
	case EventLevelsChanged:
		ll.refresh()
		return keep()
	case EventKeyDown:
	default:
		return ignored()
	}

	switch ev.Key {
	case KeyEscape:
		return change(ModeEditor)
	case KeyDown:
		if ll.selected < ll.lister.Len()-1 {
			ll.selected++
		}
	case KeyUp:
		if ll.selected > 0 {
			ll.selected--
		}
	case KeyEnter, KeyKeypadEnter:
		if ll.lister.Len() > 0 {
			ll.load(ctx, ll.selected)
		}
		return change(ModeEditor)
	default:
		return ignored()
	}
	return keep()
}

// load decodes entry i into a fresh level and only replaces the current
// one when that succeeds.
func (ll *LoadLevel) load(ctx *Context, i int) {
	name := ll.lister.Name(i)
	data, err := ll.lister.Load(i)
	if err != nil {
		log.Printf("editor: load %s: %v", name, err)
		ctx.Notice = "could not read " + name
		return
	}
	lvl, err := level.Decode(data)
	if err != nil {
		log.Printf("editor: load %s: %v", name, err)
		if level.IsContentError(err) {
			ctx.Notice = "unsupported level " + name
		} else {
			ctx.Notice = "corrupt level " + name
		}
		return
	}

	ctx.Level = lvl
	ctx.SavedLevelName = name
	ctx.LevelSaveName = stripLevelSuffix(name)
	ctx.Notice = ""
}

func stripLevelSuffix(name string) string {
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".lev") {
		return name[:len(name)-4]
	}
	return name
}

func (ll *LoadLevel) Render(r render.Renderer, ctx *Context) {
	r.ClearScreen()
	font := ctx.Font

	tx, ty := render.TitlePosition(font)
	font.DrawText(r, "LOAD LEVEL:", tx, ty)

	x, y := int(font.Px(20)), int(font.Px(30))
	spacing := int(font.Px(10))
	for i := 0; i < ll.lister.Len(); i++ {
		if i == ll.selected {
			font.DrawText(r, "*", x-int(font.Px(10)), y+int(font.Px(1))+i*spacing)
		}
		font.DrawText(r, ll.lister.Name(i), x, y+i*spacing)
	}

	bx, by := render.BottomTextPosition(font, ctx.Graphics.ResolutionY)
	font.DrawText(r, "ENTER to select or ESC to exit", bx, by)
}
