package editor

import (
	"log"
	"strconv"
	"strings"

	"github.com/milk9111/utkedit/geom"
	"github.com/milk9111/utkedit/level"
)

// Prompt is the confirmation or text entry currently shown over the level.
type Prompt uint8

const (
	PromptNone Prompt = iota
	PromptNewLevel
	PromptNewLevelX
	PromptNewLevelY
	PromptSave
	PromptSaveName
	// PromptShadowsEnabled asks to turn automatic shadows off.
	PromptShadowsEnabled
	// PromptShadowsDisabled asks to turn automatic shadows on.
	PromptShadowsDisabled
	PromptQuit
)

func (p Prompt) isNewLevel() bool {
	return p == PromptNewLevel || p == PromptNewLevelX || p == PromptNewLevelY
}

func (p Prompt) isSave() bool {
	return p == PromptSave || p == PromptSaveName
}

// isTextEntry reports whether the prompt is collecting typed text.
func (p Prompt) isTextEntry() bool {
	return p == PromptNewLevelX || p == PromptNewLevelY || p == PromptSaveName
}

// Tool is the armed entity tool.
type Tool uint8

const (
	ToolNone Tool = iota
	ToolSpotlight
	ToolSteam
	ToolNormalCrate
	ToolDeathmatchCrate
)

// Phase is what a left click does with the armed tool.
type Phase uint8

const (
	PhasePlace Phase = iota
	PhaseDelete
	// PhaseTuning means an entity was just placed; arrow keys adjust it.
	PhaseTuning
)

const (
	defaultSizeX = "16"
	defaultSizeY = "12"
)

// Editor is the main editing mode: painting tiles, placing entities and
// running the new/save/quit/shadow prompts.
type Editor struct {
	writer LevelWriter

	prompt Prompt
	tool   Tool
	phase  Phase
	// target is the level pixel position of the entity being tuned.
	target level.Position
	// spawn is the player whose start point the next click sets, 0 for none.
	spawn uint8

	// anchor is where the left button went down; leftHeld tracks the button.
	anchor    geom.Point
	leftHeld  bool
	rightHeld bool
	dragging  bool

	sizeX string
	sizeY string
}

func NewEditor(writer LevelWriter) *Editor {
	return &Editor{
		writer: writer,
		sizeX:  defaultSizeX,
		sizeY:  defaultSizeY,
	}
}

func (e *Editor) Prompt() Prompt { return e.prompt }

// Tool returns the armed tool and its phase.
func (e *Editor) Tool() (Tool, Phase) { return e.tool, e.phase }

// HandleEvent applies one event to the level and the editor state.
func (e *Editor) HandleEvent(ctx *Context, ti TextInput, ev Event) Result {
	switch ev.Kind {
	case EventQuit:
		e.escape(ti)
		return keep()
	case EventKeyDown:
		return e.handleKey(ctx, ti, ev.Key)
	case EventTextInput:
		return e.handleText(ctx, ev.Text)
	case EventMouseMotion:
		ctx.Mouse = geom.Point{X: ev.X, Y: ev.Y}
		if e.leftHeld {
			e.leftDown(ctx)
		}
		if e.rightHeld {
			e.rightDown(ctx)
		}
		return keep()
	case EventMouseDown:
		if ev.Button == ButtonLeft {
			e.anchor = ctx.Mouse
			e.leftHeld = true
			e.leftDown(ctx)
		} else {
			e.rightHeld = true
			e.rightDown(ctx)
		}
		return keep()
	case EventMouseUp:
		if ev.Button == ButtonLeft {
			e.leftUp(ctx)
		} else {
			e.rightHeld = false
		}
		return keep()
	default:
		return ignored()
	}
}

// escape backs out of whatever is active, or asks to quit when nothing is.
func (e *Editor) escape(ti TextInput) {
	if e.prompt != PromptNone || e.tool != ToolNone || e.spawn > 0 {
		e.tool = ToolNone
		e.phase = PhasePlace
		ti.Stop()
		e.spawn = 0
		e.prompt = PromptNone
		return
	}
	e.prompt = PromptQuit
}

func (e *Editor) handleText(ctx *Context, text string) Result {
	switch e.prompt {
	case PromptNewLevelX:
		e.sizeX = appendNumeric(e.sizeX, text)
	case PromptNewLevelY:
		e.sizeY = appendNumeric(e.sizeY, text)
	case PromptNewLevel:
	case PromptSaveName:
		ctx.LevelSaveName = appendSaveName(ctx.LevelSaveName, text)
	default:
		return ignored()
	}
	return keep()
}

func (e *Editor) handleKey(ctx *Context, ti TextInput, k Key) Result {
	switch k {
	case KeyEscape:
		e.escape(ti)
	case KeySpace:
		return change(ModeTileSelect)
	case KeyF1:
		return change(ModeHelp)
	case KeyF2:
		if e.prompt.isNewLevel() {
			return ignored()
		}
		ti.Stop()
		e.prompt = PromptSave
	case KeyF3:
		if e.prompt.isTextEntry() {
			return ignored()
		}
		ti.Stop()
		return change(ModeLoadLevel)
	case KeyF4:
		if e.prompt.isSave() {
			return ignored()
		}
		e.prompt = PromptNewLevel
		e.sizeX = defaultSizeX
		e.sizeY = defaultSizeY
	case KeyF6:
		if e.prompt.isTextEntry() {
			return ignored()
		}
		ti.Stop()
		if ctx.AutomaticShadows {
			e.prompt = PromptShadowsEnabled
		} else {
			e.prompt = PromptShadowsDisabled
		}
	case KeyF7, KeyF8, KeyF9:
		if e.prompt.isTextEntry() {
			return ignored()
		}
		switch k {
		case KeyF7:
			return change(ModeGeneralLevelInfo)
		case KeyF8:
			return change(ModeRandomItemsNormal)
		default:
			return change(ModeRandomItemsDeathmatch)
		}
	case Key1, Key2:
		if e.prompt.isNewLevel() || e.prompt.isSave() {
			return ignored()
		}
		e.spawn = 1
		if k == Key2 {
			e.spawn = 2
		}
		e.prompt = PromptNone
	case KeyQ, KeyW, KeyA, KeyS, KeyZ, KeyX, KeyC:
		if e.prompt.isSave() {
			return ignored()
		}
		e.arm(k)
		ti.Stop()
		e.prompt = PromptNone
	case KeyY:
		return e.confirm(ctx, ti)
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		if e.phase == PhaseTuning && e.tune(ctx, k) {
			return keep()
		}
		e.scroll(ctx, k)
	case KeyEnter, KeyKeypadEnter:
		return e.enter(ctx, ti)
	case KeyBackspace:
		switch e.prompt {
		case PromptNewLevelX:
			e.sizeX = popLast(e.sizeX)
		case PromptNewLevelY:
			e.sizeY = popLast(e.sizeY)
		case PromptSaveName:
			ctx.LevelSaveName = popLast(ctx.LevelSaveName)
		default:
			return ignored()
		}
	case KeyPlus, KeyKeypadPlus:
		if !ctx.Graphics.SupportsScaling {
			return ignored()
		}
		if ctx.Graphics.RenderMultiplier == 1 {
			ctx.Graphics.RenderMultiplier = 2
		}
	case KeyMinus, KeyKeypadMinus:
		if !ctx.Graphics.SupportsScaling {
			return ignored()
		}
		if ctx.Graphics.RenderMultiplier == 2 {
			ctx.Graphics.RenderMultiplier = 1
			ctx.Level.Scroll = level.Position{}
		}
	default:
		if !e.prompt.isTextEntry() {
			e.prompt = PromptNone
		}
	}
	return keep()
}

func (e *Editor) arm(k Key) {
	e.phase = PhasePlace
	switch k {
	case KeyQ:
		e.tool = ToolSpotlight
	case KeyW:
		e.tool, e.phase = ToolSpotlight, PhaseDelete
	case KeyA:
		e.tool = ToolSteam
	case KeyS:
		e.tool, e.phase = ToolSteam, PhaseDelete
	case KeyZ:
		e.tool = ToolNormalCrate
	case KeyX:
		e.tool = ToolDeathmatchCrate
	case KeyC:
		e.tool, e.phase = ToolNormalCrate, PhaseDelete
	}
}

func (e *Editor) confirm(ctx *Context, ti TextInput) Result {
	switch e.prompt {
	case PromptNone:
	case PromptNewLevel:
		e.prompt = PromptNewLevelX
		ti.Start()
	case PromptSave:
		e.prompt = PromptSaveName
		ti.Start()
	case PromptShadowsEnabled:
		ctx.AutomaticShadows = false
		e.prompt = PromptNone
	case PromptShadowsDisabled:
		ctx.Level.CreateShadows()
		ctx.AutomaticShadows = true
		e.prompt = PromptNone
	case PromptQuit:
		return quit()
	default:
		return ignored()
	}
	return keep()
}

// tune adjusts the entity under tuning. It reports false when the key has
// no meaning for the tool, in which case the caller scrolls instead.
func (e *Editor) tune(ctx *Context, k Key) bool {
	lvl := ctx.Level
	switch e.tool {
	case ToolSpotlight:
		if k != KeyUp && k != KeyDown {
			return false
		}
		v, ok := lvl.Spotlight(e.target)
		if !ok {
			return true
		}
		if k == KeyUp && v < level.MaxSpotlight {
			lvl.PutSpotlight(e.target, v+1)
		} else if k == KeyDown && v > 0 {
			lvl.PutSpotlight(e.target, v-1)
		}
	case ToolSteam:
		s, ok := lvl.Steam(e.target)
		if !ok {
			return true
		}
		switch k {
		case KeyUp:
			if s.Range < level.MaxSteamRange {
				s.Range++
			}
		case KeyDown:
			if s.Range > 0 {
				s.Range--
			}
		case KeyLeft:
			s.Angle = (s.Angle + 360 - 5) % 360
		case KeyRight:
			s.Angle = (s.Angle + 5) % 360
		}
		lvl.PutSteam(e.target, s)
	case ToolNormalCrate, ToolDeathmatchCrate:
		c, ok := lvl.Crate(e.target)
		if !ok {
			return true
		}
		switch k {
		case KeyUp:
			if c.Class < level.Energy {
				c.Class++
				c.Type = 0
			}
		case KeyDown:
			if c.Class > level.Weapon {
				c.Class--
				c.Type = 0
			}
		case KeyLeft:
			if c.Type > 0 {
				c.Type--
			}
		case KeyRight:
			if int(c.Type) < len(level.CratesOf(c.Class))-1 {
				c.Type++
			}
		}
		lvl.PutCrate(e.target, c)
	default:
		return false
	}
	return true
}

// scroll moves the viewport one tile, never past the last full screen.
func (e *Editor) scroll(ctx *Context, k Key) {
	lvl := ctx.Level
	g := ctx.Graphics
	switch k {
	case KeyUp:
		if lvl.Scroll.Y > 0 {
			lvl.Scroll.Y--
		}
	case KeyDown:
		if lvl.Scroll.Y+g.FullYTilesPerScreen() < lvl.Height() {
			lvl.Scroll.Y++
		}
	case KeyLeft:
		if lvl.Scroll.X > 0 {
			lvl.Scroll.X--
		}
	case KeyRight:
		if lvl.Scroll.X+g.FullXTilesPerScreen() < lvl.Width() {
			lvl.Scroll.X++
		}
	}
}

func (e *Editor) enter(ctx *Context, ti TextInput) Result {
	if e.phase == PhaseTuning {
		e.phase = PhasePlace
		return keep()
	}
	switch e.prompt {
	case PromptNewLevelX:
		if x, ok := parseSize(e.sizeX); ok && x >= level.MinWidth {
			e.prompt = PromptNewLevelY
			return keep()
		}
	case PromptNewLevelY:
		x, okX := parseSize(e.sizeX)
		y, okY := parseSize(e.sizeY)
		if okX && okY && x >= level.MinWidth && y >= level.MinHeight {
			ctx.Level = level.NewDefault(x, y)
			ti.Stop()
			ctx.SavedLevelName = ""
			ctx.LevelSaveName = ""
			ctx.Notice = ""
			e.prompt = PromptNone
			return keep()
		}
	case PromptSaveName:
		if len(ctx.LevelSaveName) > 1 {
			e.save(ctx, ti)
			return keep()
		}
	}
	return ignored()
}

func parseSize(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// save writes the level as NAME.LEV. A failed write keeps the level and is
// reported through ctx.Notice.
func (e *Editor) save(ctx *Context, ti TextInput) {
	name := strings.ToUpper(ctx.LevelSaveName) + ".LEV"
	ti.Stop()
	e.prompt = PromptNone

	data, err := ctx.Level.MarshalBinary()
	if err == nil {
		err = e.writer.Write(name, data)
	}
	if err != nil {
		log.Printf("editor: save %s: %v", name, err)
		ctx.Notice = "could not save " + name
		return
	}
	ctx.SavedLevelName = strings.ToLower(name)
	ctx.Notice = ""
}

func (e *Editor) leftDown(ctx *Context) {
	if e.dragging {
		return
	}
	lvl := ctx.Level
	g := ctx.Graphics

	if e.spawn > 0 {
		m := ctx.limitedMouse(ctx.Mouse)
		p := geom.LogicalCoordinates(g, m.X, m.Y, lvl.Scroll)
		if e.spawn == 1 {
			lvl.P1 = p
		} else {
			lvl.P2 = p
		}
		e.spawn = 0
		return
	}

	at := geom.LevelFromScreen(g, ctx.Mouse, lvl.Scroll)
	switch e.phase {
	case PhasePlace:
		switch e.tool {
		case ToolNone:
			e.dragging = true
			return
		case ToolSpotlight:
			lvl.PutSpotlight(at, 0)
		case ToolSteam:
			lvl.PutSteam(at, level.Steam{Angle: 0, Range: 1})
		case ToolNormalCrate:
			lvl.PutCrate(at, level.StaticCrate{Variant: level.Normal, Class: level.Weapon})
		case ToolDeathmatchCrate:
			lvl.PutCrate(at, level.StaticCrate{Variant: level.Deathmatch, Class: level.Weapon})
		}
		e.phase = PhaseTuning
		e.target = at
	case PhaseDelete:
		switch e.tool {
		case ToolSpotlight:
			lvl.DeleteSpotlightsNear(at, g.RenderMultiplier)
		case ToolSteam:
			lvl.DeleteSteamsNear(at, g.RenderMultiplier)
		case ToolNormalCrate, ToolDeathmatchCrate:
			lvl.DeleteCratesNear(at, g.RenderMultiplier)
		}
	}
}

// leftUp paints the dragged rectangle with the selected palette tile.
func (e *Editor) leftUp(ctx *Context) {
	defer func() { e.leftHeld = false }()
	if !e.dragging {
		return
	}
	e.dragging = false
	if !e.leftHeld {
		return
	}

	lvl := ctx.Level
	ids := geom.SelectedTiles(ctx.Graphics,
		ctx.limitedMouse(e.anchor), ctx.limitedMouse(ctx.Mouse),
		lvl.Width(), lvl.Scroll)
	for _, id := range ids {
		lvl.PutTile(id, ctx.SelectedTile, ctx.SelectedTexture)
	}
	if ctx.SelectedTexture == level.Shadow {
		ctx.AutomaticShadows = false
	} else if ctx.AutomaticShadows {
		lvl.CreateShadows()
	}
}

// rightDown erases the shadow under the cursor.
func (e *Editor) rightDown(ctx *Context) {
	lvl := ctx.Level
	id := geom.TileID(ctx.Graphics, ctx.limitedMouse(ctx.Mouse), lvl.Width(), lvl.Scroll)
	lvl.ClearShadow(id)
	ctx.AutomaticShadows = false
}
