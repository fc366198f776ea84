package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/parameter"
)

// slotGlyphs are one-letter slot labels in slot order
var slotGlyphs = [ability.TypeCount]rune{
	ability.Attack:     'A',
	ability.Block:      'B',
	ability.Dash:       'D',
	ability.Jump:       'J',
	ability.Hook:       'H',
	ability.ThrowShort: 't',
	ability.ThrowLong:  'T',
	ability.Bomb:       'X',
	ability.Trap:       'R',
	ability.SpeedBoost: 'S',
	ability.Stealth:    'Z',
}

// StatusRenderer draws one line per actor under the field, plus a metrics column
type StatusRenderer struct {
	ShowMetrics bool
}

func NewStatusRenderer() *StatusRenderer { return &StatusRenderer{ShowMetrics: true} }

func (r *StatusRenderer) Render(ctx Context, scr tcell.Screen) {
	w := ctx.World
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText)
	y := ctx.FieldY + ctx.FieldHeight
	half := ctx.Width
	if r.ShowMetrics {
		half = ctx.Width / 2
	}

	header := fmt.Sprintf("frame %d", w.FrameNumber())
	if ctx.IsPaused {
		header += "  [PAUSED]"
	}
	if ctx.IsMuted {
		header += "  [MUTED]"
	}
	drawText(scr, 0, y, half, header, base)
	y++

	for _, e := range w.Components.Actor.All() {
		if y >= ctx.Height {
			break
		}
		actor := w.Components.Actor.Ref(e)
		inv := w.Components.Inventory.Ref(e)
		bright, _ := TeamColor(actor.Team)

		x := drawText(scr, 0, y, half, fmt.Sprintf("%-3d %-4s ", e.Index(), teamName(actor.Team)), base.Foreground(bright))
		x = drawText(scr, x, y, half, healthBar(actor), base.Foreground(healthColor(actor)))
		x = drawText(scr, x, y, half, " ", base)
		if inv != nil {
			x = drawSlots(scr, x, y, half, inv, base)
		}
		drawText(scr, x, y, half, " "+actor.State(), base.Foreground(RgbDimText))
		y++
	}

	if !r.ShowMetrics {
		return
	}
	my := ctx.FieldY + ctx.FieldHeight
	for _, line := range w.Resources.Status.Lines() {
		if my >= ctx.Height {
			break
		}
		drawText(scr, half+1, my, ctx.Width, line, base.Foreground(RgbDimText))
		my++
	}
}

// healthBar is a ten-cell gauge
func healthBar(a *component.ActorComponent) string {
	if a.MaxHealth <= 0 {
		return "[----------]"
	}
	filled := max(min(a.Health*10/a.MaxHealth, 10), 0)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + "]"
}

func healthColor(a *component.ActorComponent) tcell.Color {
	if a.Health*4 <= a.MaxHealth {
		return RgbHealthLow
	}
	return RgbHealth
}

// drawSlots writes one glyph per populated slot colored by its phase
func drawSlots(scr tcell.Screen, x, y, maxX int, inv *component.InventoryComponent, base tcell.Style) int {
	for t := ability.Type(0); t < ability.TypeCount; t++ {
		a, ok := inv.Ability(t)
		if !ok {
			continue
		}
		style := base
		switch {
		case a.IsActive():
			style = base.Foreground(RgbSlotActive).Bold(true)
		case a.IsDelayed():
			style = base.Foreground(RgbSlotDelayed)
		case a.IsOnCooldown():
			style = base.Foreground(RgbSlotCooldown)
		}
		// Owned buttons are underlined
		own := inv.Ownership
		if t == own.Main1 || t == own.Main2 || t == own.Utility {
			style = style.Underline(true)
		}
		x = drawText(scr, x, y, maxX, string(slotGlyphs[t]), style)
	}
	return x
}

func teamName(team uint8) string {
	switch team {
	case parameter.TeamHome:
		return "home"
	case parameter.TeamAway:
		return "away"
	}
	return "none"
}
