package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/vmath"
)

// facingGlyphs indexed by octant, counter-clockwise from +X
var facingGlyphs = [8]rune{'>', '/', '^', '\\', '<', '/', 'v', '\\'}

// EntitiesRenderer draws payload paths, payloads, the ball and actors, in that order
type EntitiesRenderer struct{}

func NewEntitiesRenderer() *EntitiesRenderer { return &EntitiesRenderer{} }

func (r *EntitiesRenderer) Render(ctx Context, scr tcell.Screen) {
	w := ctx.World
	field := tcell.StyleDefault.Background(RgbField)

	// Remaining path of every follower
	for _, e := range w.Components.Trajectory.All() {
		tr := w.Components.Trajectory.Ref(e)
		style := field.Foreground(RgbPath)
		for i := 0; i < tr.Count; i++ {
			if tr.Lengths[i] < tr.Traveled {
				continue
			}
			if x, y, ok := ctx.Project(tr.Points[i]); ok {
				scr.SetContent(x, y, '.', nil, style)
			}
		}
	}

	for _, e := range w.Components.Payload.All() {
		p := w.Components.Payload.Ref(e)
		body := w.Components.Body.Ref(e)
		if body == nil {
			continue
		}
		style := field.Foreground(RgbPayload)
		if p.Armed {
			style = field.Foreground(RgbPayloadHot).Bold(true)
		}
		if x, y, ok := ctx.Project(body.Position); ok {
			scr.SetContent(x, y, '*', nil, style)
		}
	}

	for _, e := range w.Components.Ball.All() {
		ball := w.Components.Ball.Ref(e)
		body := w.Components.Body.Ref(e)
		if body == nil || !ball.Carrier.IsNull() {
			continue
		}
		ch := 'o'
		if body.Position.Y > vmath.FromInt(2) {
			ch = 'O' // High in the air
		}
		if x, y, ok := ctx.Project(body.Position); ok {
			scr.SetContent(x, y, ch, nil, field.Foreground(RgbBall).Bold(true))
		}
	}

	for _, e := range w.Components.Actor.All() {
		actor := w.Components.Actor.Ref(e)
		body := w.Components.Body.Ref(e)
		if body == nil {
			continue
		}
		x, y, ok := ctx.Project(body.Position)
		if !ok {
			continue
		}

		bright, dark := TeamColor(actor.Team)
		style := field.Foreground(bright).Bold(true)
		ch := facingGlyph(actor.Facing)
		switch {
		case !actor.Alive():
			ch, style = 'x', field.Foreground(dark)
		case actor.Hidden:
			style = field.Foreground(dark)
		case actor.Incapacitated():
			ch = '~'
		}
		if !actor.Carrying.IsNull() {
			style = style.Background(RgbBall).Foreground(bright)
		}
		if actor.Blocking {
			style = style.Reverse(true)
		}
		scr.SetContent(x, y, ch, nil, style)
	}
}

// facingGlyph picks an arrow for a horizontal facing, screen up is +Z
func facingGlyph(f vmath.Vec3) rune {
	if vmath.V3IsZero(vmath.V3Horizontal(f)) {
		return '@'
	}
	// Octant from the signs and relative magnitude of X and Z
	ax, az := vmath.Abs(f.X), vmath.Abs(f.Z)
	// tan(22.5°) ≈ 0.4142
	tan := vmath.FromRatio(4142, 10000)
	switch {
	case az <= vmath.Mul(ax, tan):
		if f.X > 0 {
			return facingGlyphs[0]
		}
		return facingGlyphs[4]
	case ax <= vmath.Mul(az, tan):
		if f.Z > 0 {
			return facingGlyphs[2]
		}
		return facingGlyphs[6]
	case f.X > 0 && f.Z > 0:
		return facingGlyphs[1]
	case f.X < 0 && f.Z > 0:
		return facingGlyphs[3]
	case f.X < 0:
		return facingGlyphs[5]
	}
	return facingGlyphs[7]
}
