package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/vmath"
)

// FieldRenderer draws the pitch, its walls and the halfway line
type FieldRenderer struct{}

func NewFieldRenderer() *FieldRenderer { return &FieldRenderer{} }

func (r *FieldRenderer) Render(ctx Context, scr tcell.Screen) {
	pitch := tcell.StyleDefault.Background(RgbField)
	line := pitch.Foreground(RgbFieldLine)

	x0, y0 := ctx.FieldX, ctx.FieldY
	x1, y1 := x0+ctx.FieldWidth-1, y0+ctx.FieldHeight-1
	_, mid, _ := ctx.Project(vmath.Vec3{})

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch, style := ' ', pitch
			switch {
			case (x == x0 || x == x1) && (y == y0 || y == y1):
				ch, style = '+', line
			case x == x0 || x == x1:
				ch, style = '|', line
			case y == y0 || y == y1:
				ch, style = '-', line
			case y == mid:
				ch, style = '·', line
			}
			scr.SetContent(x, y, ch, nil, style)
		}
	}
}
