package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/content"
	"github.com/lixenwraith/arena/system"
	"github.com/lixenwraith/arena/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newArena(t *testing.T) *system.Arena {
	t.Helper()
	cat := content.MustDefault()
	cfg, err := system.ArenaFromContent(cat)
	if err != nil {
		t.Fatalf("ArenaFromContent: %v", err)
	}
	return system.NewArena(cat, cfg)
}

func rowText(scr tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := scr.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestProjectCorners(t *testing.T) {
	ctx := NewContext(nil, 80, 40)

	x, y, ok := ctx.Project(vmath.Vec3{Z: vmath.FromInt(30), X: vmath.FromInt(-20)})
	if !ok || x != ctx.FieldX || y != ctx.FieldY {
		t.Errorf("far left corner at (%d,%d) ok=%v", x, y, ok)
	}
	x, y, ok = ctx.Project(vmath.Vec3{Z: vmath.FromInt(-30), X: vmath.FromInt(20)})
	if !ok || x != ctx.FieldX+ctx.FieldWidth-1 || y != ctx.FieldY+ctx.FieldHeight-1 {
		t.Errorf("near right corner at (%d,%d) ok=%v", x, y, ok)
	}
	if _, _, ok := ctx.Project(vmath.Vec3{X: vmath.FromInt(21)}); ok {
		t.Error("outside position projected")
	}
}

func TestFacingGlyph(t *testing.T) {
	tests := []struct {
		dir  vmath.Vec3
		want rune
	}{
		{vmath.Vec3{Z: vmath.Scale}, '^'},
		{vmath.Vec3{Z: -vmath.Scale}, 'v'},
		{vmath.Vec3{X: vmath.Scale}, '>'},
		{vmath.Vec3{X: -vmath.Scale}, '<'},
		{vmath.Vec3{X: vmath.Scale, Z: vmath.Scale}, '/'},
		{vmath.Vec3{}, '@'},
	}
	for _, tt := range tests {
		if got := facingGlyph(tt.dir); got != tt.want {
			t.Errorf("facingGlyph(%+v) = %c, want %c", tt.dir, got, tt.want)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	const w, h = 80, 40
	screen := newScreen(t, w, h)
	arena := newArena(t)
	arena.World.Step()

	o := NewOrchestrator(screen)
	o.Register(NewStatusRenderer(), PriorityUI)
	o.Register(NewEntitiesRenderer(), PriorityEntities)
	o.Register(NewFieldRenderer(), PriorityField)
	o.RenderFrame(arena.World, true, false)

	ctx := NewContext(arena.World, w, h)
	if r, _, _, _ := screen.GetContent(ctx.FieldX, ctx.FieldY); r != '+' {
		t.Errorf("field corner = %q", r)
	}

	home := arena.Actors[0]
	body := arena.World.Components.Body.Ref(home)
	x, y, ok := ctx.Project(body.Position)
	if !ok {
		t.Fatal("home actor off the field")
	}
	r, _, style, _ := screen.GetContent(x, y)
	if r != '^' {
		t.Errorf("home actor glyph = %q, want '^'", r)
	}
	if fg, _, _ := style.Decompose(); fg != RgbTeamHome {
		t.Errorf("home actor color = %v", fg)
	}

	status := rowText(screen, ctx.FieldY+ctx.FieldHeight, w)
	if !strings.Contains(status, "frame 1") || !strings.Contains(status, "[PAUSED]") {
		t.Errorf("status header = %q", status)
	}
	actorRow := rowText(screen, ctx.FieldY+ctx.FieldHeight+1, w)
	if !strings.Contains(actorRow, "home") || !strings.Contains(actorRow, "alive") {
		t.Errorf("actor status row = %q", actorRow)
	}
}

func TestRenderSkipsHiddenLayers(t *testing.T) {
	screen := newScreen(t, 40, 20)
	arena := newArena(t)

	o := NewOrchestrator(screen)
	o.Register(hiddenRenderer{}, PriorityOverlay)
	o.RenderFrame(arena.World, false, false)

	if r, _, _, _ := screen.GetContent(0, 0); r == '!' {
		t.Error("invisible renderer drew")
	}
}

type hiddenRenderer struct{}

func (hiddenRenderer) Render(_ Context, scr tcell.Screen) { scr.SetContent(0, 0, '!', nil, tcell.StyleDefault) }
func (hiddenRenderer) IsVisible() bool                    { return false }
