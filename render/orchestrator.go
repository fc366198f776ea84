package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline under the world lock: clear, render all, show
func (o *Orchestrator) RenderFrame(world *engine.World, paused, muted bool) {
	world.Lock()
	defer world.Unlock()

	w, h := o.screen.Size()
	ctx := NewContext(world, w, h)
	ctx.IsPaused = paused
	ctx.IsMuted = muted

	o.screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	o.screen.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}
	o.screen.Show()
}

// drawText writes s from (x, y), clipped at maxX
func drawText(scr tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= maxX {
			break
		}
		scr.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
