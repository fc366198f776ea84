package render

import (
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	World    *engine.World
	IsPaused bool
	IsMuted  bool

	// Field viewport in screen cells
	FieldX      int
	FieldY      int
	FieldWidth  int
	FieldHeight int

	// Screen size
	Width  int
	Height int
}

// statusRows is the height reserved under the field for the status bar
const statusRows = 6

// NewContext lays the field out above the status bar, keeping the arena aspect roughly square in cells
func NewContext(world *engine.World, width, height int) Context {
	ctx := Context{World: world, Width: width, Height: height}
	ctx.FieldHeight = max(height-statusRows, 3)
	// Terminal cells are about twice as tall as wide
	ctx.FieldWidth = min(width, ctx.FieldHeight*2*vmath.ToInt(parameter.ArenaHalfWidth)/vmath.ToInt(parameter.ArenaHalfLength))
	ctx.FieldWidth = max(ctx.FieldWidth, 3)
	ctx.FieldX = max((width-ctx.FieldWidth)/2, 0)
	return ctx
}

// Project maps a world position onto the field, top of the screen is +Z
// ok is false outside the field
func (c Context) Project(pos vmath.Vec3) (x, y int, ok bool) {
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return 0, 0, false
	}
	// Normalized [0, Scale] across the arena
	u := vmath.Div(pos.X+parameter.ArenaHalfWidth, 2*parameter.ArenaHalfWidth)
	v := vmath.Div(parameter.ArenaHalfLength-pos.Z, 2*parameter.ArenaHalfLength)
	if u < 0 || u > vmath.Scale || v < 0 || v > vmath.Scale {
		return 0, 0, false
	}
	x = c.FieldX + min(vmath.ToInt(u*int64(c.FieldWidth-1)+vmath.Half), c.FieldWidth-1)
	y = c.FieldY + min(vmath.ToInt(v*int64(c.FieldHeight-1)+vmath.Half), c.FieldHeight-1)
	return x, y, true
}
