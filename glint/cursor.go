package glint

import "github.com/go-gl/glfw/v3.3/glfw"

// StandardCursor selects one of the cursor shapes every platform provides.
type StandardCursor int

const (
	CursorArrow StandardCursor = iota
	CursorIBeam
	CursorCrosshair
	CursorHand
	CursorResizeH
	CursorResizeV
)

var cursorShapes = map[StandardCursor]glfw.StandardCursor{
	CursorArrow:     glfw.ArrowCursor,
	CursorIBeam:     glfw.IBeamCursor,
	CursorCrosshair: glfw.CrosshairCursor,
	CursorHand:      glfw.HandCursor,
	CursorResizeH:   glfw.HResizeCursor,
	CursorResizeV:   glfw.VResizeCursor,
}

// standardCursor lazily creates the native cursor objects. They stay
// alive until glfw terminates.
func (r *Runner) standardCursor(cursor StandardCursor) *glfw.Cursor {
	if c, ok := r.cursors[cursor]; ok {
		return c
	}

	shape, ok := cursorShapes[cursor]
	if !ok {
		shape = glfw.ArrowCursor
	}

	c := glfw.CreateStandardCursor(shape)
	r.cursors[cursor] = c

	return c
}
