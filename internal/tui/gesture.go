package tui

// gesture turns mouse press/motion/release cells into a drag relative to the
// press point. A release that never moved is a tap.
type gesture struct {
	active  bool
	moved   bool
	originX int
	originY int
}

func (g *gesture) press(x, y int) {
	*g = gesture{active: true, originX: x, originY: y}
}

// motion reports the displacement once the pointer has left the press cell.
func (g *gesture) motion(x, y int) (dx, dy int, ok bool) {
	if !g.active {
		return 0, 0, false
	}
	dx, dy = x-g.originX, y-g.originY
	if !g.moved && dx == 0 && dy == 0 {
		return 0, 0, false
	}
	g.moved = true
	return dx, dy, true
}

// release ends the gesture. moved is false for a tap.
func (g *gesture) release(x, y int) (dx, dy int, moved, ok bool) {
	if !g.active {
		return 0, 0, false, false
	}
	dx, dy, moved = x-g.originX, y-g.originY, g.moved
	*g = gesture{}
	return dx, dy, moved, true
}
