package input

import "github.com/lixenwraith/backdrop/vmath"

// Controller tracks the pointer in normalized device coordinates
// The target holds the last value indefinitely between events
type Controller struct {
	x, y   float64
	events uint64
}

// NewController returns a controller targeting the viewport center
func NewController() *Controller {
	return &Controller{}
}

// OnPointerMove maps a viewport point into [-1, 1] with y flipped
// A degenerate viewport leaves the target unchanged
func (c *Controller) OnPointerMove(clientX, clientY, width, height float64) {
	x, y, ok := vmath.NDC(clientX, clientY, width, height)
	if !ok {
		return
	}
	c.x, c.y = x, y
	c.events++
}

// Target returns the last stored target, (0, 0) before any event
func (c *Controller) Target() (x, y float64) {
	return c.x, c.y
}

// Events returns the number of accepted pointer moves
func (c *Controller) Events() uint64 {
	return c.events
}

// Reset returns the target to the viewport center
func (c *Controller) Reset() {
	c.x, c.y = 0, 0
}
