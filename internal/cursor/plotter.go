package cursor

import "math"

// DefaultPathCapacity bounds the retained cursor trail.
const DefaultPathCapacity = 400

// Plotter accumulates roll-compensated motion deltas into an absolute
// cursor position and keeps a bounded trail of recent positions. The
// position is unbounded; clipping to a visible region is the viewer's
// concern.
type Plotter struct {
	x, y float64
	path *PathBuffer
}

// NewPlotter creates a Plotter whose trail holds pathCapacity points.
// Non-positive capacities fall back to DefaultPathCapacity.
func NewPlotter(pathCapacity int) *Plotter {
	if pathCapacity <= 0 {
		pathCapacity = DefaultPathCapacity
	}
	return &Plotter{path: NewPathBuffer(pathCapacity)}
}

// Advance rotates (dx, dy) by the current roll angle so on-screen motion
// follows the device's physical orientation, moves the cursor, and records
// the new position on the trail. Returns the new absolute position.
func (p *Plotter) Advance(dx, dy, rollDeg float64) (x, y float64) {
	rollRad := rollDeg * math.Pi / 180.0
	sin, cos := math.Sincos(rollRad)

	p.x += dx*cos - dy*sin
	p.y += dx*sin + dy*cos

	p.path.Push(Point{X: p.x, Y: p.y})

	return p.x, p.y
}

// Position returns the current absolute cursor position.
func (p *Plotter) Position() (x, y float64) {
	return p.x, p.y
}

// Path returns the trail oldest-first, as a copy.
func (p *Plotter) Path() []Point {
	return p.path.Points()
}

// Reset returns the cursor to the origin and clears the trail.
func (p *Plotter) Reset() {
	p.x = 0
	p.y = 0
	p.path.Reset()
}
