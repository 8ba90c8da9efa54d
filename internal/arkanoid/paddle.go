package arkanoid

import "math"

// PaddleState describes the paddle's current form.
type PaddleState int

const (
	PaddleNormal PaddleState = iota
	PaddleWide
	PaddleLaser
	PaddleExploding
)

// Segment bounce angles in degrees. The paddle is split into equal
// segments; the segment the ball lands on fully determines the bounce
// direction. Wide paddles get two extra, shallower outer segments.
var (
	segmentAngles     = []float64{-130, -115, -100, -80, -65, -50}
	segmentAnglesWide = []float64{-150, -130, -115, -100, -80, -65, -50, -30}
)

// Paddle is the player's vaus. X is the left edge in playfield cells.
type Paddle struct {
	X     float64
	Y     int
	Width int
	State PaddleState
}

// Move shifts the paddle horizontally, clamped to [minX, maxX].
func (p *Paddle) Move(dx, minX, maxX float64) {
	p.X += dx
	if p.X < minX {
		p.X = minX
	}
	if p.X > maxX {
		p.X = maxX
	}
}

// CellX returns the leftmost cell the paddle occupies.
func (p *Paddle) CellX() int {
	return int(math.Floor(p.X))
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + float64(p.Width)/2
}

// Covers returns true if the given x position is over the paddle.
func (p *Paddle) Covers(x float64) bool {
	return x >= p.X && x < p.X+float64(p.Width)
}

// SetWidth changes the paddle width, keeping its center in place.
func (p *Paddle) SetWidth(width int) {
	center := p.CenterX()
	p.Width = width
	p.X = center - float64(width)/2
}

// BounceAngle returns the bounce heading in radians for a ball hitting
// the paddle at the given x position.
func (p *Paddle) BounceAngle(ballX float64) float64 {
	angles := segmentAngles
	if p.State == PaddleWide {
		angles = segmentAnglesWide
	}

	segWidth := float64(p.Width) / float64(len(angles))
	seg := int((ballX - p.X) / segWidth)
	if seg < 0 {
		seg = 0
	}
	if seg >= len(angles) {
		seg = len(angles) - 1
	}
	return angles[seg] * math.Pi / 180
}

// Bolt is a laser projectile fired from one of the paddle's cannons.
type Bolt struct {
	X, Y   float64
	Active bool
}

// CellX returns the x cell the bolt occupies.
func (b *Bolt) CellX() int {
	return int(math.Floor(b.X))
}

// CellY returns the y cell the bolt occupies.
func (b *Bolt) CellY() int {
	return int(math.Floor(b.Y))
}
