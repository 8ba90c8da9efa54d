package arkanoid

import "math"

// Ball is a single ball. Angles are in radians measured clockwise from
// the positive x axis (y grows downward), speed in cells per tick.
type Ball struct {
	X, Y  float64
	Angle float64
	Speed float64

	// Anchored balls sit on the paddle (round intro or Catch powerup)
	// and follow it until released.
	Anchored bool
	AnchorDX float64 // x offset from the paddle's left edge

	Active bool
}

// Move advances the ball along its heading.
func (b *Ball) Move() {
	b.X += math.Cos(b.Angle) * b.Speed
	b.Y += math.Sin(b.Angle) * b.Speed
}

// CellX returns the x cell the ball occupies.
func (b *Ball) CellX() int {
	return int(math.Floor(b.X))
}

// CellY returns the y cell the ball occupies.
func (b *Ball) CellY() int {
	return int(math.Floor(b.Y))
}

// ReflectX mirrors the heading across the vertical axis (side wall hit).
func (b *Ball) ReflectX() {
	b.Angle = normalizeAngle(math.Pi - b.Angle)
}

// ReflectY mirrors the heading across the horizontal axis (top/bottom hit).
func (b *Ball) ReflectY() {
	b.Angle = normalizeAngle(-b.Angle)
}

// Reverse turns the heading around (corner hit).
func (b *Ball) Reverse() {
	b.Angle = normalizeAngle(b.Angle + math.Pi)
}

// MovingDown returns true if the ball is heading toward the paddle.
func (b *Ball) MovingDown() bool {
	return math.Sin(b.Angle) > 0
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
