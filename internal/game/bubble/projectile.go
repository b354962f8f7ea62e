package bubble

import "math"

// minUpward is the minimum magnitude of the upward velocity component.
// Shots can never travel horizontally or downward; shallow aims get
// steered up to this floor and renormalized.
const minUpward = 0.15

// Projectile is a bubble in flight. Position and velocity are in world
// units; the velocity vector keeps constant magnitude, only its X sign
// changes on wall bounces.
type Projectile struct {
	Color BubbleColor
	X, Y  float64
	VX    float64
	VY    float64
}

// AimDirection converts an aim angle into a unit direction vector.
// Angle 0 points straight up; positive angles lean right. The vertical
// component is clamped to at least minUpward toward the ceiling and the
// vector renormalized, so extreme aim angles still produce an upward
// shot.
func AimDirection(angle float64) (dx, dy float64) {
	dx = math.Sin(angle)
	dy = -math.Cos(angle)
	if dy > -minUpward {
		dy = -minUpward
	}
	n := math.Sqrt(dx*dx + dy*dy)
	return dx / n, dy / n
}

// Launch creates a projectile at (x, y) flying along the aim angle with
// the given speed.
func Launch(color BubbleColor, x, y, angle, speed float64) *Projectile {
	dx, dy := AimDirection(angle)
	return &Projectile{
		Color: color,
		X:     x,
		Y:     y,
		VX:    dx * speed,
		VY:    dy * speed,
	}
}

// Advance integrates one tick of motion and reflects off the side walls.
// On wall contact the center is clamped to the wall plane and the
// horizontal velocity sign flips, so the projectile never escapes the
// play area even at high speed.
func (p *Projectile) Advance(geom Geometry) {
	p.X += p.VX
	p.Y += p.VY

	left := geom.Radius + geom.Margin
	right := geom.Width() - geom.Radius - geom.Margin
	if p.X < left {
		p.X = left
		p.VX = -p.VX
	} else if p.X > right {
		p.X = right
		p.VX = -p.VX
	}
}

// HitCeiling reports whether the projectile reached the top of the play
// area.
func (p *Projectile) HitCeiling(geom Geometry) bool {
	return p.Y <= geom.GridTop+geom.Radius
}

// HitBubble reports whether the projectile is within collision range of
// any placed bubble. The ceiling check takes priority; callers must test
// HitCeiling first.
func (p *Projectile) HitBubble(b *Board, geom Geometry) bool {
	cr := geom.CollisionRadius()
	cr2 := cr * cr
	hit := false
	b.ForEach(func(bub *Bubble) {
		if hit {
			return
		}
		bx, by := geom.CellToWorld(bub.Cell)
		dx, dy := bx-p.X, by-p.Y
		if dx*dx+dy*dy <= cr2 {
			hit = true
		}
	})
	return hit
}
