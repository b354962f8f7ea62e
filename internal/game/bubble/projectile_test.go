package bubble

import (
	"math"
	"testing"
)

func TestAimDirectionStraightUp(t *testing.T) {
	dx, dy := AimDirection(0)
	if math.Abs(dx) > 1e-9 || math.Abs(dy+1) > 1e-9 {
		t.Errorf("Angle 0 should aim straight up, got (%v, %v)", dx, dy)
	}
}

func TestAimDirectionUnitLength(t *testing.T) {
	for _, angle := range []float64{-1.5, -0.7, 0, 0.3, 1.25, 2.0} {
		dx, dy := AimDirection(angle)
		n := math.Hypot(dx, dy)
		if math.Abs(n-1) > 1e-9 {
			t.Errorf("Direction for angle %v should be unit length, got %v", angle, n)
		}
	}
}

func TestAimDirectionUpwardFloor(t *testing.T) {
	// Even a near-horizontal aim keeps some upward motion
	for _, angle := range []float64{math.Pi / 2, -math.Pi / 2, 3.0, -3.0} {
		_, dy := AimDirection(angle)
		if dy >= 0 {
			t.Errorf("Angle %v should still move upward, got dy=%v", angle, dy)
		}
	}

	// Horizontal sign follows the aim
	dx, _ := AimDirection(math.Pi / 2)
	if dx <= 0 {
		t.Errorf("Positive angle should lean right, got dx=%v", dx)
	}
	dx, _ = AimDirection(-math.Pi / 2)
	if dx >= 0 {
		t.Errorf("Negative angle should lean left, got dx=%v", dx)
	}
}

func TestLaunchSpeed(t *testing.T) {
	p := Launch(ColorRed, 160, 500, 0.5, 14)

	speed := math.Hypot(p.VX, p.VY)
	if math.Abs(speed-14) > 1e-9 {
		t.Errorf("Launch speed should be 14, got %v", speed)
	}
	if p.X != 160 || p.Y != 500 {
		t.Errorf("Launch should start at the given position, got (%v, %v)", p.X, p.Y)
	}
	if p.Color != ColorRed {
		t.Errorf("Launch should carry the shot color, got %v", p.Color)
	}
}

func TestAdvanceWallBounce(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	// Left wall: clamp to the wall plane and flip VX
	p := &Projectile{X: 20, Y: 100, VX: -10, VY: -5}
	p.Advance(g)
	if p.X != 16 {
		t.Errorf("Center should clamp to the left wall at 16, got %v", p.X)
	}
	if p.VX != 10 {
		t.Errorf("VX should flip to 10 on left wall, got %v", p.VX)
	}
	if p.Y != 95 {
		t.Errorf("Vertical motion should be unaffected, got Y=%v", p.Y)
	}

	// Right wall: Width 320, wall plane at 304
	p = &Projectile{X: 300, Y: 100, VX: 10, VY: -5}
	p.Advance(g)
	if p.X != 304 {
		t.Errorf("Center should clamp to the right wall at 304, got %v", p.X)
	}
	if p.VX != -10 {
		t.Errorf("VX should flip to -10 on right wall, got %v", p.VX)
	}
}

func TestAdvanceNoBounceMidfield(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	p := &Projectile{X: 160, Y: 200, VX: 7, VY: -12}
	p.Advance(g)
	if p.X != 167 || p.Y != 188 {
		t.Errorf("Free flight should integrate velocity, got (%v, %v)", p.X, p.Y)
	}
	if p.VX != 7 || p.VY != -12 {
		t.Error("Velocity should be unchanged away from walls")
	}
}

func TestHitCeiling(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}

	p := &Projectile{X: 100, Y: 16, VY: -5}
	if !p.HitCeiling(g) {
		t.Error("Projectile at the top boundary should hit the ceiling")
	}

	p.Y = 17
	if p.HitCeiling(g) {
		t.Error("Projectile below the top boundary should not hit the ceiling")
	}
}

func TestHitBubble(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}
	b := NewBoard(10)
	b.Place(Cell{0, 0}, ColorGreen) // Center (16, 16)

	// Collision radius is 30: distance 24 hits, distance 34 does not
	p := &Projectile{X: 40, Y: 16}
	if !p.HitBubble(b, g) {
		t.Error("Projectile within collision range should hit")
	}

	p.X = 50
	if p.HitBubble(b, g) {
		t.Error("Projectile outside collision range should not hit")
	}
}

func TestHitBubbleEmptyBoard(t *testing.T) {
	g := Geometry{Radius: 16, Margin: 0, GridTop: 0, Cols: 10}
	b := NewBoard(10)

	p := &Projectile{X: 160, Y: 100}
	if p.HitBubble(b, g) {
		t.Error("Empty board should never report a hit")
	}
}
