package physics

import (
	"errors"
	"fmt"
)

// Container is the rectangle balls are confined to. It is owned by the
// driver and shared by reference; the physics code never modifies it.
type Container struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Regime selects the motion model of a ball.
type Regime string

const (
	RegimeHorizontal Regime = "HORIZONTAL"
	RegimeVertical   Regime = "VERTICAL"
)

// BallState describes where a ball is in its motion lifecycle.
type BallState string

const (
	StateMoving       BallState = "MOVING"        // horizontal, still decaying
	StateAirborne     BallState = "AIRBORNE"      // vertical, off the floor
	StateFloorContact BallState = "FLOOR_CONTACT" // vertical, on the floor but moving
	StateResting      BallState = "RESTING"       // update is a no-op
)

var ErrUnknownRegime = errors.New("unknown regime")

// Body is implemented by both ball variants. Collision is shared through
// the embedded Ball; Update carries the regime-specific integration.
type Body interface {
	Core() *Ball
	Collision(other Body)
	Update()
	Regime() Regime
	State() BallState
}

// Ball holds the state common to every variant.
type Ball struct {
	Position  Vector2d   `json:"position"`
	Velocity  Vector2d   `json:"velocity"`
	Radius    float64    `json:"radius"`
	Container *Container `json:"-"`
}

func newBall(pos, vel Vector2d, radius float64, c *Container, speedFactor float64) Ball {
	return Ball{
		Position:  pos.Clone(),
		Velocity:  vel.Mult(speedFactor),
		Radius:    radius,
		Container: c,
	}
}

// Core returns the shared ball state.
func (b *Ball) Core() *Ball {
	return b
}

// Collision resolves an elastic collision with other if the two overlap.
func (b *Ball) Collision(other Body) {
	Collide(b, other.Core())
}

// floor is the Y coordinate of the center when the ball touches the bottom wall.
func (b *Ball) floor() float64 {
	return b.Container.Height - b.Radius
}

// KineticEnergy assumes unit mass.
func (b *Ball) KineticEnergy() float64 {
	return 0.5 * b.Velocity.Dot(b.Velocity)
}

// Collide resolves an equal-mass elastic collision between a and b when
// their circles overlap or touch. Afterwards each ball is pushed by half the
// overlap along its own new direction of travel. A ball whose velocity is
// near zero is not displaced. Coincident centers have no contact normal, so
// the impulse is skipped and only separation runs.
func Collide(a, b *Ball) {
	d := a.Position.Sub(b.Position)
	dist := d.Length()
	overlap := a.Radius + b.Radius - dist
	if overlap < 0 {
		return
	}

	if dist > 0 {
		coeff := a.Velocity.Sub(b.Velocity).Dot(d) / (dist * dist)
		a.Velocity = a.Velocity.Sub(d.Mult(coeff))
		b.Velocity = b.Velocity.Sub(d.Opposite().Mult(coeff))
	}

	half := overlap / 2
	a.Position = a.Position.Add(a.Velocity.SafeNormalize().Mult(half))
	b.Position = b.Position.Add(b.Velocity.SafeNormalize().Mult(half))
}

// NewBody builds a ball of the given regime.
func NewBody(regime Regime, pos, vel Vector2d, radius float64, c *Container) (Body, error) {
	switch regime {
	case RegimeHorizontal:
		return NewHorizontalBall(pos, vel, radius, c), nil
	case RegimeVertical:
		return NewVerticalBall(pos, vel, radius, c), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegime, regime)
	}
}

// clampAxis pins p into [lo, hi]. hit reports whether p was at or beyond a
// bound, and atHigh whether that bound was hi.
func clampAxis(p, lo, hi float64) (clamped float64, hit, atHigh bool) {
	if p <= lo {
		return lo, true, false
	}
	if p >= hi {
		return hi, true, true
	}
	return p, false, false
}
