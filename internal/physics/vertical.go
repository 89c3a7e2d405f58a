package physics

import "math"

// VerticalBall falls under gravity, loses energy on every floor bounce and
// is slowed by a light air drag. It settles on the floor once the bounces
// die out.
type VerticalBall struct {
	Ball
}

// NewVerticalBall scales vel by VerticalSpeedFactor before storing it.
func NewVerticalBall(pos, vel Vector2d, radius float64, c *Container) *VerticalBall {
	return &VerticalBall{Ball: newBall(pos, vel, radius, c, VerticalSpeedFactor)}
}

func (v *VerticalBall) Regime() Regime {
	return RegimeVertical
}

func (v *VerticalBall) State() BallState {
	if v.Position.Y != v.floor() {
		return StateAirborne
	}
	if v.Velocity.IsNearZero() {
		return StateResting
	}
	return StateFloorContact
}

// Update advances the ball by one tick. A resting ball is left untouched
// until a collision gives it velocity again.
func (v *VerticalBall) Update() {
	floor := v.floor()
	if v.Velocity.IsNearZero() && v.Position.Y == floor {
		return
	}

	v.Position = v.Position.Add(v.Velocity)

	x, hitX, _ := clampAxis(v.Position.X, v.Radius, v.Container.Width-v.Radius)
	if hitX {
		v.Position = NewVector2d(x, v.Position.Y)
		v.Velocity = NewVector2d(-v.Velocity.X, v.Velocity.Y)
	}

	y, hitY, atFloor := clampAxis(v.Position.Y, v.Radius, floor)
	if hitY {
		v.Position = NewVector2d(v.Position.X, y)
		if atFloor {
			v.Velocity = v.Velocity.Mult(FloorHitResistance)
		}
		v.Velocity = NewVector2d(v.Velocity.X, -v.Velocity.Y)
	}

	v.Velocity = v.Velocity.Mult(VerticalAirResistance)

	if v.Position.Y == floor && v.cannotLiftOff() {
		v.Velocity = NewVector2d(v.Velocity.X, 0)
		return
	}
	v.Velocity = v.Velocity.Add(NewVector2d(0, Gravity))
}

// cannotLiftOff reports whether a ball on the floor is slow enough to stop
// bouncing: its vertical speed is below NearZero, or one tick of gravity
// would already turn it back into the floor.
func (v *VerticalBall) cannotLiftOff() bool {
	return math.Abs(v.Velocity.Y) < NearZero || v.Velocity.Y+Gravity >= 0
}
