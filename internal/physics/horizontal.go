package physics

// HorizontalBall moves on a frictionless tabletop: no gravity, a constant
// air drag every tick and an extra loss on every wall hit.
type HorizontalBall struct {
	Ball
}

// NewHorizontalBall scales vel by HorizontalSpeedFactor before storing it.
func NewHorizontalBall(pos, vel Vector2d, radius float64, c *Container) *HorizontalBall {
	return &HorizontalBall{Ball: newBall(pos, vel, radius, c, HorizontalSpeedFactor)}
}

func (h *HorizontalBall) Regime() Regime {
	return RegimeHorizontal
}

func (h *HorizontalBall) State() BallState {
	if h.Velocity.IsNearZero() {
		return StateResting
	}
	return StateMoving
}

// Update advances the ball by one tick. A ball with near-zero velocity is
// left untouched.
func (h *HorizontalBall) Update() {
	if h.Velocity.IsNearZero() {
		return
	}

	h.Position = h.Position.Add(h.Velocity)

	x, hitX, _ := clampAxis(h.Position.X, h.Radius, h.Container.Width-h.Radius)
	if hitX {
		h.Position = NewVector2d(x, h.Position.Y)
		h.Velocity = NewVector2d(-h.Velocity.X, h.Velocity.Y).Mult(WallHitResistance)
	}

	// A corner hit applies WallHitResistance twice in the same tick.
	y, hitY, _ := clampAxis(h.Position.Y, h.Radius, h.Container.Height-h.Radius)
	if hitY {
		h.Position = NewVector2d(h.Position.X, y)
		h.Velocity = NewVector2d(h.Velocity.X, -h.Velocity.Y).Mult(WallHitResistance)
	}

	h.Velocity = h.Velocity.Mult(HorizontalAirResistance)
}
