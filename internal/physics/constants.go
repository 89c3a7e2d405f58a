package physics

// Tuning constants for both motion regimes. Velocities are in simulation
// units per tick; every update advances the world by exactly one tick.
const (
	// NearZero is the length below which a vector is treated as stationary.
	NearZero = 0.01

	// Horizontal (tabletop) regime.
	HorizontalSpeedFactor   = 0.2
	HorizontalAirResistance = 0.99
	WallHitResistance       = 0.8

	// Vertical (falling) regime.
	VerticalSpeedFactor   = 0.07
	VerticalAirResistance = 0.998
	FloorHitResistance    = 0.7
	Gravity               = 0.05
)
