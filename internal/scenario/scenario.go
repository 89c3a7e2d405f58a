package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ballpit/engine/internal/physics"
	"github.com/ballpit/engine/internal/sim"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// BallSpec describes one ball's initial state. Velocity is given in input
// units and is scaled by the regime's speed factor on construction.
type BallSpec struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	VX     float64 `json:"vx" yaml:"vx"`
	VY     float64 `json:"vy" yaml:"vy"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Scenario is a container plus the balls that start in it.
type Scenario struct {
	Name            string         `json:"name" yaml:"name"`
	Regime          physics.Regime `json:"regime" yaml:"regime"`
	Width           float64        `json:"width" yaml:"width"`
	Height          float64        `json:"height" yaml:"height"`
	Ticks           int            `json:"ticks" yaml:"ticks"`
	StopWhenSettled bool           `json:"stop_when_settled" yaml:"stop_when_settled"`
	Balls           []BallSpec     `json:"balls" yaml:"balls"`
}

// LoadYAML decodes and validates a scenario.
func LoadYAML(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a YAML scenario from path. An unnamed scenario takes the
// path as its name.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks that the scenario can be built. Balls may start outside
// the container as long as they fit inside it; the first update clamps them.
func (s *Scenario) Validate() error {
	if s.Regime != physics.RegimeHorizontal && s.Regime != physics.RegimeVertical {
		return fmt.Errorf("%w: %w: %q", ErrInvalidScenario, physics.ErrUnknownRegime, s.Regime)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: container must have positive size, got %vx%v", ErrInvalidScenario, s.Width, s.Height)
	}
	if s.Ticks < 0 {
		return fmt.Errorf("%w: ticks must not be negative", ErrInvalidScenario)
	}
	if len(s.Balls) == 0 {
		return fmt.Errorf("%w: no balls", ErrInvalidScenario)
	}
	for i, b := range s.Balls {
		if b.Radius <= 0 {
			return fmt.Errorf("%w: ball %d: radius must be positive", ErrInvalidScenario, i)
		}
		if 2*b.Radius > s.Width || 2*b.Radius > s.Height {
			return fmt.Errorf("%w: ball %d: radius %v does not fit the container", ErrInvalidScenario, i, b.Radius)
		}
		for _, f := range []float64{b.X, b.Y, b.VX, b.VY} {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: ball %d: non-finite value", ErrInvalidScenario, i)
			}
		}
	}
	return nil
}

// Build creates a world holding the scenario's balls.
func (s *Scenario) Build() (*sim.World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	container := &physics.Container{Width: s.Width, Height: s.Height}
	world := sim.NewWorld(container)
	for _, b := range s.Balls {
		body, err := physics.NewBody(
			s.Regime,
			physics.NewVector2d(b.X, b.Y),
			physics.NewVector2d(b.VX, b.VY),
			b.Radius,
			container,
		)
		if err != nil {
			return nil, err
		}
		world.Add(body)
	}
	return world, nil
}

// Random places count non-overlapping balls of the given radius at random
// positions with random velocities. The same seed always yields the same
// scenario. It returns an error if the balls cannot be placed.
func Random(name string, regime physics.Regime, width, height float64, count int, radius float64, maxSpeed float64, seed int64) (*Scenario, error) {
	rng := rand.New(rand.NewSource(seed))
	s := &Scenario{
		Name:   name,
		Regime: regime,
		Width:  width,
		Height: height,
		Balls:  make([]BallSpec, 0, count),
	}

	const maxAttempts = 1000
	for len(s.Balls) < count {
		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			x := radius + rng.Float64()*(width-2*radius)
			y := radius + rng.Float64()*(height-2*radius)
			if overlapsAny(s.Balls, x, y, radius) {
				continue
			}
			s.Balls = append(s.Balls, BallSpec{
				X:      x,
				Y:      y,
				VX:     (rng.Float64()*2 - 1) * maxSpeed,
				VY:     (rng.Float64()*2 - 1) * maxSpeed,
				Radius: radius,
			})
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: could not place ball %d of %d without overlap", ErrInvalidScenario, len(s.Balls), count)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func overlapsAny(balls []BallSpec, x, y, radius float64) bool {
	for _, b := range balls {
		if math.Hypot(b.X-x, b.Y-y) <= b.Radius+radius {
			return true
		}
	}
	return false
}
