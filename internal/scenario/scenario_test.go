package scenario

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ballpit/engine/internal/physics"
)

const tableYAML = `
name: break
regime: HORIZONTAL
width: 400
height: 200
ticks: 100
balls:
  - {x: 60, y: 100, vx: 40, vy: 0, radius: 10}
  - {x: 200, y: 100, vx: 0, vy: 0, radius: 10}
`

func TestLoadYAML(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(tableYAML))
	require.NoError(t, err)

	assert.Equal(t, "break", s.Name)
	assert.Equal(t, physics.RegimeHorizontal, s.Regime)
	assert.Equal(t, 100, s.Ticks)
	assert.False(t, s.StopWhenSettled)
	require.Len(t, s.Balls, 2)
	assert.Equal(t, BallSpec{X: 60, Y: 100, VX: 40, VY: 0, Radius: 10}, s.Balls[0])
}

func TestLoadYAMLRejectsUnknownFields(t *testing.T) {
	_, err := LoadYAML(strings.NewReader(tableYAML + "gravity: 9.81\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	s, err := LoadFile("testdata/drop.yaml")
	require.NoError(t, err)

	assert.Equal(t, "drop", s.Name)
	assert.Equal(t, physics.RegimeVertical, s.Regime)
	assert.True(t, s.StopWhenSettled)
	assert.Len(t, s.Balls, 3)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Scenario {
		return Scenario{
			Regime: physics.RegimeVertical,
			Width:  100,
			Height: 100,
			Balls:  []BallSpec{{X: 50, Y: 50, Radius: 5}},
		}
	}

	tests := []struct {
		name   string
		mutate func(s *Scenario)
	}{
		{"unknown regime", func(s *Scenario) { s.Regime = "SIDEWAYS" }},
		{"zero width", func(s *Scenario) { s.Width = 0 }},
		{"negative height", func(s *Scenario) { s.Height = -1 }},
		{"negative ticks", func(s *Scenario) { s.Ticks = -5 }},
		{"no balls", func(s *Scenario) { s.Balls = nil }},
		{"zero radius", func(s *Scenario) { s.Balls[0].Radius = 0 }},
		{"ball too big", func(s *Scenario) { s.Balls[0].Radius = 60 }},
		{"nan position", func(s *Scenario) { s.Balls[0].X = math.NaN() }},
	}

	s := valid()
	require.NoError(t, s.Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidScenario)
		})
	}
}

func TestValidateUnknownRegimeWrapsPhysicsError(t *testing.T) {
	s := Scenario{Regime: "SIDEWAYS", Width: 10, Height: 10, Balls: []BallSpec{{Radius: 1}}}
	assert.ErrorIs(t, s.Validate(), physics.ErrUnknownRegime)
}

func TestBuild(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(tableYAML))
	require.NoError(t, err)

	w, err := s.Build()
	require.NoError(t, err)

	require.Len(t, w.Bodies, 2)
	assert.Equal(t, physics.RegimeHorizontal, w.Bodies[0].Regime())
	assert.InDelta(t, 40*physics.HorizontalSpeedFactor, w.Bodies[0].Core().Velocity.X, 1e-9)
	assert.Same(t, w.Container, w.Bodies[1].Core().Container)
}

func TestBuildOutOfBoundsBallIsClamped(t *testing.T) {
	s := &Scenario{
		Regime: physics.RegimeHorizontal,
		Width:  100,
		Height: 100,
		Balls:  []BallSpec{{X: 150, Y: 50, VX: 10, Radius: 5}},
	}
	w, err := s.Build()
	require.NoError(t, err)

	w.Step()

	assert.Equal(t, 95.0, w.Bodies[0].Core().Position.X)
}

func TestRandomIsReproducible(t *testing.T) {
	a, err := Random("a", physics.RegimeVertical, 300, 200, 10, 8, 50, 99)
	require.NoError(t, err)
	b, err := Random("b", physics.RegimeVertical, 300, 200, 10, 8, 50, 99)
	require.NoError(t, err)

	assert.Equal(t, a.Balls, b.Balls)
	for i := range a.Balls {
		for j := i + 1; j < len(a.Balls); j++ {
			d := math.Hypot(a.Balls[i].X-a.Balls[j].X, a.Balls[i].Y-a.Balls[j].Y)
			assert.Greater(t, d, 16.0)
		}
	}
}

func TestRandomTooCrowded(t *testing.T) {
	_, err := Random("crowded", physics.RegimeHorizontal, 50, 50, 100, 10, 5, 1)
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

func TestDropScenarioStaysContained(t *testing.T) {
	s, err := LoadFile("testdata/drop.yaml")
	require.NoError(t, err)
	w, err := s.Build()
	require.NoError(t, err)

	report, err := w.Run(context.Background(), s.Ticks, s.StopWhenSettled)
	require.NoError(t, err)

	for _, b := range report.Balls {
		assert.GreaterOrEqual(t, b.Position.Y, b.Radius)
		assert.LessOrEqual(t, b.Position.Y, s.Height-b.Radius)
	}
}
