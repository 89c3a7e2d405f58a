package sim

import (
	"context"
	"encoding/json"
	"log"

	"github.com/cespare/xxhash/v2"

	"github.com/ballpit/engine/internal/physics"
)

// BallSnapshot is a serializable view of one ball.
type BallSnapshot struct {
	ID       int               `json:"id"`
	Regime   physics.Regime    `json:"regime"`
	Position physics.Vector2d  `json:"position"`
	Velocity physics.Vector2d  `json:"velocity"`
	Radius   float64           `json:"radius"`
	State    physics.BallState `json:"state"`
}

// Report summarizes a Run.
type Report struct {
	Ticks   int            `json:"ticks"`
	Settled bool           `json:"settled"`
	Energy  float64        `json:"energy"`
	Digest  uint64         `json:"digest"`
	Balls   []BallSnapshot `json:"balls"`
}

// World drives a set of balls sharing one container. Each Step resolves
// every pairwise collision before any ball is updated.
//
// A World is not safe for concurrent use. Separate worlds may be stepped
// from separate goroutines.
type World struct {
	Container *physics.Container
	Bodies    []physics.Body
	Tick      int
}

func NewWorld(c *physics.Container) *World {
	return &World{
		Container: c,
		Bodies:    make([]physics.Body, 0),
	}
}

// Add appends a body and returns its ID (its index in the world).
func (w *World) Add(b physics.Body) int {
	w.Bodies = append(w.Bodies, b)
	return len(w.Bodies) - 1
}

// Step advances the world by one tick.
func (w *World) Step() {
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			w.Bodies[i].Collision(w.Bodies[j])
		}
	}
	for _, b := range w.Bodies {
		b.Update()
	}
	w.Tick++
}

// Settled returns true if every ball is at rest.
func (w *World) Settled() bool {
	for _, b := range w.Bodies {
		if b.State() != physics.StateResting {
			return false
		}
	}
	return true
}

// Run steps the world up to maxTicks times. With stopWhenSettled it returns
// early once every ball is at rest. Cancelling ctx stops the run between
// ticks; the report reflects the state reached so far.
func (w *World) Run(ctx context.Context, maxTicks int, stopWhenSettled bool) (Report, error) {
	start := w.Tick
	for w.Tick-start < maxTicks {
		if err := ctx.Err(); err != nil {
			return w.Report(), err
		}
		if stopWhenSettled && w.Settled() {
			break
		}
		w.Step()
	}
	return w.Report(), nil
}

// Report captures the current state of the world.
func (w *World) Report() Report {
	return Report{
		Ticks:   w.Tick,
		Settled: w.Settled(),
		Energy:  w.Energy(),
		Digest:  w.Digest(),
		Balls:   w.Snapshot(),
	}
}

func (w *World) Snapshot() []BallSnapshot {
	snaps := make([]BallSnapshot, len(w.Bodies))
	for i, b := range w.Bodies {
		core := b.Core()
		snaps[i] = BallSnapshot{
			ID:       i,
			Regime:   b.Regime(),
			Position: core.Position,
			Velocity: core.Velocity,
			Radius:   core.Radius,
			State:    b.State(),
		}
	}
	return snaps
}

// Energy returns the total kinetic energy, treating every ball as unit mass.
func (w *World) Energy() float64 {
	total := 0.0
	for _, b := range w.Bodies {
		total += b.Core().KineticEnergy()
	}
	return total
}

// Digest hashes the snapshot so two runs can be compared for determinism.
func (w *World) Digest() uint64 {
	data, err := json.Marshal(w.Snapshot())
	if err != nil {
		log.Printf("[SIM] Failed to marshal snapshot for digest: %v", err)
		return 0
	}
	return xxhash.Sum64(data)
}
