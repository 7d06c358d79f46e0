package mds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCG48Deterministic(t *testing.T) {
	g1 := newTrialRNG(1, 0, 64)
	g2 := newTrialRNG(1, 0, 64)

	for i := 0; i < 10; i++ {
		assert.Equal(t, g1.next(), g2.next(), "same seed must reproduce the same stream")
	}
}

func TestLCG48DifferentRanksDiverge(t *testing.T) {
	g0 := newTrialRNG(1, 0, 64)
	g1 := newTrialRNG(1, 1, 64)

	assert.NotEqual(t, g0.next(), g1.next())
}

func TestLCG48RangeIsUnitInterval(t *testing.T) {
	g := newTrialRNG(42, 3, 10)
	for i := 0; i < 10000; i++ {
		u := g.next()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}

func TestStartPointWithinBounds(t *testing.T) {
	bounds := NewBounds(4, -2, 2)
	g := newTrialRNG(1, 0, 64)
	for trial := 0; trial < 50; trial++ {
		p := g.startPoint(bounds)
		assert.True(t, bounds.InPoint(p), "trial %d start point out of bounds: %v", trial, p)
	}
}

func TestStreamPersistsAcrossTrials(t *testing.T) {
	// The same RNG state must persist across all trials of one worker:
	// drawing two points in a row must not repeat the first draw's values.
	bounds := NewBounds(2, -2, 2)
	g := newTrialRNG(7, 0, 8)
	p1 := g.startPoint(bounds)
	p2 := g.startPoint(bounds)
	assert.NotEqual(t, p1, p2)
}
