package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvpoly/poly"
	"github.com/stretchr/testify/assert"
)

// TestOptionConstructorsPanic ensures nonsensical values are programmer errors.
func TestOptionConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { poly.WithWorkers(0) })
	assert.Panics(t, func() { poly.WithChunkSize(-1) })
	assert.NotPanics(t, func() { poly.WithWorkers(1) })
	assert.NotPanics(t, func() { poly.WithChunkSize(1) })
}

// TestNilOptionIgnored ensures a nil Option is skipped.
func TestNilOptionIgnored(t *testing.T) {
	out, err := poly.PolyvalSlice([]float64{1}, []float64{0}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1}, out)
}
