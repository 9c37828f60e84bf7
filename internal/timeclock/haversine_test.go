package timeclock_test

import (
	"testing"

	"github.com/alex-morcg/horarios-vacaciones/internal/timeclock"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		d := timeclock.HaversineMeters(41.3851, 2.1734, 41.3851, 2.1734)
		assert.Zero(t, d)
	})

	t.Run("known city pair within tolerance", func(t *testing.T) {
		// Barcelona to Madrid is roughly 505 km great-circle.
		d := timeclock.HaversineMeters(41.3851, 2.1734, 40.4168, -3.7038)
		assert.InDelta(t, 505000, d, 5000)
	})

	t.Run("symmetry", func(t *testing.T) {
		a := timeclock.HaversineMeters(41.3851, 2.1734, 41.4, 2.2)
		b := timeclock.HaversineMeters(41.4, 2.2, 41.3851, 2.1734)
		assert.InDelta(t, a, b, 0.0001)
	})
}

func TestWithinRadius(t *testing.T) {
	officeLat, officeLng := 41.3851, 2.1734

	t.Run("inside", func(t *testing.T) {
		_, ok := timeclock.WithinRadius(41.38515, 2.17345, officeLat, officeLng, 100)
		assert.True(t, ok)
	})

	t.Run("outside", func(t *testing.T) {
		// ~0.01 degrees of latitude is about 1.1 km.
		_, ok := timeclock.WithinRadius(41.3951, 2.1734, officeLat, officeLng, 100)
		assert.False(t, ok)
	})

	t.Run("distance exactly on the boundary counts as inside", func(t *testing.T) {
		d, _ := timeclock.WithinRadius(41.3951, 2.1734, officeLat, officeLng, 100)
		_, ok := timeclock.WithinRadius(41.3951, 2.1734, officeLat, officeLng, d)
		assert.True(t, ok)
	})
}
