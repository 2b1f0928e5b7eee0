package kernel_test

import (
	"math"
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("valid coordinate", func(t *testing.T) {
		c, err := kernel.NewCoordinate(4.7110, -74.0721)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.InDelta(t, 4.7110, c.Lat(), 1e-9)
		assert.InDelta(t, -74.0721, c.Lon(), 1e-9)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, tc := range []struct{ lat, lon float64 }{
			{-90, -180}, {90, 180}, {0, 0},
		} {
			_, err := kernel.NewCoordinate(tc.lat, tc.lon)
			require.NoError(t, err)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too small", -90.0001, 0},
			{"latitude too big", 91, 0},
			{"longitude too small", 0, -181},
			{"longitude too big", 0, 180.5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinate(tc.lat, tc.lon)

				require.ErrorIs(t, err, kernel.ErrCoordinateIsInvalid)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("non finite values", func(t *testing.T) {
		_, err := kernel.NewCoordinate(math.NaN(), 0)
		require.ErrorIs(t, err, kernel.ErrCoordinateIsInvalid)

		_, err = kernel.NewCoordinate(0, math.Inf(1))
		require.ErrorIs(t, err, kernel.ErrCoordinateIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("both components invalid are reported together", func(t *testing.T) {
		_, err := kernel.NewCoordinate(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinate_ZeroValue(t *testing.T) {
	var c kernel.Coordinate

	assert.ErrorIs(t, c.Validate(), kernel.ErrCoordinateIsNotConstructed)
}

func TestCoordinate_IsEqual(t *testing.T) {
	a, _ := kernel.NewCoordinate(6.2442, -75.5812)
	b, _ := kernel.NewCoordinate(6.2442, -75.5812)
	c, _ := kernel.NewCoordinate(3.4516, -76.5320)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.Equal(t, "(6.244200, -75.581200)", a.String())
}
