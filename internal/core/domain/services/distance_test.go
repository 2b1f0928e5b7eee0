package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRouter struct{ mock.Mock }

func (m *MockRouter) RouteMeters(ctx context.Context, from, to kernel.Coordinate) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func coordinate(t *testing.T, lat, lon float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)
	return c
}

func TestGreatCircleDistance(t *testing.T) {
	ctx := t.Context()
	bogota := coordinate(t, 4.711, -74.0721)
	medellin := coordinate(t, 6.2442, -75.5812)
	strategy := services.GreatCircleDistance{}

	t.Run("known distance", func(t *testing.T) {
		km, err := strategy.Distance(ctx, bogota, medellin)

		require.NoError(t, err)
		assert.InDelta(t, 238.673, km, 0.01)
	})

	t.Run("is symmetric", func(t *testing.T) {
		ab, err := strategy.Distance(ctx, bogota, medellin)
		require.NoError(t, err)
		ba, err := strategy.Distance(ctx, medellin, bogota)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("zero for the same point", func(t *testing.T) {
		km, err := strategy.Distance(ctx, bogota, bogota)

		require.NoError(t, err)
		assert.Zero(t, km)
	})

	t.Run("antipodes are half the circumference", func(t *testing.T) {
		km, err := strategy.Distance(ctx, coordinate(t, 90, 0), coordinate(t, -90, 0))

		require.NoError(t, err)
		assert.InDelta(t, math.Pi*services.EarthRadiusKm, km, 1e-6)
	})

	t.Run("rejects unconstructed coordinates", func(t *testing.T) {
		_, err := strategy.Distance(ctx, kernel.Coordinate{}, bogota)

		require.ErrorIs(t, err, kernel.ErrCoordinateIsNotConstructed)
	})
}

func TestRoutingDistance(t *testing.T) {
	ctx := t.Context()
	from := coordinate(t, 4.711, -74.0721)
	to := coordinate(t, 3.4516, -76.532)

	t.Run("converts meters to kilometers", func(t *testing.T) {
		// Given
		router := new(MockRouter)
		router.On("RouteMeters", ctx, from, to).Return(462350.0, nil).Once()
		strategy, err := services.NewRoutingDistance(router)
		require.NoError(t, err)

		// When
		km, err := strategy.Distance(ctx, from, to)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 462.35, km, 1e-9)
		router.AssertExpectations(t)
	})

	t.Run("surfaces upstream failures", func(t *testing.T) {
		router := new(MockRouter)
		upstream := errs.NewUpstreamUnavailableErrorWithCause("routing", errors.New("503"))
		router.On("RouteMeters", ctx, from, to).Return(0.0, upstream).Once()
		strategy, _ := services.NewRoutingDistance(router)

		_, err := strategy.Distance(ctx, from, to)

		require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("rejects negative distances", func(t *testing.T) {
		router := new(MockRouter)
		router.On("RouteMeters", ctx, from, to).Return(-1.0, nil).Once()
		strategy, _ := services.NewRoutingDistance(router)

		_, err := strategy.Distance(ctx, from, to)

		require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("requires a router", func(t *testing.T) {
		_, err := services.NewRoutingDistance(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewDistanceStrategy(t *testing.T) {
	s, err := services.NewDistanceStrategy("great_circle", nil)
	require.NoError(t, err)
	assert.IsType(t, services.GreatCircleDistance{}, s)

	s, err = services.NewDistanceStrategy("ROUTING", new(MockRouter))
	require.NoError(t, err)
	assert.IsType(t, &services.RoutingDistance{}, s)

	_, err = services.NewDistanceStrategy("routing", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewDistanceStrategy("teleport", nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
