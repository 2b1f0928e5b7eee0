package shipment_test

import (
	"testing"

	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PendingPayment", shipment.PendingPayment.String())
	assert.Equal(t, "InRoute", shipment.InRoute.String())
	assert.Equal(t, "Unknown", shipment.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		s, err := shipment.ParseStatus(" intransit ")

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s)
	})

	t.Run("unknown names", func(t *testing.T) {
		for _, in := range []string{"", "Unknown", "Lost"} {
			_, err := shipment.ParseStatus(in)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())
	assert.False(t, shipment.PendingPayment.IsTerminal())
	assert.False(t, shipment.InRoute.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		path := []shipment.Status{
			shipment.PendingPayment,
			shipment.PaymentConfirmed,
			shipment.InPreparation,
			shipment.InTransit,
			shipment.InRoute,
			shipment.Delivered,
		}

		for i := 0; i < len(path)-1; i++ {
			next, err := path[i].TransitionTo(path[i+1])
			require.NoError(t, err)
			assert.Equal(t, path[i+1], next)
		}
	})

	t.Run("cancel from any non terminal status", func(t *testing.T) {
		for _, from := range []shipment.Status{
			shipment.PendingPayment, shipment.PaymentConfirmed, shipment.InPreparation,
			shipment.InTransit, shipment.InRoute,
		} {
			next, err := from.TransitionTo(shipment.Cancelled)
			require.NoError(t, err, from.String())
			assert.Equal(t, shipment.Cancelled, next)
		}
	})

	t.Run("rejected transitions", func(t *testing.T) {
		testCases := []struct {
			from, to shipment.Status
		}{
			{shipment.PendingPayment, shipment.Delivered},
			{shipment.PendingPayment, shipment.InTransit},
			{shipment.PendingPayment, shipment.PendingPayment},
			{shipment.InRoute, shipment.InTransit},
			{shipment.Delivered, shipment.Cancelled},
			{shipment.Cancelled, shipment.PendingPayment},
			{shipment.Unknown, shipment.PendingPayment},
			{shipment.InTransit, shipment.Unknown},
		}

		for _, tc := range testCases {
			t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
				next, err := tc.from.TransitionTo(tc.to)

				require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
				assert.Equal(t, shipment.Unknown, next)
			})
		}
	})
}
