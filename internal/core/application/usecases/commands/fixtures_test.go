package commands_test

import (
	"testing"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func validRequest(t *testing.T, class quote.ShippingClass) quote.Request {
	t.Helper()
	origin, err := kernel.NewLocality("Bogotá", "Cundinamarca")
	require.NoError(t, err)
	destination, err := kernel.NewLocality("Cali", "Valle del Cauca")
	require.NoError(t, err)
	dims, err := quote.NewDimensions(30, 40, 20)
	require.NoError(t, err)

	req, err := quote.NewRequest(dims, 3, 50000, origin, destination, class, quote.Policy{})
	require.NoError(t, err)
	return req
}

func trackingCode(t *testing.T, s string) shipment.TrackingCode {
	t.Helper()
	code, err := shipment.ParseTrackingCode(s)
	require.NoError(t, err)
	return code
}

func parties(t *testing.T) (shipment.Party, shipment.Party) {
	t.Helper()
	sender, err := shipment.NewSender("Ana Pérez", "3001234567")
	require.NoError(t, err)
	recipient, err := shipment.NewRecipient("Luis Gómez", "3117654321", "Calle 10 # 5-20")
	require.NoError(t, err)
	return sender, recipient
}

func registeredShipment(t *testing.T, code string) *shipment.Shipment {
	t.Helper()
	sender, recipient := parties(t)
	s, err := shipment.NewShipment(kernel.NewUUID(), trackingCode(t, code), sender, recipient,
		validRequest(t, quote.Standard), quote.NewQuote(45, 21900, 10000), "customer-1", time.Now())
	require.NoError(t, err)
	return s
}
