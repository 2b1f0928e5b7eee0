package queries

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/guard"
)

var ErrGetShipmentByTrackingCodeQueryIsNotConstructed = errors.New(
	"GetShipmentByTrackingCodeQuery must be created via NewGetShipmentByTrackingCodeQuery constructor",
)

// GetShipmentByTrackingCodeQuery backs the public tracking page. The code is
// accepted in any letter case.
type GetShipmentByTrackingCodeQuery struct { //nolint:recvcheck //using for validation
	code  shipment.TrackingCode
	guard guard.ConstructorGuard
}

func NewGetShipmentByTrackingCodeQuery(code string) (GetShipmentByTrackingCodeQuery, error) {
	tc, err := shipment.ParseTrackingCode(code)
	if err != nil {
		return GetShipmentByTrackingCodeQuery{}, err
	}
	return GetShipmentByTrackingCodeQuery{code: tc, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentByTrackingCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingCodeQueryIsNotConstructed)
}

func (q GetShipmentByTrackingCodeQuery) TrackingCode() shipment.TrackingCode {
	return q.code
}

// GetShipmentByTrackingCodeQueryResponse is visible without authentication,
// so phone numbers and the street address are left out.
type GetShipmentByTrackingCodeQueryResponse struct {
	TrackingCode  string
	Status        shipment.Status
	Class         quote.ShippingClass
	SenderName    string
	RecipientName string
	Origin        kernel.Locality
	Destination   kernel.Locality
	Cost          int64
	Insurance     int64
	CourierID     *kernel.UUID
	CreatedAt     time.Time
	LastUpdated   time.Time
	History       []StatusHistoryItem
}

// StatusHistoryItem is one history row, oldest first.
type StatusHistoryItem struct {
	Status shipment.Status
	At     time.Time
	Actor  string
}
