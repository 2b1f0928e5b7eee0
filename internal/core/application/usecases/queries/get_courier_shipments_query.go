package queries

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/guard"
)

var ErrGetCourierShipmentsQueryIsNotConstructed = errors.New(
	"GetCourierShipmentsQuery must be created via NewGetCourierShipmentsQuery constructor",
)

// GetCourierShipmentsQuery lists the deliveries a courier still has to make:
// shipments assigned to them that are InTransit or InRoute.
type GetCourierShipmentsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetCourierShipmentsQuery(courierID kernel.UUID) (GetCourierShipmentsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierShipmentsQuery{}, err
	}
	return GetCourierShipmentsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierShipmentsQueryIsNotConstructed)
}

func (q GetCourierShipmentsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// PendingStatuses are the statuses a courier still has to act on.
func (q GetCourierShipmentsQuery) PendingStatuses() []shipment.Status {
	return []shipment.Status{shipment.InTransit, shipment.InRoute}
}

// GetCourierShipmentsQueryResponse carries what the courier needs at the door.
type GetCourierShipmentsQueryResponse struct {
	TrackingCode     string
	Status           shipment.Status
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	Destination      kernel.Locality
	LastUpdated      time.Time
}
