package queries

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler lists the courier roster for administrators,
// with the number of shipments each courier still has to finish.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle returns every courier sorted by name. A shipment counts as active
// until it reaches a terminal status.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terminal := pq.Array([]int64{int64(shipment.Delivered), int64(shipment.Cancelled)})

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.available,
			COUNT(s.id) AS active_shipments
		FROM couriers c
		LEFT JOIN shipments s
		       ON s.courier_id = c.id
		      AND s.status <> ALL(?)
		GROUP BY c.id, c.name, c.available
		ORDER BY c.name
	`, terminal).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetAllCouriersQueryResponse, 0)
	for rows.Next() {
		var item GetAllCouriersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &item.Name, &item.Available, &item.ActiveShipments); err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, item)
	}

	return couriers, rows.Err()
}
