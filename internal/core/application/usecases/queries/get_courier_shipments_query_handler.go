package queries

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetCourierShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierShipmentsQueryHandler(db *gorm.DB) GetCourierShipmentsQueryHandler {
	return GetCourierShipmentsQueryHandler{db: db}
}

// Handle returns the courier's pending deliveries, least recently updated first.
func (h GetCourierShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierShipmentsQuery,
) ([]GetCourierShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]int64, 0, len(query.PendingStatuses()))
	for _, s := range query.PendingStatuses() {
		statuses = append(statuses, int64(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_code,
			status,
			recipient_name,
			recipient_phone,
			recipient_address,
			destination_city,
			destination_region,
			last_updated
		FROM shipments
		WHERE courier_id = ?
		  AND status = ANY(?)
		ORDER BY last_updated, tracking_code
	`, query.CourierID().Bytes(), pq.Array(statuses)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetCourierShipmentsQueryResponse, 0)
	for rows.Next() {
		var item GetCourierShipmentsQueryResponse
		var status int
		var city, region string

		err = rows.Scan(
			&item.TrackingCode,
			&status,
			&item.RecipientName,
			&item.RecipientPhone,
			&item.RecipientAddress,
			&city,
			&region,
			&item.LastUpdated,
		)
		if err != nil {
			return nil, err
		}

		item.Status = shipment.Status(status)
		destination, locErr := kernel.NewLocality(city, region)
		if locErr != nil {
			return nil, locErr
		}
		item.Destination = destination
		shipments = append(shipments, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
