package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetShipmentByTrackingCodeQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentByTrackingCodeQueryHandler(db *gorm.DB) GetShipmentByTrackingCodeQueryHandler {
	return GetShipmentByTrackingCodeQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no shipment carries the code.
func (h GetShipmentByTrackingCodeQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingCodeQuery,
) (GetShipmentByTrackingCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		resp                     GetShipmentByTrackingCodeQueryResponse
		id                       uuid.UUID
		courierID                uuid.NullUUID
		status, class            int
		originCity, originRegion string
		destCity, destRegion     string
	)

	row := db.Raw(`
		SELECT
			id,
			tracking_code,
			status,
			class,
			sender_name,
			recipient_name,
			origin_city,
			origin_region,
			destination_city,
			destination_region,
			cost,
			insurance,
			courier_id,
			created_at,
			last_updated
		FROM shipments
		WHERE tracking_code = ?
		ORDER BY created_at
		LIMIT 1
	`, query.TrackingCode().String()).Row()

	err := row.Scan(
		&id,
		&resp.TrackingCode,
		&status,
		&class,
		&resp.SenderName,
		&resp.RecipientName,
		&originCity,
		&originRegion,
		&destCity,
		&destRegion,
		&resp.Cost,
		&resp.Insurance,
		&courierID,
		&resp.CreatedAt,
		&resp.LastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentByTrackingCodeQueryResponse{},
			errs.NewObjectNotFoundError("tracking code", query.TrackingCode().String())
	}
	if err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	resp.Status = shipment.Status(status)
	resp.Class = quote.ShippingClass(class)

	if resp.Origin, err = kernel.NewLocality(originCity, originRegion); err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, fmt.Errorf("origin: %w", err)
	}
	if resp.Destination, err = kernel.NewLocality(destCity, destRegion); err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, fmt.Errorf("destination: %w", err)
	}

	if courierID.Valid {
		cID, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return GetShipmentByTrackingCodeQueryResponse{}, idErr
		}
		resp.CourierID = &cID
	}

	resp.History, err = h.history(db, id)
	if err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	return resp, nil
}

func (h GetShipmentByTrackingCodeQueryHandler) history(db *gorm.DB, shipmentID uuid.UUID) ([]StatusHistoryItem, error) {
	rows, err := db.Raw(`
		SELECT
			status,
			changed_at,
			actor
		FROM shipment_status_history
		WHERE shipment_id = ?
		ORDER BY seq
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusHistoryItem, 0)
	for rows.Next() {
		var item StatusHistoryItem
		var status int
		if err = rows.Scan(&status, &item.At, &item.Actor); err != nil {
			return nil, err
		}
		item.Status = shipment.Status(status)
		history = append(history, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
