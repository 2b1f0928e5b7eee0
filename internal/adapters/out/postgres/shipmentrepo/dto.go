// Package shipmentrepo persists shipment aggregates and their status history.
// The shipment row carries the optimistic concurrency version; history rows
// are append-only and ordered by their position in the aggregate.
package shipmentrepo

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// TrackingCodeIndex is the unique index guarding tracking code uniqueness.
const TrackingCodeIndex = "idx_shipments_tracking_code"

// ShipmentDTO represents the database structure for persisting shipment aggregates.
type ShipmentDTO struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TrackingCode  string             `gorm:"type:varchar(18);not null;uniqueIndex:idx_shipments_tracking_code"`
	Sender        PartyDTO           `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient     PartyDTO           `gorm:"embedded;embeddedPrefix:recipient_"`
	Origin        LocalityDTO        `gorm:"embedded;embeddedPrefix:origin_"`
	Destination   LocalityDTO        `gorm:"embedded;embeddedPrefix:destination_"`
	Class         int                `gorm:"type:smallint;not null"`
	Dimensions    DimensionsDTO      `gorm:"embedded;embeddedPrefix:parcel_"`
	Weight        float64            `gorm:"type:double precision;not null"`
	DeclaredValue float64            `gorm:"type:double precision;not null"`
	Cost          int64              `gorm:"type:bigint;not null"`
	Insurance     int64              `gorm:"type:bigint;not null"`
	CourierID     *uuid.UUID         `gorm:"type:uuid;index"`
	CreatedBy     string             `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time          `gorm:"type:timestamptz;not null;index"`
	LastUpdated   time.Time          `gorm:"type:timestamptz;not null"`
	Status        int                `gorm:"type:smallint;not null;index"`
	Version       int64              `gorm:"type:bigint;not null;default:0"`
	History       []StatusHistoryDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type PartyDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(64);not null"`
	Address string `gorm:"type:varchar(512)"`
}

type LocalityDTO struct {
	City   string `gorm:"type:varchar(255);not null"`
	Region string `gorm:"type:varchar(255)"`
}

type DimensionsDTO struct {
	Width  float64 `gorm:"type:double precision;not null"`
	Length float64 `gorm:"type:double precision;not null"`
	Height float64 `gorm:"type:double precision;not null"`
}

// StatusHistoryDTO is one append-only history row. Seq is the entry's position
// in the aggregate history and is unique per shipment.
type StatusHistoryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_history_shipment_seq"`
	Seq        int       `gorm:"type:int;not null;uniqueIndex:idx_history_shipment_seq"`
	Status     int       `gorm:"type:smallint;not null"`
	ChangedAt  time.Time `gorm:"type:timestamptz;not null"`
	Actor      string    `gorm:"type:varchar(255);not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "shipment_status_history"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var courierID *uuid.UUID
	if id := s.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	id := s.ID().Bytes()
	return ShipmentDTO{
		ID:            id,
		TrackingCode:  s.TrackingCode().String(),
		Sender:        partyFromDomain(s.Sender()),
		Recipient:     partyFromDomain(s.Recipient()),
		Origin:        localityFromDomain(s.Origin()),
		Destination:   localityFromDomain(s.Destination()),
		Class:         int(s.Class()),
		Dimensions:    dimensionsFromDomain(s.Dimensions()),
		Weight:        s.Weight(),
		DeclaredValue: s.DeclaredValue(),
		Cost:          s.Cost(),
		Insurance:     s.Insurance(),
		CourierID:     courierID,
		CreatedBy:     s.CreatedBy(),
		CreatedAt:     s.CreatedAt(),
		LastUpdated:   s.LastUpdated(),
		Status:        int(s.Status()),
		Version:       s.Version(),
		History:       historyFromDomain(id, s.History(), 0),
	}
}

// historyFromDomain numbers entries starting at offset.
func historyFromDomain(shipmentID uuid.UUID, entries []shipment.HistoryEntry, offset int) []StatusHistoryDTO {
	out := make([]StatusHistoryDTO, 0, len(entries))
	for i, e := range entries {
		out = append(out, StatusHistoryDTO{
			ShipmentID: shipmentID,
			Seq:        offset + i,
			Status:     int(e.Status()),
			ChangedAt:  e.At(),
			Actor:      e.Actor(),
		})
	}
	return out
}

func partyFromDomain(p shipment.Party) PartyDTO {
	return PartyDTO{Name: p.Name(), Phone: p.Phone(), Address: p.Address()}
}

func dimensionsFromDomain(d quote.Dimensions) DimensionsDTO {
	return DimensionsDTO{Width: d.Width(), Length: d.Length(), Height: d.Height()}
}

func localityFromDomain(l kernel.Locality) LocalityDTO {
	return LocalityDTO{City: l.City(), Region: l.Region()}
}

// toDomain rebuilds the aggregate. History must be ordered by Seq.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	code, codeErr := shipment.ParseTrackingCode(dto.TrackingCode)
	sender, senderErr := shipment.NewSender(dto.Sender.Name, dto.Sender.Phone)
	recipient, recipientErr := shipment.NewRecipient(dto.Recipient.Name, dto.Recipient.Phone, dto.Recipient.Address)
	origin, originErr := kernel.NewLocality(dto.Origin.City, dto.Origin.Region)
	destination, destinationErr := kernel.NewLocality(dto.Destination.City, dto.Destination.Region)
	dims, dimsErr := quote.NewDimensions(dto.Dimensions.Width, dto.Dimensions.Length, dto.Dimensions.Height)

	var courierID *kernel.UUID
	var courierErr error
	if dto.CourierID != nil {
		var cID kernel.UUID
		cID, courierErr = kernel.UUIDFromBytes((*dto.CourierID)[:])
		courierID = &cID
	}

	history := make([]shipment.HistoryEntry, 0, len(dto.History))
	var historyErr error
	for _, h := range dto.History {
		entry, err := shipment.NewHistoryEntry(shipment.Status(h.Status), h.ChangedAt, h.Actor)
		if err != nil {
			historyErr = err
			break
		}
		history = append(history, entry)
	}

	if err := errors.Join(
		idErr, codeErr, senderErr, recipientErr, originErr, destinationErr, dimsErr, courierErr, historyErr,
	); err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(shipment.Snapshot{
		ID:            id,
		TrackingCode:  code,
		Sender:        sender,
		Recipient:     recipient,
		Origin:        origin,
		Destination:   destination,
		Class:         quote.ShippingClass(dto.Class),
		Dimensions:    dims,
		Weight:        dto.Weight,
		DeclaredValue: dto.DeclaredValue,
		Cost:          dto.Cost,
		Insurance:     dto.Insurance,
		CourierID:     courierID,
		CreatedBy:     dto.CreatedBy,
		CreatedAt:     dto.CreatedAt,
		LastUpdated:   dto.LastUpdated,
		Status:        shipment.Status(dto.Status),
		History:       history,
		Version:       dto.Version,
	})
}
