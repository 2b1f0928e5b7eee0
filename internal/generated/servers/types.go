package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Courier defines model for Courier.
type Courier struct {
	// ActiveShipments Assigned shipments not yet delivered or cancelled. Present in listings only.
	ActiveShipments *int               `json:"activeShipments,omitempty"`
	Available       bool               `json:"available"`
	Id              openapi_types.UUID `json:"id"`
	Name            string             `json:"name"`
}

// CourierShipment defines model for CourierShipment.
type CourierShipment struct {
	Destination      Locality  `json:"destination"`
	LastUpdated      time.Time `json:"lastUpdated"`
	RecipientAddress string    `json:"recipientAddress"`
	RecipientName    string    `json:"recipientName"`
	RecipientPhone   string    `json:"recipientPhone"`
	Status           string    `json:"status"`
	TrackingCode     string    `json:"trackingCode"`
}

// Customer defines model for Customer.
type Customer struct {
	Email   string             `json:"email"`
	Enabled bool               `json:"enabled"`
	Id      openapi_types.UUID `json:"id"`
	Name    string             `json:"name"`
}

// CustomerEnabled defines model for CustomerEnabled.
type CustomerEnabled struct {
	Enabled bool `json:"enabled"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FinalizeRequest defines model for FinalizeRequest.
type FinalizeRequest struct {
	// Status Delivered (default) or Cancelled
	Status *string `json:"status,omitempty"`
}

// FinalizeResult defines model for FinalizeResult.
type FinalizeResult struct {
	Updated int `json:"updated"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
	Status string    `json:"status"`
}

// Locality defines model for Locality.
type Locality struct {
	City   string  `json:"city"`
	Region *string `json:"region,omitempty"`
}

// NewCourier defines model for NewCourier.
type NewCourier struct {
	Name string `json:"name"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewShipment defines model for NewShipment.
type NewShipment struct {
	Class       *string  `json:"class,omitempty"`
	Destination Locality `json:"destination"`
	Origin      Locality `json:"origin"`
	Parcel      Parcel   `json:"parcel"`
	Recipient   Party    `json:"recipient"`
	Sender      Party    `json:"sender"`
}

// Parcel defines model for Parcel.
type Parcel struct {
	DeclaredValue float64 `json:"declaredValue"`

	// Height cm
	Height float64 `json:"height"`

	// Length cm
	Length float64 `json:"length"`

	// Weight kg
	Weight float64 `json:"weight"`

	// Width cm
	Width float64 `json:"width"`
}

// Party defines model for Party.
type Party struct {
	Address *string `json:"address,omitempty"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
}

// Quote defines model for Quote.
type Quote struct {
	Cost        int64    `json:"cost"`
	Destination Locality `json:"destination"`
	DistanceKm  float64  `json:"distanceKm"`
	Insurance   int64    `json:"insurance"`
	Origin      Locality `json:"origin"`
}

// QuoteRequest defines model for QuoteRequest.
type QuoteRequest struct {
	Class       *string  `json:"class,omitempty"`
	Destination Locality `json:"destination"`
	Origin      Locality `json:"origin"`
	Parcel      Parcel   `json:"parcel"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	Class        string              `json:"class"`
	Cost         int64               `json:"cost"`
	CourierId    *openapi_types.UUID `json:"courierId,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	Id           openapi_types.UUID  `json:"id"`
	Insurance    int64               `json:"insurance"`
	LastUpdated  time.Time           `json:"lastUpdated"`
	Status       string              `json:"status"`
	TrackingCode string              `json:"trackingCode"`
}

// ShipmentTracking defines model for ShipmentTracking.
type ShipmentTracking struct {
	Class         string              `json:"class"`
	Cost          int64               `json:"cost"`
	CourierId     *openapi_types.UUID `json:"courierId,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	Destination   Locality            `json:"destination"`
	History       []HistoryEntry      `json:"history"`
	Insurance     int64               `json:"insurance"`
	LastUpdated   time.Time           `json:"lastUpdated"`
	Origin        Locality            `json:"origin"`
	RecipientName string              `json:"recipientName"`
	SenderName    string              `json:"senderName"`
	Status        string              `json:"status"`
	TrackingCode  string              `json:"trackingCode"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// TrackingCode defines model for TrackingCode.
type TrackingCode = string

// CalculateQuoteJSONRequestBody defines body for CalculateQuote for application/json ContentType.
type CalculateQuoteJSONRequestBody = QuoteRequest

// CreateCourierJSONRequestBody defines body for CreateCourier for application/json ContentType.
type CreateCourierJSONRequestBody = NewCourier

// CreateCustomerJSONRequestBody defines body for CreateCustomer for application/json ContentType.
type CreateCustomerJSONRequestBody = NewCustomer

// SetCustomerEnabledJSONRequestBody defines body for SetCustomerEnabled for application/json ContentType.
type SetCustomerEnabledJSONRequestBody = CustomerEnabled

// RegisterShipmentJSONRequestBody defines body for RegisterShipment for application/json ContentType.
type RegisterShipmentJSONRequestBody = NewShipment

// FinalizeShipmentJSONRequestBody defines body for FinalizeShipment for application/json ContentType.
type FinalizeShipmentJSONRequestBody = FinalizeRequest

// TransitionShipmentStatusJSONRequestBody defines body for TransitionShipmentStatus for application/json ContentType.
type TransitionShipmentStatusJSONRequestBody = StatusChange
