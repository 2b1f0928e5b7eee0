package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CalculateQuoteHandler interface {
		Handle(ctx context.Context, query queries.CalculateQuoteQuery) (queries.CalculateQuoteQueryResponse, error)
	}
	RegisterShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterShipmentCommand) (*shipment.Shipment, error)
	}
	TransitionShipmentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionShipmentStatusCommand) (*shipment.Shipment, error)
	}
	FinalizeByTrackingCodeHandler interface {
		Handle(ctx context.Context, cmd commands.FinalizeByTrackingCodeCommand) (int, error)
	}
	CreateCourierHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCourierCommand) error
	}
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error
	}
	SetCustomerEnabledHandler interface {
		Handle(ctx context.Context, cmd commands.SetCustomerEnabledCommand) error
	}
	GetShipmentByTrackingCodeHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetShipmentByTrackingCodeQuery,
		) (queries.GetShipmentByTrackingCodeQueryResponse, error)
	}
	GetCourierShipmentsHandler interface {
		Handle(ctx context.Context, query queries.GetCourierShipmentsQuery) ([]queries.GetCourierShipmentsQueryResponse, error)
	}
	GetAllCouriersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCouriersQuery) ([]queries.GetAllCouriersQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	RegisterShipment         RegisterShipmentHandler
	TransitionShipmentStatus TransitionShipmentStatusHandler
	FinalizeByTrackingCode   FinalizeByTrackingCodeHandler
	CreateCourier            CreateCourierHandler
	CreateCustomer           CreateCustomerHandler
	SetCustomerEnabled       SetCustomerEnabledHandler

	// Query handlers
	CalculateQuote            CalculateQuoteHandler
	GetShipmentByTrackingCode GetShipmentByTrackingCodeHandler
	GetCourierShipments       GetCourierShipmentsHandler
	GetAllCouriers            GetAllCouriersHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	policy   quote.Policy
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. policy holds the acceptance rules
// applied to quote and registration requests.
func NewServer(handlers Handlers, policy quote.Policy, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		policy:   policy,
		logger:   logger.With("component", "http"),
	}
}

// CalculateQuote handles POST /api/v1/quotes - prices a parcel without registering it.
func (s *Server) CalculateQuote(ctx echo.Context) error {
	var body servers.CalculateQuoteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	request, err := quoteRequestFromAPI(body.Origin, body.Destination, body.Parcel, body.Class, s.policy)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewCalculateQuoteQuery(request)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.CalculateQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		DistanceKm:  result.DistanceKm,
		Cost:        result.Cost,
		Insurance:   result.Insurance,
		Origin:      localityToAPI(result.Origin),
		Destination: localityToAPI(result.Destination),
	})
}

// RegisterShipment handles POST /api/v1/shipments - registers and prices a shipment.
func (s *Server) RegisterShipment(ctx echo.Context) error {
	identity, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RegisterShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	sender, senderErr := shipment.NewSender(body.Sender.Name, body.Sender.Phone)
	recipient, recipientErr := shipment.NewRecipient(
		body.Recipient.Name, body.Recipient.Phone, deref(body.Recipient.Address))
	request, requestErr := quoteRequestFromAPI(body.Origin, body.Destination, body.Parcel, body.Class, s.policy)
	if err = errors.Join(senderErr, recipientErr, requestErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterShipmentCommand(identity.Subject, sender, recipient, request)
	if err != nil {
		return s.fail(ctx, err)
	}

	registered, err := s.handlers.RegisterShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "shipment registered",
		"tracking_code", registered.TrackingCode().String(),
		"cost", registered.Cost(),
	)

	return ctx.JSON(http.StatusCreated, shipmentToAPI(registered))
}

// GetShipment handles GET /api/v1/shipments/{trackingCode} - public tracking.
func (s *Server) GetShipment(ctx echo.Context, trackingCode servers.TrackingCode) error {
	query, err := queries.NewGetShipmentByTrackingCodeQuery(trackingCode)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.handlers.GetShipmentByTrackingCode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	history := make([]servers.HistoryEntry, len(found.History))
	for i, entry := range found.History {
		history[i] = servers.HistoryEntry{
			Status: entry.Status.String(),
			At:     entry.At,
			Actor:  entry.Actor,
		}
	}

	return ctx.JSON(http.StatusOK, servers.ShipmentTracking{
		TrackingCode:  found.TrackingCode,
		Status:        found.Status.String(),
		Class:         found.Class.String(),
		SenderName:    found.SenderName,
		RecipientName: found.RecipientName,
		Origin:        localityToAPI(found.Origin),
		Destination:   localityToAPI(found.Destination),
		Cost:          found.Cost,
		Insurance:     found.Insurance,
		CourierId:     uuidPtr(found.CourierID),
		CreatedAt:     found.CreatedAt,
		LastUpdated:   found.LastUpdated,
		History:       history,
	})
}

// TransitionShipmentStatus handles POST /api/v1/shipments/{trackingCode}/status.
func (s *Server) TransitionShipmentStatus(ctx echo.Context, trackingCode servers.TrackingCode) error {
	identity, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.TransitionShipmentStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewTransitionShipmentStatusCommand(trackingCode, body.Status, identity.Subject)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.TransitionShipmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToAPI(updated))
}

// FinalizeShipment handles POST /api/v1/shipments/{trackingCode}/finalize.
// The body is optional; without one shipments are marked Delivered.
func (s *Server) FinalizeShipment(ctx echo.Context, trackingCode servers.TrackingCode) error {
	identity, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.FinalizeShipmentJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&body); err != nil {
			return badRequest(ctx)
		}
	}

	cmd, err := commands.NewFinalizeByTrackingCodeCommand(trackingCode, deref(body.Status), identity.Subject)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.FinalizeByTrackingCode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.FinalizeResult{Updated: updated})
}

// GetCourierShipments handles GET /api/v1/couriers/me/shipments - the
// calling courier's pending deliveries.
func (s *Server) GetCourierShipments(ctx echo.Context) error {
	identity, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(identity.Subject)
	if err != nil {
		return s.fail(ctx, ErrForbidden)
	}

	query, err := queries.NewGetCourierShipmentsQuery(courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	pending, err := s.handlers.GetCourierShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.CourierShipment, len(pending))
	for i, p := range pending {
		response[i] = servers.CourierShipment{
			TrackingCode:     p.TrackingCode,
			Status:           p.Status.String(),
			RecipientName:    p.RecipientName,
			RecipientPhone:   p.RecipientPhone,
			RecipientAddress: p.RecipientAddress,
			Destination:      localityToAPI(p.Destination),
			LastUpdated:      p.LastUpdated,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:              c.ID.Bytes(),
			Name:            c.Name,
			Available:       c.Available,
			ActiveShipments: &c.ActiveShipments,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - creates a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Courier{
		Id:        cmd.CourierID().Bytes(),
		Name:      cmd.Name(),
		Available: true,
	})
}

// CreateCustomer handles POST /api/v1/customers - creates an enabled customer account.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:      cmd.CustomerID().Bytes(),
		Name:    cmd.Name(),
		Email:   cmd.Email(),
		Enabled: true,
	})
}

// SetCustomerEnabled handles PUT /api/v1/customers/{customerId}/enabled.
func (s *Server) SetCustomerEnabled(ctx echo.Context, customerID openapi_types.UUID) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	var body servers.SetCustomerEnabledJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	id, err := kernel.UUIDFromString(customerID.String())
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewSetCustomerEnabledCommand(id, body.Enabled)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SetCustomerEnabled.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
