package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Price a parcel between two localities
	// (POST /api/v1/quotes)
	CalculateQuote(ctx echo.Context) error
	// List all couriers
	// (GET /api/v1/couriers)
	GetCouriers(ctx echo.Context) error
	// Add a courier to the pool
	// (POST /api/v1/couriers)
	CreateCourier(ctx echo.Context) error
	// Pending deliveries of the calling courier
	// (GET /api/v1/couriers/me/shipments)
	GetCourierShipments(ctx echo.Context) error
	// Create a customer account
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// Enable or disable a customer account
	// (PUT /api/v1/customers/{customerId}/enabled)
	SetCustomerEnabled(ctx echo.Context, customerId openapi_types.UUID) error
	// Register a shipment and compute its price
	// (POST /api/v1/shipments)
	RegisterShipment(ctx echo.Context) error
	// Public tracking lookup
	// (GET /api/v1/shipments/{trackingCode})
	GetShipment(ctx echo.Context, trackingCode TrackingCode) error
	// Force every shipment with this code into a terminal status
	// (POST /api/v1/shipments/{trackingCode}/finalize)
	FinalizeShipment(ctx echo.Context, trackingCode TrackingCode) error
	// Move a shipment to a new status
	// (POST /api/v1/shipments/{trackingCode}/status)
	TransitionShipmentStatus(ctx echo.Context, trackingCode TrackingCode) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CalculateQuote converts echo context to params.
func (w *ServerInterfaceWrapper) CalculateQuote(ctx echo.Context) error {
	return w.Handler.CalculateQuote(ctx)
}

// GetCouriers converts echo context to params.
func (w *ServerInterfaceWrapper) GetCouriers(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"admin"})

	return w.Handler.GetCouriers(ctx)
}

// CreateCourier converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCourier(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"admin"})

	return w.Handler.CreateCourier(ctx)
}

// GetCourierShipments converts echo context to params.
func (w *ServerInterfaceWrapper) GetCourierShipments(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"courier"})

	return w.Handler.GetCourierShipments(ctx)
}

// CreateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"admin"})

	return w.Handler.CreateCustomer(ctx)
}

// SetCustomerEnabled converts echo context to params.
func (w *ServerInterfaceWrapper) SetCustomerEnabled(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "customerId" -------------
	var customerId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "customerId", ctx.Param("customerId"), &customerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{"admin"})

	return w.Handler.SetCustomerEnabled(ctx, customerId)
}

// RegisterShipment converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterShipment(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{"customer"})

	return w.Handler.RegisterShipment(ctx)
}

// GetShipment converts echo context to params.
func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	trackingCode, err := bindTrackingCode(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetShipment(ctx, trackingCode)
}

// FinalizeShipment converts echo context to params.
func (w *ServerInterfaceWrapper) FinalizeShipment(ctx echo.Context) error {
	trackingCode, err := bindTrackingCode(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{"admin"})

	return w.Handler.FinalizeShipment(ctx, trackingCode)
}

// TransitionShipmentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionShipmentStatus(ctx echo.Context) error {
	trackingCode, err := bindTrackingCode(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{"courier"})

	return w.Handler.TransitionShipmentStatus(ctx, trackingCode)
}

func bindTrackingCode(ctx echo.Context) (TrackingCode, error) {
	var trackingCode TrackingCode

	err := runtime.BindStyledParameterWithOptions("simple", "trackingCode", ctx.Param("trackingCode"), &trackingCode, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter trackingCode: %s", err))
	}

	return trackingCode, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// so that handlers can be registered on either.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/couriers", wrapper.CreateCourier)
	router.GET(baseURL+"/api/v1/couriers", wrapper.GetCouriers)
	router.GET(baseURL+"/api/v1/couriers/me/shipments", wrapper.GetCourierShipments)
	router.POST(baseURL+"/api/v1/customers", wrapper.CreateCustomer)
	router.PUT(baseURL+"/api/v1/customers/:customerId/enabled", wrapper.SetCustomerEnabled)
	router.POST(baseURL+"/api/v1/quotes", wrapper.CalculateQuote)
	router.POST(baseURL+"/api/v1/shipments", wrapper.RegisterShipment)
	router.GET(baseURL+"/api/v1/shipments/:trackingCode", wrapper.GetShipment)
	router.POST(baseURL+"/api/v1/shipments/:trackingCode/finalize", wrapper.FinalizeShipment)
	router.POST(baseURL+"/api/v1/shipments/:trackingCode/status", wrapper.TransitionShipmentStatus)
}
