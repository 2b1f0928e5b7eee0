package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "parcel/internal/adapters/in/http"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/quote"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/ports"
	"parcel/internal/generated/servers"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

const quoteBody = `{
	"origin": {"city": "Bogotá"},
	"destination": {"city": "Medellín", "region": "Antioquia"},
	"parcel": {"width": 20, "length": 30, "height": 10, "weight": 3, "declaredValue": 50000},
	"class": "urgent"
}`

const shipmentBody = `{
	"sender": {"name": "Ana Pérez", "phone": "3001234567"},
	"recipient": {"name": "Luis Gómez", "phone": "3117654321", "address": "Calle 10 # 5-20"},
	"origin": {"city": "Bogotá"},
	"destination": {"city": "Medellín"},
	"parcel": {"width": 20, "length": 30, "height": 10, "weight": 3, "declaredValue": 50000}
}`

type fixture struct {
	e *echo.Echo

	calculateQuote   *MockCalculateQuote
	registerShipment *MockRegisterShipment
	transition       *MockTransitionShipmentStatus
	finalize         *MockFinalizeByTrackingCode
	createCourier    *MockCreateCourier
	createCustomer   *MockCreateCustomer
	setEnabled       *MockSetCustomerEnabled
	getShipment      *MockGetShipmentByTrackingCode
	courierShipments *MockGetCourierShipments
	getCouriers      *MockGetAllCouriers
}

func newFixture(t *testing.T, policy quote.Policy) *fixture {
	t.Helper()
	f := &fixture{
		calculateQuote:   &MockCalculateQuote{},
		registerShipment: &MockRegisterShipment{},
		transition:       &MockTransitionShipmentStatus{},
		finalize:         &MockFinalizeByTrackingCode{},
		createCourier:    &MockCreateCourier{},
		createCustomer:   &MockCreateCustomer{},
		setEnabled:       &MockSetCustomerEnabled{},
		getShipment:      &MockGetShipmentByTrackingCode{},
		courierShipments: &MockGetCourierShipments{},
		getCouriers:      &MockGetAllCouriers{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(httpadapter.Handlers{
		RegisterShipment:          f.registerShipment,
		TransitionShipmentStatus:  f.transition,
		FinalizeByTrackingCode:    f.finalize,
		CreateCourier:             f.createCourier,
		CreateCustomer:            f.createCustomer,
		SetCustomerEnabled:        f.setEnabled,
		CalculateQuote:            f.calculateQuote,
		GetShipmentByTrackingCode: f.getShipment,
		GetCourierShipments:       f.courierShipments,
		GetAllCouriers:            f.getCouriers,
	}, policy, logger)

	e, err := httpadapter.NewEcho(server, secret, logger)
	require.NoError(t, err)
	f.e = e
	return f
}

func (f *fixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, subject string, role httpadapter.Role) string {
	t.Helper()
	signed, err := httpadapter.SignToken(secret, subject, role, time.Hour)
	require.NoError(t, err)
	return signed
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registered(t *testing.T) *shipment.Shipment {
	t.Helper()
	bogota, err := kernel.NewLocality("Bogotá", "")
	require.NoError(t, err)
	medellin, err := kernel.NewLocality("Medellín", "")
	require.NoError(t, err)
	dims, err := quote.NewDimensions(20, 30, 10)
	require.NoError(t, err)
	request, err := quote.NewRequest(dims, 3, 50000, bogota, medellin, quote.Standard, quote.Policy{})
	require.NoError(t, err)
	sender, err := shipment.NewSender("Ana Pérez", "3001234567")
	require.NoError(t, err)
	recipient, err := shipment.NewRecipient("Luis Gómez", "3117654321", "Calle 10 # 5-20")
	require.NoError(t, err)
	code, err := shipment.ParseTrackingCode("CDE-1A2B3C4D-12345")
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), code, sender, recipient, request,
		quote.NewQuote(415.3, 32900, 10000), "customer-1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return s
}

func TestHealth(t *testing.T) {
	f := newFixture(t, quote.Policy{})

	rec := f.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerDoc(t *testing.T) {
	f := newFixture(t, quote.Policy{})

	rec := f.do(t, http.MethodGet, "/swagger/doc.json", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/v1/quotes"`)
}

func TestCalculateQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		origin, _ := kernel.NewLocality("Bogotá", "")
		destination, _ := kernel.NewLocality("Medellín", "Antioquia")
		f.calculateQuote.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.CalculateQuoteQuery) bool {
			return q.Request().Class() == quote.Urgent && q.Request().Weight() == 3
		})).Return(queries.CalculateQuoteQueryResponse{
			DistanceKm:  415.32,
			Cost:        34900,
			Insurance:   10000,
			Origin:      origin,
			Destination: destination,
		}, nil).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/quotes", quoteBody, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{
			"distanceKm": 415.32,
			"cost": 34900,
			"insurance": 10000,
			"origin": {"city": "Bogotá"},
			"destination": {"city": "Medellín", "region": "Antioquia"}
		}`, rec.Body.String())
		f.calculateQuote.AssertExpectations(t)
	})

	t.Run("same locality is rejected before pricing", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, "/api/v1/quotes", strings.Replace(
			quoteBody, `{"city": "Medellín", "region": "Antioquia"}`, `{"city": "bogotá"}`, 1), "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, http.StatusUnprocessableEntity, decodeError(t, rec).Code)
		f.calculateQuote.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("height limit follows policy", func(t *testing.T) {
		f := newFixture(t, quote.Policy{HeightLimited: true})

		rec := f.do(t, http.MethodPost, "/api/v1/quotes",
			strings.Replace(quoteBody, `"height": 10`, `"height": 60`, 1), "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "height")
	})

	t.Run("schema violation", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, "/api/v1/quotes", `{"origin": {"city": "Bogotá"}}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	})

	for name, tc := range map[string]struct {
		err  error
		want int
	}{
		"locality not found": {err: ports.ErrLocalityNotFound, want: http.StatusUnprocessableEntity},
		"upstream down":      {err: errs.NewUpstreamUnavailableError("geocoder"), want: http.StatusBadGateway},
		"bad coordinate":     {err: kernel.ErrCoordinateIsInvalid, want: http.StatusBadGateway},
		"unexpected":         {err: errors.New("boom"), want: http.StatusInternalServerError},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, quote.Policy{})
			f.calculateQuote.On("Handle", mock.Anything, mock.Anything).
				Return(queries.CalculateQuoteQueryResponse{}, tc.err).Once()

			rec := f.do(t, http.MethodPost, "/api/v1/quotes", quoteBody, "")

			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusInternalServerError {
				assert.NotContains(t, decodeError(t, rec).Message, "boom")
			}
		})
	}
}

func TestRegisterShipment(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, "/api/v1/shipments", shipmentBody, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a forged token", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		forged, err := httpadapter.SignToken([]byte("other"), "customer-1", httpadapter.RoleAdmin, time.Hour)
		require.NoError(t, err)

		rec := f.do(t, http.MethodPost, "/api/v1/shipments", shipmentBody, forged)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("registers with the caller as actor", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		s := registered(t)
		f.registerShipment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterShipmentCommand) bool {
			return cmd.Actor() == "customer-1" &&
				cmd.Recipient().Address() == "Calle 10 # 5-20" &&
				cmd.Request().Class() == quote.Standard
		})).Return(s, nil).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/shipments", shipmentBody, token(t, "customer-1", httpadapter.RoleCustomer))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var body servers.Shipment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "CDE-1A2B3C4D-12345", body.TrackingCode)
		assert.Equal(t, "PendingPayment", body.Status)
		assert.Equal(t, int64(32900), body.Cost)
		assert.Nil(t, body.CourierId)
		f.registerShipment.AssertExpectations(t)
	})

	t.Run("recipient address is required", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, "/api/v1/shipments",
			strings.Replace(shipmentBody, `, "address": "Calle 10 # 5-20"`, "", 1),
			token(t, "customer-1", httpadapter.RoleCustomer))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		f.registerShipment.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	for name, tc := range map[string]struct {
		err  error
		want int
	}{
		"disabled account":   {err: customer.ErrCustomerIsDisabled, want: http.StatusForbidden},
		"codes exhausted":    {err: commands.ErrTrackingCodeExhausted, want: http.StatusServiceUnavailable},
		"routing down":       {err: errs.NewUpstreamUnavailableError("routing"), want: http.StatusBadGateway},
		"persistence failed": {err: errors.New("connection reset"), want: http.StatusInternalServerError},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, quote.Policy{})
			f.registerShipment.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := f.do(t, http.MethodPost, "/api/v1/shipments", shipmentBody,
				token(t, "customer-1", httpadapter.RoleCustomer))

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestTransitionShipmentStatus(t *testing.T) {
	path := "/api/v1/shipments/CDE-1A2B3C4D-12345/status"

	t.Run("customers may not move shipments", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, path, `{"status": "InTransit"}`, token(t, "customer-1", httpadapter.RoleCustomer))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("courier moves the shipment", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		s := registered(t)
		require.NoError(t, s.Transition(shipment.PaymentConfirmed, "courier-7", time.Now()))
		f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionShipmentStatusCommand) bool {
			return cmd.Target() == shipment.PaymentConfirmed &&
				cmd.Actor() == "courier-7" &&
				cmd.TrackingCode().String() == "CDE-1A2B3C4D-12345"
		})).Return(s, nil).Once()

		rec := f.do(t, http.MethodPost, path, `{"status": "paymentconfirmed"}`, token(t, "courier-7", httpadapter.RoleCourier))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"status":"PaymentConfirmed"`)
	})

	t.Run("admins inherit courier rights", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		f.transition.On("Handle", mock.Anything, mock.Anything).Return(registered(t), nil).Once()

		rec := f.do(t, http.MethodPost, path, `{"status": "Cancelled"}`, token(t, "root", httpadapter.RoleAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	for name, tc := range map[string]struct {
		err  error
		want int
	}{
		"illegal transition": {err: errs.NewTransitionIsInvalidError("PendingPayment", "Delivered"), want: http.StatusConflict},
		"concurrent update":  {err: errs.NewVersionIsInvalidErrorWithCause("version"), want: http.StatusConflict},
		"unknown code":       {err: errs.NewObjectNotFoundError("tracking code", "CDE-1A2B3C4D-12345"), want: http.StatusNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, quote.Policy{})
			f.transition.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := f.do(t, http.MethodPost, path, `{"status": "Delivered"}`, token(t, "courier-7", httpadapter.RoleCourier))

			assert.Equal(t, tc.want, rec.Code)
		})
	}

	t.Run("unknown status name", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, path, `{"status": "Lost"}`, token(t, "courier-7", httpadapter.RoleCourier))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestFinalizeShipment(t *testing.T) {
	path := "/api/v1/shipments/CDE-1A2B3C4D-12345/finalize"

	t.Run("defaults to delivered without a body", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		f.finalize.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.FinalizeByTrackingCodeCommand) bool {
			return cmd.Terminal() == shipment.Delivered && cmd.Actor() == "root"
		})).Return(2, nil).Once()

		rec := f.do(t, http.MethodPost, path, "", token(t, "root", httpadapter.RoleAdmin))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"updated": 2}`, rec.Body.String())
	})

	t.Run("cancel", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		f.finalize.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.FinalizeByTrackingCodeCommand) bool {
			return cmd.Terminal() == shipment.Cancelled
		})).Return(0, nil).Once()

		rec := f.do(t, http.MethodPost, path, `{"status": "Cancelled"}`, token(t, "root", httpadapter.RoleAdmin))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"updated": 0}`, rec.Body.String())
	})

	t.Run("couriers are not admins", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, path, "", token(t, "courier-7", httpadapter.RoleCourier))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetShipment(t *testing.T) {
	t.Run("public view", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		origin, _ := kernel.NewLocality("Bogotá", "")
		destination, _ := kernel.NewLocality("Medellín", "")
		courierID := kernel.NewUUID()
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		f.getShipment.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetShipmentByTrackingCodeQuery) bool {
			return q.TrackingCode().String() == "CDE-1A2B3C4D-12345"
		})).Return(queries.GetShipmentByTrackingCodeQueryResponse{
			TrackingCode:  "CDE-1A2B3C4D-12345",
			Status:        shipment.PaymentConfirmed,
			Class:         quote.Urgent,
			SenderName:    "Ana Pérez",
			RecipientName: "Luis Gómez",
			Origin:        origin,
			Destination:   destination,
			Cost:          34900,
			Insurance:     10000,
			CourierID:     &courierID,
			CreatedAt:     at,
			LastUpdated:   at.Add(time.Hour),
			History: []queries.StatusHistoryItem{
				{Status: shipment.PendingPayment, At: at, Actor: "customer-1"},
				{Status: shipment.PaymentConfirmed, At: at.Add(time.Hour), Actor: "courier-7"},
			},
		}, nil).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/shipments/CDE-1A2B3C4D-12345", "", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body servers.ShipmentTracking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Urgent", body.Class)
		require.NotNil(t, body.CourierId)
		assert.Equal(t, courierID.String(), body.CourierId.String())
		require.Len(t, body.History, 2)
		assert.Equal(t, "PendingPayment", body.History[0].Status)
		assert.Equal(t, "courier-7", body.History[1].Actor)
		assert.NotContains(t, rec.Body.String(), "3117654321")
	})

	t.Run("malformed code", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodGet, "/api/v1/shipments/nope", "", "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		f.getShipment.On("Handle", mock.Anything, mock.Anything).Return(
			queries.GetShipmentByTrackingCodeQueryResponse{},
			errs.NewObjectNotFoundError("tracking code", "CDE-00000000-00000"),
		).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/shipments/CDE-00000000-00000", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetCourierShipments(t *testing.T) {
	t.Run("lists the caller's deliveries", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		courierID := kernel.NewUUID()
		destination, _ := kernel.NewLocality("Medellín", "")
		f.courierShipments.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCourierShipmentsQuery) bool {
			return q.CourierID().IsEqual(courierID)
		})).Return([]queries.GetCourierShipmentsQueryResponse{{
			TrackingCode:     "CDE-1A2B3C4D-12345",
			Status:           shipment.InRoute,
			RecipientName:    "Luis Gómez",
			RecipientPhone:   "3117654321",
			RecipientAddress: "Calle 10 # 5-20",
			Destination:      destination,
			LastUpdated:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}}, nil).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/couriers/me/shipments", "",
			token(t, courierID.String(), httpadapter.RoleCourier))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body []servers.CourierShipment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "InRoute", body[0].Status)
		assert.Equal(t, "3117654321", body[0].RecipientPhone)
	})

	t.Run("subject must be a courier id", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodGet, "/api/v1/couriers/me/shipments", "",
			token(t, "not-a-uuid", httpadapter.RoleCourier))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCouriers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		f.createCourier.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCourierCommand) bool {
			return cmd.Name() == "Camila"
		})).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/couriers", `{"name": "Camila"}`, token(t, "root", httpadapter.RoleAdmin))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var body servers.Courier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Camila", body.Name)
		assert.True(t, body.Available)
	})

	t.Run("empty name", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, "/api/v1/couriers", `{"name": "  "}`, token(t, "root", httpadapter.RoleAdmin))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		id := kernel.NewUUID()
		f.getCouriers.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetAllCouriersQueryResponse{
			{ID: id, Name: "Camila", Available: false, ActiveShipments: 3},
		}, nil).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/couriers", "", token(t, "root", httpadapter.RoleAdmin))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id": "`+id.String()+`", "name": "Camila", "available": false, "activeShipments": 3}]`, rec.Body.String())
	})
}

func TestCustomers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		f.createCustomer.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/customers",
			`{"name": "Ana Pérez", "email": "ana@example.com"}`, token(t, "root", httpadapter.RoleAdmin))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var body servers.Customer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ana@example.com", body.Email)
		assert.True(t, body.Enabled)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPost, "/api/v1/customers",
			`{"name": "Ana", "email": "not an email"}`, token(t, "root", httpadapter.RoleAdmin))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("disable", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		id := kernel.NewUUID()
		f.setEnabled.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetCustomerEnabledCommand) bool {
			return cmd.CustomerID().IsEqual(id) && !cmd.Enabled()
		})).Return(nil).Once()

		rec := f.do(t, http.MethodPut, "/api/v1/customers/"+id.String()+"/enabled",
			`{"enabled": false}`, token(t, "root", httpadapter.RoleAdmin))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.setEnabled.AssertExpectations(t)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})
		id := kernel.NewUUID()
		f.setEnabled.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("customer", id)).Once()

		rec := f.do(t, http.MethodPut, "/api/v1/customers/"+id.String()+"/enabled",
			`{"enabled": true}`, token(t, "root", httpadapter.RoleAdmin))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t, quote.Policy{})

		rec := f.do(t, http.MethodPut, "/api/v1/customers/42/enabled",
			`{"enabled": true}`, token(t, "root", httpadapter.RoleAdmin))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
