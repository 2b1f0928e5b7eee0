package http

import (
	"errors"
	"log/slog"
	"net/http"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"
	"parcel/internal/generated/servers"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error to its HTTP status. Order matters: the more
// specific conditions are checked before the generic validation errors
// they may also wrap.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, customer.ErrCustomerIsDisabled):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrUpstreamUnavailable), errors.Is(err, kernel.ErrCoordinateIsInvalid):
		return http.StatusBadGateway
	case errors.Is(err, ports.ErrLocalityNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrTrackingCodeExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionIsInvalid),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, services.ErrNoCouriersAvailable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Internal failures are logged with the
// cause and answered with a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	ctx := c.Request().Context()

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx, "request failed", "path", c.Path(), "error", err)
		message = http.StatusText(code)
	} else {
		s.logger.InfoContext(ctx, "request rejected", "path", c.Path(), "status", code, "error", err)
	}

	return c.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// ErrorHandler renders errors that escape handlers (routing, binding,
// validation and auth middleware) in the same body shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}
