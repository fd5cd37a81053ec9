package http

import (
	"errors"
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusCode maps an application error to its HTTP status.
func statusCode(err error) int {
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrMissingRiderAssignment),
		errors.Is(err, lifecycle.ErrReceivedQuantityExceedsOrdered),
		errors.Is(err, lifecycle.ErrRiderUnavailable),
		errors.Is(err, commands.ErrNoPendingDelivery),
		errors.Is(err, commands.ErrNoAvailableRiders):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErrs),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, lifecycle.ErrUnknownStatus),
		errors.Is(err, lifecycle.ErrUnknownKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an Error body. Internal failures are logged and
// reported with a generic message.
func (s *Server) respondError(c echo.Context, kind lifecycle.Kind, err error) error {
	code := statusCode(err)
	if code == http.StatusConflict && s.rejections != nil {
		s.rejections.Reject(kind, err)
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return c.JSON(code, Error{Code: code, Message: message})
}
