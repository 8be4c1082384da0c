package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/latest"

	"github.com/labstack/echo/v4"
)

// statusOf maps an application error to the response status and the message
// the seller sees.
func statusOf(err error) (int, string) {
	var serviceErr *ports.ServiceError

	switch {
	case errors.Is(err, errs.ErrValidationFailed):
		return http.StatusUnprocessableEntity, "Please correct the highlighted fields"
	case errors.As(err, &serviceErr) && serviceErr.Rejected:
		return http.StatusUnprocessableEntity, serviceErr.Message
	case errors.As(err, &serviceErr):
		return http.StatusBadGateway, serviceErr.Message
	case errors.Is(err, ports.ErrServiceUnavailable):
		return http.StatusBadGateway, "A required service is unavailable, please try again"
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, kyc.ErrDocumentNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, "The draft was changed elsewhere, reload it and try again"
	case errors.Is(err, services.ErrSectionNotActive),
		errors.Is(err, services.ErrSectionNotCompleted),
		errors.Is(err, services.ErrOrderNotReady),
		errors.Is(err, draft.ErrLastItemCannotBeRemoved),
		errors.Is(err, latest.ErrSuperseded):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrShippingOptionNotQuoted):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}

// fail writes err as an Error body.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, message := statusOf(err)

	body := Error{Code: status, Message: message}
	if v, ok := errs.AsValidationError(err); ok {
		body.Fields = v.Fields
	}

	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", status,
			"error", err,
		)
	}

	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func logger() *slog.Logger {
	return slog.Default().With("component", "http")
}
