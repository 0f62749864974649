package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/geo"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/services"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// statusForError maps domain failures onto HTTP status codes.
//
// Conflicts (409) are the routine race outcomes clients retry or drop:
// stale transitions, lost claims, cancellation after acceptance. Forbidden
// (403) covers role and ownership violations. Unprocessable (422) covers
// requests that are well-formed but violate business rules.
func statusForError(err error) int {
	var notFound *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound), errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrStaleTransition),
		errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrAlreadyProcessing),
		errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, order.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInsufficientPayment),
		errors.Is(err, order.ErrNotSettleable),
		errors.Is(err, services.ErrOutOfCoverage),
		errors.Is(err, geo.ErrAddressNotResolved),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON writes the uniform error body for err. Internal failures are not
// echoed back to the client.
func errorJSON(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, ErrorResponse{
			Code:    httpErr.Code,
			Message: http.StatusText(httpErr.Code),
		})
	}

	code := statusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
