package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
)

// writeServiceError maps service errors onto the API error taxonomy. Anything
// unrecognised is logged and answered with a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		inversiesdk.ErrValidation.WithMessage(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		inversiesdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUnauthenticated):
		inversiesdk.ErrUnauthenticated.WriteError(w)
	case errors.Is(err, service.ErrSessionInvalid):
		inversiesdk.ErrSessionInvalid.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		inversiesdk.ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		// One message for missing and foreign resources alike.
		inversiesdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrConflict):
		inversiesdk.ErrConflict.WithMessage(err.Error()).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slogx.Err(err))
		inversiesdk.ErrInternal.WriteError(w)
	}
}
