package controllers

import (
	"net/http"

	"github.com/ravikiranj/stocktrail-backend/api/middleware"
	"github.com/ravikiranj/stocktrail-backend/api/responses"
	"github.com/ravikiranj/stocktrail-backend/api/validators"
	"github.com/ravikiranj/stocktrail-backend/internal/messages"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
	"github.com/ravikiranj/stocktrail-backend/pkg/logger"
)

// MessageCompose renders a reorder message and its wa.me deep link.
func MessageCompose(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "messages service unavailable"))
			return
		}

		var payload messages.ComposeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Compose(r.Context(), middleware.TenantIDFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
