package controllers

import (
	"net/http"

	"github.com/ravikiranj/stocktrail-backend/api/middleware"
	"github.com/ravikiranj/stocktrail-backend/api/responses"
	"github.com/ravikiranj/stocktrail-backend/internal/alerts"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
	"github.com/ravikiranj/stocktrail-backend/pkg/logger"
)

// LowStock returns the tenant's depleted products, most depleted first.
func LowStock(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "alerts service unavailable"))
			return
		}

		items, err := svc.LowStock(r.Context(), middleware.TenantIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// LowStockBySupplier groups the low-stock report per supplier for reorder
// message composition.
func LowStockBySupplier(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "alerts service unavailable"))
			return
		}

		groups, err := svc.LowStockBySupplier(r.Context(), middleware.TenantIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, groups)
	}
}
