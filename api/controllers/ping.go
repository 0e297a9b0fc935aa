package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ravikiranj/stocktrail-backend/api/middleware"
	"github.com/ravikiranj/stocktrail-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if tenantID := middleware.TenantIDFromContext(r.Context()); tenantID != uuid.Nil {
			payload["tenant_id"] = tenantID.String()
		}
		responses.WriteSuccess(w, payload)
	}
}
