package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/imakhan79/Grocery-Mart/api/responses"
	"github.com/imakhan79/Grocery-Mart/internal/audit"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
	"github.com/imakhan79/Grocery-Mart/pkg/logger"
)

// ListAuditLog returns recent admin actions, newest first.
func ListAuditLog(svc audit.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "audit service unavailable"))
			return
		}

		limit := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil || value <= 0 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer"))
				return
			}
			limit = value
		}

		entries, err := svc.List(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}
