package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/lotflow-backend/api/responses"
	"github.com/angelmondragon/lotflow-backend/api/validators"
	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
)

// AuditList returns the newest audit entries, filtered by entity when requested.
func AuditList(svc audit.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "audit service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", audit.DefaultListLimit, 1, audit.MaxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter := audit.Filter{Limit: limit}

		if raw := strings.TrimSpace(r.URL.Query().Get("entity_type")); raw != "" {
			entityType, err := enums.ParseAuditEntityType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid entity_type"))
				return
			}
			filter.EntityType = entityType
		}
		if raw := r.URL.Query().Get("entity_id"); strings.TrimSpace(raw) != "" {
			entityID, err := parseUUID(raw, "entity_id")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			filter.EntityID = &entityID
		}

		entries, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}
