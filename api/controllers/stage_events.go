package controllers

import (
	"net/http"

	"github.com/angelmondragon/lotflow-backend/api/responses"
	"github.com/angelmondragon/lotflow-backend/api/validators"
	"github.com/angelmondragon/lotflow-backend/internal/stageevents"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
)

type stageEventCreateRequest struct {
	Event *stageevents.EventInput `json:"event" validate:"required"`
}

// StageEventList lists the stage events of ?lot_code=.
func StageEventList(svc stageevents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stage event service unavailable"))
			return
		}
		lotCode := validators.SanitizeString(r.URL.Query().Get("lot_code"), maxSearchQueryLen)
		events, err := svc.List(r.Context(), lotCode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, events)
	}
}

// StageEventCreate records a manual stage note. The lot's derived stage is
// unaffected.
func StageEventCreate(svc stageevents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stage event service unavailable"))
			return
		}
		var req stageEventCreateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		event, err := svc.Create(r.Context(), *req.Event)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, event)
	}
}
