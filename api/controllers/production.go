package controllers

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/lotflow-backend/api/responses"
	"github.com/angelmondragon/lotflow-backend/api/validators"
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
)

const (
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	workbookFilename  = "lotflow-production.xlsx"
	maxSearchQueryLen = 128
)

// ProductionLots lists lot snapshots, optionally filtered by search and stage.
func ProductionLots(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "production service unavailable"))
			return
		}
		filter := production.LotFilter{
			Search: validators.SanitizeString(r.URL.Query().Get("search"), maxSearchQueryLen),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("stage")); raw != "" {
			stage, err := enums.ParseStage(strings.ToUpper(raw))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid stage").
					WithDetails(map[string]any{"allowed": enums.KnownStages()}))
				return
			}
			filter.Stage = stage
		}

		lots, err := svc.ListLots(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lots)
	}
}

// ProductionLot returns one lot's snapshot and ordered memo timeline.
func ProductionLot(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "production service unavailable"))
			return
		}
		lotCode := chi.URLParam(r, "lotCode")
		if decoded, err := url.PathUnescape(lotCode); err == nil {
			lotCode = decoded
		}
		detail, err := svc.GetLot(r.Context(), lotCode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// ProductionStages returns the per-stage board.
func ProductionStages(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "production service unavailable"))
			return
		}
		board, err := svc.StageBoard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, board)
	}
}

// ProductionExport streams the stage board and lot list as an xlsx workbook.
func ProductionExport(svc production.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "production service unavailable"))
			return
		}
		var buf bytes.Buffer
		if err := svc.ExportWorkbook(r.Context(), &buf); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteRaw(w, xlsxContentType, workbookFilename, buf.Bytes())
	}
}
