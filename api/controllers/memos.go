package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/lotflow-backend/api/responses"
	"github.com/angelmondragon/lotflow-backend/api/validators"
	"github.com/angelmondragon/lotflow-backend/internal/memos"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
)

type memoCreateRequest struct {
	Memo *memos.CreateMemoInput `json:"memo" validate:"required"`
}

type memoCloseRequest struct {
	MemoID string `json:"memo_id" validate:"required"`
}

// MemoList returns every memo with computed totals.
func MemoList(svc memos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memo service unavailable"))
			return
		}
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// MemoDetail returns a single memo by id.
func MemoDetail(svc memos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memo service unavailable"))
			return
		}
		memoID, err := parseUUID(chi.URLParam(r, "memoId"), "memoId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		memo, err := svc.Get(r.Context(), memoID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, memo)
	}
}

// MemoCreate stores a new OPEN memo with its items.
func MemoCreate(svc memos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memo service unavailable"))
			return
		}
		var req memoCreateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		memo, err := svc.Create(r.Context(), *req.Memo)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, memo)
	}
}

// MemoClose locks an OPEN memo. An already locked memo is a 409.
func MemoClose(svc memos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memo service unavailable"))
			return
		}
		var req memoCloseRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		memoID, err := parseUUID(req.MemoID, "memo_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		memo, err := svc.Close(r.Context(), memoID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, memo)
	}
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, field+" is required")
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+field)
	}
	return id, nil
}
