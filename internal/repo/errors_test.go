package repo

import (
	"errors"
	"testing"

	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestStoreError(t *testing.T) {
	if StoreError(nil, "x") != nil {
		t.Fatal("nil should stay nil")
	}

	notFound := pkgerrors.As(StoreError(gorm.ErrRecordNotFound, "memo not found"))
	if notFound.Code() != pkgerrors.CodeNotFound || notFound.Message() != "memo not found" {
		t.Fatalf("unexpected not found mapping: %v", notFound)
	}

	raw := errors.New(`duplicate key value violates unique constraint "memos_memo_no_key"`)
	mapped := pkgerrors.As(StoreError(raw, "memo not found"))
	if mapped.Code() != pkgerrors.CodeStore || mapped.Message() != raw.Error() {
		t.Fatalf("store message must be kept verbatim, got %v", mapped)
	}

	typed := pkgerrors.New(pkgerrors.CodeValidation, "bad")
	if StoreError(typed, "x") != typed {
		t.Fatal("typed errors pass through")
	}
}

func TestTransitionError(t *testing.T) {
	conflict := pkgerrors.As(TransitionError(&StatusConflictError{Table: "memos", ID: uuid.New(), Current: "LOCKED"}, "memo not found", "Memo is already locked"))
	if conflict.Code() != pkgerrors.CodeConflict || conflict.Message() != "Memo is already locked" {
		t.Fatalf("unexpected conflict mapping: %v", conflict)
	}

	missing := pkgerrors.As(TransitionError(ErrRecordNotFound, "memo not found", "Memo is already locked"))
	if missing.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected missing mapping: %v", missing)
	}
}
