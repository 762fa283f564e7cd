package repo

import (
	"errors"

	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"gorm.io/gorm"
)

// StoreError maps a persistence failure onto the API error taxonomy. Missing
// rows become NotFound with notFoundMsg; anything else keeps the store's
// message.
func StoreError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, notFoundMsg)
	}
	return pkgerrors.Store(err)
}

// TransitionError maps a CompareAndSetStatus failure. A row already past the
// expected state becomes Conflict with conflictMsg.
func TransitionError(err error, notFoundMsg, conflictMsg string) error {
	var conflict *StatusConflictError
	if errors.As(err, &conflict) {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, conflictMsg)
	}
	return StoreError(err, notFoundMsg)
}
