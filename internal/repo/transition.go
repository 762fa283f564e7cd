package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRecordNotFound is returned when a transition targets a missing row.
var ErrRecordNotFound = errors.New("record not found")

// StatusTransition describes a compare-and-set on a status column.
type StatusTransition struct {
	Table  string
	Column string
	ID     uuid.UUID
	From   string
	To     string
	// Extra columns written alongside the status.
	Extra map[string]any
}

// StatusConflictError reports that the row exists but was not in the expected state.
type StatusConflictError struct {
	Table   string
	ID      uuid.UUID
	Current string
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("%s %s is %s", e.Table, e.ID, e.Current)
}

// CompareAndSetStatus moves a row from t.From to t.To in a single conditional
// update. When no row changes, the row is re-read to tell a missing record
// apart from one already past the expected state.
func (b Base) CompareAndSetStatus(ctx context.Context, t StatusTransition) error {
	return CompareAndSetStatus(b.DB(ctx), t)
}

// CompareAndSetStatus runs the transition on an explicit handle, typically a transaction.
func CompareAndSetStatus(db *gorm.DB, t StatusTransition) error {
	column := t.Column
	if column == "" {
		column = "status"
	}

	updates := map[string]any{column: t.To}
	for key, value := range t.Extra {
		updates[key] = value
	}

	res := db.Table(t.Table).
		Where("id = ? AND "+column+" = ?", t.ID, t.From).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var current struct {
		Status string
	}
	err := db.Table(t.Table).
		Select(column+" AS status").
		Where("id = ?", t.ID).
		Take(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return &StatusConflictError{Table: t.Table, ID: t.ID, Current: current.Status}
}
