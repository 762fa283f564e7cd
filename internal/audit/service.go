package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Entry is a successful write to be recorded.
type Entry struct {
	EntityType enums.AuditEntityType
	EntityID   uuid.UUID
	Action     enums.AuditAction
	Summary    map[string]any
}

// Filter narrows audit listings.
type Filter struct {
	EntityType enums.AuditEntityType
	EntityID   *uuid.UUID
	Limit      int
}

// EntryView is the API representation of an audit row.
type EntryView struct {
	ID         uuid.UUID             `json:"id"`
	EntityType enums.AuditEntityType `json:"entity_type"`
	EntityID   uuid.UUID             `json:"entity_id"`
	Action     enums.AuditAction     `json:"action"`
	Summary    json.RawMessage       `json:"summary_json,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

// Recorder appends audit rows, optionally inside a caller-owned transaction.
type Recorder interface {
	WithTx(tx *gorm.DB) Recorder
	Record(ctx context.Context, entry Entry) error
}

// Service records and lists the audit trail.
type Service interface {
	Recorder
	List(ctx context.Context, filter Filter) ([]EntryView, error)
}

type service struct {
	repo Repository
}

// NewService wires an audit service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("audit repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) WithTx(tx *gorm.DB) Recorder {
	return &service{repo: s.repo.WithTx(tx)}
}

func (s *service) Record(ctx context.Context, entry Entry) error {
	if entry.EntityType == "" {
		return fmt.Errorf("audit entity type is required")
	}
	if entry.EntityID == uuid.Nil {
		return fmt.Errorf("audit entity id is required")
	}
	if entry.Action == "" {
		return fmt.Errorf("audit action is required")
	}

	var summary []byte
	if entry.Summary != nil {
		encoded, err := json.Marshal(entry.Summary)
		if err != nil {
			return fmt.Errorf("encode audit summary: %w", err)
		}
		summary = encoded
	}

	return s.repo.Create(ctx, &models.AuditLogEntry{
		ID:          uuid.New(),
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Action:      entry.Action,
		SummaryJSON: summary,
	})
}

func (s *service) List(ctx context.Context, filter Filter) ([]EntryView, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]EntryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, EntryView{
			ID:         row.ID,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Action:     row.Action,
			Summary:    json.RawMessage(row.SummaryJSON),
			CreatedAt:  row.CreatedAt,
		})
	}
	return views, nil
}
