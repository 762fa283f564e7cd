package production

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
)

// MemoSource supplies the memo log with items attached.
type MemoSource interface {
	ListMemos(ctx context.Context) ([]Memo, error)
}

// SliceSource serves a fixed set of memos.
type SliceSource []Memo

// ListMemos returns a copy of the fixed memos.
func (s SliceSource) ListMemos(ctx context.Context) ([]Memo, error) {
	return slices.Clone([]Memo(s)), nil
}

// TimelineEntry is one memo of a lot's history with its totals.
type TimelineEntry struct {
	MemoID        uuid.UUID  `json:"memo_id"`
	MemoNo        string     `json:"memo_no"`
	Process       Process    `json:"process"`
	FromParty     string     `json:"from_party"`
	ToParty       string     `json:"to_party"`
	DateOutHeader types.Date `json:"date_out_header"`
	DateInHeader  types.Date `json:"date_in_header"`
	Locked        bool       `json:"status_locked"`
	Totals        MemoTotals `json:"totals"`
}

// LotDetail is a lot snapshot along with the timeline it was derived from.
type LotDetail struct {
	Snapshot LotSnapshot     `json:"snapshot"`
	Timeline []TimelineEntry `json:"timeline"`
	Events   []StageEvent    `json:"stage_events"`
}

// StageBoard is the dashboard view over all lots.
type StageBoard struct {
	Stages []StageSummary `json:"stages"`
	// Unstaged lists lots whose current stage is outside the known vocabulary.
	Unstaged []string `json:"unstaged_lots"`
}

// Service derives lot state from the memo log. Every call fetches the log
// once and recomputes from scratch.
type Service interface {
	ListLots(ctx context.Context, filter LotFilter) ([]LotSnapshot, error)
	GetLot(ctx context.Context, lotCode string) (*LotDetail, error)
	StageBoard(ctx context.Context) (*StageBoard, error)
	ExportWorkbook(ctx context.Context, w io.Writer) error
}

type service struct {
	source MemoSource
	events EventSource
	stages []enums.Stage
}

// NewService builds the derivation service over a memo source.
func NewService(source MemoSource, opts ...Option) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("memo source required")
	}
	svc := &service{source: source, stages: enums.KnownStages()}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) ListLots(ctx context.Context, filter LotFilter) ([]LotSnapshot, error) {
	memos, err := s.source.ListMemos(ctx)
	if err != nil {
		return nil, err
	}
	return FilterLots(ResolveLots(memos), filter), nil
}

func (s *service) GetLot(ctx context.Context, lotCode string) (*LotDetail, error) {
	if lotCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lot code is required")
	}

	memos, err := s.source.ListMemos(ctx)
	if err != nil {
		return nil, err
	}

	tl := BuildTimeline(memos, lotCode)
	if tl.Len() == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lot not found")
	}

	detail := &LotDetail{
		Snapshot: ResolveLot(lotCode, tl),
		Timeline: make([]TimelineEntry, 0, tl.Len()),
		Events:   []StageEvent{},
	}
	for memo := range tl.All() {
		detail.Timeline = append(detail.Timeline, TimelineEntry{
			MemoID:        memo.ID,
			MemoNo:        memo.MemoNo,
			Process:       memo.Process,
			FromParty:     memo.FromParty,
			ToParty:       memo.ToParty,
			DateOutHeader: memo.DateOutHeader,
			DateInHeader:  memo.DateInHeader,
			Locked:        memo.Locked,
			Totals:        ComputeMemoTotals(memo.Items),
		})
	}
	if s.events != nil {
		events, err := s.events.ListStageEvents(ctx, lotCode)
		if err != nil {
			return nil, err
		}
		detail.Events = append(detail.Events, events...)
	}
	return detail, nil
}

func (s *service) StageBoard(ctx context.Context) (*StageBoard, error) {
	memos, err := s.source.ListMemos(ctx)
	if err != nil {
		return nil, err
	}
	return s.board(ResolveLots(memos)), nil
}

func (s *service) board(lots []LotSnapshot) *StageBoard {
	board := &StageBoard{
		Stages:   AggregateStages(lots, s.stages),
		Unstaged: []string{},
	}
	for _, lot := range lots {
		if !slices.Contains(s.stages, lot.CurrentStage) {
			board.Unstaged = append(board.Unstaged, lot.LotCode)
		}
	}
	return board
}

func (s *service) ExportWorkbook(ctx context.Context, w io.Writer) error {
	memos, err := s.source.ListMemos(ctx)
	if err != nil {
		return err
	}
	lots := ResolveLots(memos)
	return WriteWorkbook(w, s.board(lots), lots)
}
