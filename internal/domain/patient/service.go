package patient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medinest/simrs/internal/platform/clock"
)

// EventType classifies an admission audit event.
type EventType string

const (
	EventAdmit EventType = "admit"
	EventAmend EventType = "amend"
)

// Event is one entry in the admission audit trail.
type Event struct {
	ID       uuid.UUID `json:"id"`
	Type     EventType `json:"type"`
	RecordID string    `json:"record_id"`
	At       time.Time `json:"at"`
}

// Service coordinates drafts, validation and the repository, and keeps an
// audit trail of accepted admissions and amendments.
type Service struct {
	repo Repository
	clk  clock.Clock
	log  zerolog.Logger

	mu     sync.Mutex
	events []Event
}

func NewService(repo Repository, clk clock.Clock, log zerolog.Logger) *Service {
	return &Service{repo: repo, clk: clk, log: log}
}

// Admit validates the draft and, when it passes, stores a new record with a
// freshly assigned record number and an initial clinical status of Stabil.
// Validation failures are returned as data, never as an error.
func (s *Service) Admit(ctx context.Context, v FormValues) (*Record, ValidationErrors, error) {
	if errs := Validate(v); !errs.Valid() {
		return nil, errs, nil
	}

	normalizeConditional(&v)

	rec := &Record{}
	v.apply(rec)
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("create record: %w", err)
	}

	s.recordEvent(EventAdmit, rec.ID)
	s.log.Info().
		Str("record_id", rec.ID).
		Str("reg_number", rec.RegNumber).
		Str("room_class", string(rec.RoomClass)).
		Msg("patient admitted")
	return rec, nil, nil
}

// Amend validates the draft and overwrites every form field of the existing
// record. The record ID and clinical status are preserved; amendments never
// change status.
func (s *Service) Amend(ctx context.Context, id string, v FormValues) (*Record, ValidationErrors, error) {
	if errs := Validate(v); !errs.Valid() {
		return nil, errs, nil
	}

	normalizeConditional(&v)

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load record %s: %w", id, err)
	}
	v.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("update record %s: %w", id, err)
	}

	s.recordEvent(EventAmend, rec.ID)
	s.log.Info().Str("record_id", rec.ID).Msg("admission amended")
	return rec, nil, nil
}

// Get loads one record by its record number.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the list-view page for the given query.
func (s *Service) List(ctx context.Context, spec QuerySpec) (QueryResult, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return QueryResult{}, fmt.Errorf("load records: %w", err)
	}
	return Query(records, spec), nil
}

// Matching returns the filtered and sorted (but not paginated) set, as used
// by the export surface.
func (s *Service) Matching(ctx context.Context, spec QuerySpec) ([]*Record, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	spec.Page = 1
	spec.PageSize = len(records) + 1
	return Query(records, spec).Page, nil
}

// Events returns a copy of the audit trail, oldest first.
func (s *Service) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Service) recordEvent(t EventType, recordID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		ID:       uuid.New(),
		Type:     t,
		RecordID: recordID,
		At:       s.clk.Now(),
	})
}

// normalizeConditional clears sub-fields whose discriminant no longer
// applies, so a stale referral or insurance block cannot survive an edit
// that changed the entry way or payment method.
func normalizeConditional(v *FormValues) {
	if v.EntryWay != EntryReferral {
		v.Referral = Referral{}
	}
	if v.PaymentMethod == PaySelf {
		v.InsuranceNumber = ""
	}
	if v.PaymentMethod != PayBPJS {
		v.BPJSClass = ""
	}
}
