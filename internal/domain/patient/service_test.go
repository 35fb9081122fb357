package patient

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medinest/simrs/internal/platform/clock"
)

func newTestService(seed []*Record) (*Service, *MemoryRepository) {
	clk := clock.NewManual(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	repo := NewMemoryRepository(clk, 0, seed)
	return NewService(repo, clk, zerolog.Nop()), repo
}

func TestAdmit_roundTrip(t *testing.T) {
	svc, repo := newTestService(nil)

	draft := validDraft()
	rec, verrs, err := svc.Admit(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verrs != nil {
		t.Fatalf("unexpected validation errors: %v", verrs)
	}
	if rec.ID == "" {
		t.Error("expected assigned record number")
	}
	if rec.Status != StatusStable {
		t.Errorf("expected Stabil, got %s", rec.Status)
	}

	all, _ := repo.GetAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(all))
	}
	stored := all[0]

	// Every draft field survives unchanged except the assigned id and status.
	want := stored.Clone()
	want.ID = ""
	want.Status = ""
	got := &Record{}
	draft.apply(got)
	if *want != *got {
		t.Errorf("draft fields not preserved:\nwant %+v\ngot  %+v", got, want)
	}
}

func TestAdmit_validationFailureReturnsData(t *testing.T) {
	svc, repo := newTestService(nil)

	draft := validDraft()
	draft.Name = ""
	rec, verrs, err := svc.Admit(context.Background(), draft)
	if err != nil {
		t.Fatalf("validation failure must not be an error: %v", err)
	}
	if rec != nil {
		t.Error("no record must be created on validation failure")
	}
	if verrs["name"] == "" {
		t.Errorf("expected name error, got %v", verrs)
	}

	all, _ := repo.GetAll(context.Background())
	if len(all) != 0 {
		t.Errorf("store must stay empty, got %d records", len(all))
	}
}

func TestAmend_preservesIDAndStatus(t *testing.T) {
	svc, _ := newTestService(nil)

	rec, _, err := svc.Admit(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Status changes outside the admission flow must survive an amendment.
	upd := rec.Clone()
	upd.Status = StatusCritical
	if err := svc.repo.Update(context.Background(), upd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft := validDraft()
	draft.Name = "Andi Pratama Jr."
	amended, verrs, err := svc.Amend(context.Background(), rec.ID, draft)
	if err != nil || verrs != nil {
		t.Fatalf("unexpected failure: %v %v", err, verrs)
	}
	if amended.ID != rec.ID {
		t.Errorf("id must be preserved, got %s", amended.ID)
	}
	if amended.Status != StatusCritical {
		t.Errorf("amendment must not touch status, got %s", amended.Status)
	}
	if amended.Name != "Andi Pratama Jr." {
		t.Errorf("expected updated name, got %s", amended.Name)
	}
}

func TestAmend_notFound(t *testing.T) {
	svc, _ := newTestService(nil)

	_, verrs, err := svc.Amend(context.Background(), "RM-404", validDraft())
	if verrs != nil {
		t.Fatalf("unexpected validation errors: %v", verrs)
	}
	if err == nil {
		t.Fatal("expected error for unknown record")
	}
}

func TestAmend_clearsStaleConditionalFields(t *testing.T) {
	svc, _ := newTestService(nil)

	draft := validDraft()
	draft.EntryWay = EntryReferral
	draft.Referral = Referral{Origin: "Puskesmas", Facility: "RSUD Madiun", LetterNumber: "LTR-9-2024"}
	rec, _, err := svc.Admit(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Referral.Facility != "RSUD Madiun" {
		t.Fatalf("referral must be stored for Rujukan Luar, got %+v", rec.Referral)
	}

	// Switching entry way and payment method drops the dependent blocks,
	// even though the draft still carries them.
	draft.EntryWay = EntryEmergency
	draft.PaymentMethod = PaySelf
	amended, _, err := svc.Amend(context.Background(), rec.ID, draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !amended.Referral.IsZero() {
		t.Errorf("referral must be cleared, got %+v", amended.Referral)
	}
	if amended.InsuranceNumber != "" || amended.BPJSClass != "" {
		t.Errorf("insurance fields must be cleared for Umum-Pribadi, got %q %q", amended.InsuranceNumber, amended.BPJSClass)
	}
}

func TestAdmit_bpjsClassClearedForNonBPJS(t *testing.T) {
	svc, _ := newTestService(nil)

	draft := validDraft()
	draft.PaymentMethod = PayPrivate
	draft.InsuranceNumber = "POL-123"
	draft.BPJSClass = "Kelas 2"

	rec, _, err := svc.Admit(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.InsuranceNumber != "POL-123" {
		t.Errorf("private insurance keeps its policy number, got %q", rec.InsuranceNumber)
	}
	if rec.BPJSClass != "" {
		t.Errorf("bpjs class only applies to BPJS, got %q", rec.BPJSClass)
	}
}

func TestService_auditTrail(t *testing.T) {
	svc, _ := newTestService(nil)

	rec, _, err := svc.Admit(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.Amend(context.Background(), rec.ID, validDraft()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := svc.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventAdmit || events[1].Type != EventAmend {
		t.Errorf("expected admit then amend, got %s %s", events[0].Type, events[1].Type)
	}
	if events[0].RecordID != rec.ID || events[1].RecordID != rec.ID {
		t.Error("events must reference the record")
	}
	if events[0].ID == events[1].ID {
		t.Error("event ids must be unique")
	}
}

func TestService_ListAndMatching(t *testing.T) {
	seed := testRecords()
	svc, _ := newTestService(seed)

	res, err := svc.List(context.Background(), QuerySpec{Gender: string(GenderMale)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalMatched != 2 {
		t.Errorf("expected 2 male patients, got %d", res.TotalMatched)
	}

	matching, err := svc.Matching(context.Background(), QuerySpec{Gender: string(GenderMale), PageSize: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matching) != 2 {
		t.Errorf("Matching must ignore pagination, got %d records", len(matching))
	}
}
