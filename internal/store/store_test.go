package store

import (
	"path/filepath"
	"testing"

	"salesdesk/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "salesdesk.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	state := model.NewAppState()
	state.Representatives = []model.Representative{{
		ID:             "rep-1",
		FirstName:      "Иван",
		LastName:       "Иванов",
		FullName:       "Иван Иванов",
		SuccessRate:    85,
		CourseProgress: 60,
		ProfileURL:     "https://example.com/p/1",
		Conversations:  &model.Conversations{Conv1: "https://example.com/c/1"},
	}}
	state.Performance.InitRepresentative("rep-1")
	rec := state.Performance.Record(model.PeriodCurrentMonth, "rep-1")
	rec.CreditCards = model.CreditCardData{Offers: 10, Issuance: 4, Utilization: 40}
	rec.DataUpdate = 3
	state.Performance.Set(model.PeriodCurrentMonth, "rep-1", rec)

	if err := s.SaveState(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded.Representatives) != 1 || loaded.Representatives[0].SuccessRate != 85 {
		t.Fatalf("representatives did not round-trip: %+v", loaded.Representatives)
	}
	got := loaded.Performance.Record(model.PeriodCurrentMonth, "rep-1")
	if got.CreditCards != rec.CreditCards || got.DataUpdate != 3 {
		t.Fatalf("performance did not round-trip: %+v", got)
	}
	if loaded.Performance.Record(model.PeriodLast3Months, "rep-1").CreditCards.Offers != 0 {
		t.Fatalf("other period must stay zeroed")
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Representatives) != 0 {
		t.Fatalf("expected no representatives")
	}
	for _, p := range model.Periods() {
		if state.Performance[p] == nil {
			t.Fatalf("period partition %s must exist even when empty", p)
		}
	}
}

func TestStore_LenientLoadDefaultsMissingFields(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	// A document written by an older build: no simCards section, no
	// representativeId back-reference, only one period present.
	partial := []byte(`{"currentMonth":{"rep-1":{"creditCards":{"offers":2}}}}`)
	if _, err := s.db.Exec(`INSERT INTO app_state (key, value) VALUES (?, ?)`, keyPerformance, partial); err != nil {
		t.Fatalf("seed: %v", err)
	}

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rec := state.Performance.Record(model.PeriodCurrentMonth, "rep-1")
	if rec.CreditCards.Offers != 2 {
		t.Fatalf("populated field lost: %+v", rec)
	}
	if rec.SimCards != (model.SimCardData{}) || rec.DataUpdate != 0 {
		t.Fatalf("missing sub-sections must default to zero: %+v", rec)
	}
	if rec.RepresentativeID != "rep-1" {
		t.Fatalf("back-reference must default to the map key: %q", rec.RepresentativeID)
	}
}

func TestStore_RemoveCascadesAcrossPeriods(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	state := model.NewAppState()
	state.Representatives = []model.Representative{{ID: "rep-1", FullName: "Иван Иванов"}}
	state.Performance.InitRepresentative("rep-1")
	if err := s.SaveState(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	state.Representatives = nil
	state.Performance.Remove("rep-1")
	if err := s.SaveState(state); err != nil {
		t.Fatalf("save after remove: %v", err)
	}

	loaded, err := s.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, p := range model.Periods() {
		if _, ok := loaded.Performance[p]["rep-1"]; ok {
			t.Fatalf("orphan record left in period %s", p)
		}
	}
}
