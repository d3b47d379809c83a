// Package importer coordinates report uploads: parse, the new-representative
// confirmation step, reconciliation, and the atomic store rewrite. The
// coordinator is also the single serialization point for every state
// mutation, so merge-by-replacement is never exposed to concurrent writers.
package importer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"salesdesk/internal/model"
	"salesdesk/internal/parser"
	"salesdesk/internal/reconciler"
	"salesdesk/internal/store"
)

// ErrUploadInFlight is returned when an upload is rejected because another
// one has not finished yet.
var ErrUploadInFlight = errors.New("another upload is already in progress")

// ErrRepresentativeNotFound is returned by the edit/remove commands.
var ErrRepresentativeNotFound = errors.New("representative not found")

// Decision is the caller's answer to the new-representative confirmation.
type Decision string

const (
	// DecisionNone means no answer yet: unknown names pause the upload.
	DecisionNone    Decision = ""
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// UploadOptions carries the out-of-band upload parameters.
type UploadOptions struct {
	Filename    string
	ProductType model.ProductType
	Period      model.Period
	Decision    Decision
}

// UploadSummary is what the caller sees after an upload attempt.
type UploadSummary struct {
	Processed            int      `json:"processed"`
	Skipped              int      `json:"skipped"`
	AddedRepresentatives int      `json:"addedRepresentatives"`
	NewNames             []string `json:"newNames,omitempty"`
	NeedsConfirmation    bool     `json:"needsConfirmation"`
	Applied              bool     `json:"applied"`
}

// Coordinator owns the store and serializes all mutations.
type Coordinator struct {
	store *store.Store
	mu    sync.Mutex
}

// NewCoordinator creates an upload coordinator over the store.
func NewCoordinator(s *store.Store) *Coordinator {
	return &Coordinator{store: s}
}

// Upload runs the full ingestion pipeline for one report file. Only one
// upload may be in flight at a time; a concurrent call fails fast with
// ErrUploadInFlight. Parse-level errors abort with the store untouched.
//
// When the parse discovers unknown representative names and opts.Decision is
// DecisionNone, nothing is applied: the summary lists the names and asks the
// caller to re-submit with an accept/decline decision. Declining still
// applies reports for already-known representatives.
func (c *Coordinator) Upload(data []byte, opts UploadOptions) (*UploadSummary, error) {
	if !c.mu.TryLock() {
		return nil, ErrUploadInFlight
	}
	defer c.mu.Unlock()

	state, err := c.store.LoadState()
	if err != nil {
		return nil, err
	}

	existingNames := make([]string, len(state.Representatives))
	for i, rep := range state.Representatives {
		existingNames[i] = rep.FullName
	}

	parsed, err := parser.ParseReport(data, opts.Filename, opts.ProductType, existingNames)
	if err != nil {
		return nil, err
	}

	pendingNames := dedupeNames(parsed.NewNames)
	if len(pendingNames) > 0 && opts.Decision == DecisionNone {
		return &UploadSummary{
			NewNames:          pendingNames,
			NeedsConfirmation: true,
		}, nil
	}

	reps := state.Representatives
	perf := state.Performance
	added := 0

	if opts.Decision == DecisionAccept {
		for _, fullName := range pendingNames {
			rep := newRepresentative(fullName)
			reps = append(reps, rep)
			perf.InitRepresentative(rep.ID)
			added++
		}
	}

	result := reconciler.Reconcile(reconciler.Input{
		Reports:         parsed.Reports,
		ProductType:     opts.ProductType,
		Period:          opts.Period,
		Representatives: reps,
		Performance:     perf,
	})

	state.Representatives = result.Representatives
	state.Performance = result.Performance
	if err := c.store.SaveState(state); err != nil {
		return nil, fmt.Errorf("failed to persist upload: %w", err)
	}

	return &UploadSummary{
		Processed:            result.Processed,
		Skipped:              result.Skipped,
		AddedRepresentatives: added,
		NewNames:             pendingNames,
		Applied:              true,
	}, nil
}

// State returns the current persisted state.
func (c *Coordinator) State() (*model.AppState, error) {
	return c.store.LoadState()
}

// AddRepresentative creates a representative from form input, assigns its ID
// and initializes a zeroed performance record in every period.
func (c *Coordinator) AddRepresentative(rep model.Representative) (model.Representative, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := c.store.LoadState()
	if err != nil {
		return model.Representative{}, err
	}

	rep.FullName = model.Normalize(rep.FullName)
	if rep.FullName == "" {
		return model.Representative{}, errors.New("full name is required")
	}
	if rep.FirstName == "" && rep.LastName == "" {
		rep.FirstName, rep.LastName = model.ParseFullName(rep.FullName)
	}
	rep.ID = uuid.NewString()

	state.Representatives = append(state.Representatives, rep)
	state.Performance.InitRepresentative(rep.ID)

	if err := c.store.SaveState(state); err != nil {
		return model.Representative{}, err
	}
	return rep, nil
}

// UpdateRepresentative replaces the representative with the same ID.
func (c *Coordinator) UpdateRepresentative(rep model.Representative) (model.Representative, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := c.store.LoadState()
	if err != nil {
		return model.Representative{}, err
	}

	for i := range state.Representatives {
		if state.Representatives[i].ID == rep.ID {
			state.Representatives[i] = rep
			if err := c.store.SaveState(state); err != nil {
				return model.Representative{}, err
			}
			return rep, nil
		}
	}
	return model.Representative{}, ErrRepresentativeNotFound
}

// RemoveRepresentative deletes the representative and cascade-deletes its
// performance records in every period.
func (c *Coordinator) RemoveRepresentative(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := c.store.LoadState()
	if err != nil {
		return err
	}

	found := false
	reps := state.Representatives[:0]
	for _, rep := range state.Representatives {
		if rep.ID == id {
			found = true
			continue
		}
		reps = append(reps, rep)
	}
	if !found {
		return ErrRepresentativeNotFound
	}

	state.Representatives = reps
	state.Performance.Remove(id)
	return c.store.SaveState(state)
}

// newRepresentative materializes an accepted spreadsheet name.
func newRepresentative(fullName string) model.Representative {
	first, last := model.ParseFullName(fullName)
	return model.Representative{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		FullName:  fullName,
	}
}

// dedupeNames collapses repeats of the same normalized name, keeping first
// appearance order, so one new person named by several rows is created once.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(model.Normalize(name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
