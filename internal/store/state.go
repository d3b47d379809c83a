package store

import (
	"encoding/json"
	"fmt"
	"log"

	"salesdesk/internal/model"
)

const (
	keyRepresentatives = "representatives"
	keyPerformance     = "performanceStore"
)

// LoadState reads both persisted documents. Deserialization is lenient:
// missing documents or sub-fields default to zero/empty instead of being
// rejected, and a corrupt document is logged and replaced with an empty one.
func (s *Store) LoadState() (*model.AppState, error) {
	state := model.NewAppState()

	if blob, err := s.getBlob(keyRepresentatives); err != nil {
		return nil, err
	} else if blob != nil {
		var reps []model.Representative
		if err := json.Unmarshal(blob, &reps); err != nil {
			log.Printf("store: corrupt representatives document, starting empty: %v", err)
		} else {
			state.Representatives = reps
		}
	}

	if blob, err := s.getBlob(keyPerformance); err != nil {
		return nil, err
	} else if blob != nil {
		var raw map[model.Period]map[string]model.PerformanceRecord
		if err := json.Unmarshal(blob, &raw); err != nil {
			log.Printf("store: corrupt performance document, starting empty: %v", err)
		} else {
			for _, period := range model.Periods() {
				for id, rec := range raw[period] {
					if rec.RepresentativeID == "" {
						rec.RepresentativeID = id
					}
					state.Performance[period][id] = rec
				}
			}
		}
	}

	return state, nil
}

// SaveState rewrites both documents in one transaction.
func (s *Store) SaveState(state *model.AppState) error {
	repsBlob, err := json.Marshal(state.Representatives)
	if err != nil {
		return fmt.Errorf("failed to encode representatives: %w", err)
	}
	perfBlob, err := json.Marshal(state.Performance)
	if err != nil {
		return fmt.Errorf("failed to encode performance store: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, doc := range []struct {
		key  string
		blob []byte
	}{
		{keyRepresentatives, repsBlob},
		{keyPerformance, perfBlob},
	} {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO app_state (key, value) VALUES (?, ?)`, doc.key, doc.blob); err != nil {
			return fmt.Errorf("failed to write %q: %w", doc.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
