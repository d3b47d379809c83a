package model

// AppState is the complete dashboard state: the representative list (single
// source of identity) and the per-period performance partitions.
type AppState struct {
	Representatives []Representative `json:"representatives"`
	Performance     PerformanceMap   `json:"performanceStore"`
}

// NewAppState returns an empty state with every period partition present.
func NewAppState() *AppState {
	return &AppState{
		Representatives: []Representative{},
		Performance:     NewPerformanceMap(),
	}
}

// FindRepresentative returns the index of the first representative whose
// canonical full name or "last first" alternate form matches the given name,
// or -1. Iteration is in list order; when two representatives normalize to
// the same name the first one in the list wins.
func FindRepresentative(reps []Representative, name string) int {
	for i := range reps {
		if MatchNames(reps[i].FullName, name) {
			return i
		}
		if MatchNames(reps[i].LastName+" "+reps[i].FirstName, name) {
			return i
		}
	}
	return -1
}
