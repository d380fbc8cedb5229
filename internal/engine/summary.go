package engine

import "github.com/specialistvlad/choicegen/internal/emitter"

// RequestStats counts what happened to the tuples of one request.
type RequestStats struct {
	Request    string
	Enumerated int
	Kept       int
	// Rejected counts filtered tuples by rule name.
	Rejected  map[string]int
	Created   int
	Unchanged int
	Refreshed int
	Planned   int
}

func (s *RequestStats) count(status emitter.Status) {
	switch status {
	case emitter.StatusCreated:
		s.Created++
	case emitter.StatusUnchanged:
		s.Unchanged++
	case emitter.StatusRefreshed:
		s.Refreshed++
	case emitter.StatusPlanned:
		s.Planned++
	}
}

// Summary is the outcome of a successful run.
type Summary struct {
	Requests  []RequestStats
	Artifacts []emitter.Record
}

// Kept returns the number of surviving tuples over all requests.
func (s *Summary) Kept() int {
	n := 0
	for _, r := range s.Requests {
		n += r.Kept
	}
	return n
}
