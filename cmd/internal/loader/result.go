package loader

import "time"

type Status string

const (
	// StatusLoaded: the company's rows are in the store.
	StatusLoaded Status = "loaded"
	// StatusSkipped: nothing ingested, by design (e.g. wrong message type).
	StatusSkipped Status = "skipped"
	// StatusFailed: this company could not be ingested; the batch went on.
	StatusFailed Status = "failed"
)

// CompanyResult records the outcome for one company directory. The reasons
// stay internal; API callers only ever see the summary counts.
type CompanyResult struct {
	Dir           string `json:"dir"`
	CompanyNumber string `json:"company_number,omitempty"`
	Status        Status `json:"status"`
	Reason        string `json:"reason,omitempty"`
	Participants  int    `json:"participants,omitempty"`
	Entries       int    `json:"entries,omitempty"`
}

// Summary is the batch outcome of one ingest pass. The batch never aborts on
// a company failure, so a summary always exists, with counts on how much of
// the corpus actually made it in.
type Summary struct {
	RunID    string    `json:"run_id"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`

	// Tolerated-but-dropped items across all loaded companies: participant
	// blocks matching neither selector and malformed entry nodes.
	DroppedParticipants int `json:"dropped_participants"`
	DroppedEntries      int `json:"dropped_entries"`

	Results []CompanyResult `json:"results"`
}

func (s *Summary) add(r CompanyResult) {
	switch r.Status {
	case StatusLoaded:
		s.Loaded++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}
