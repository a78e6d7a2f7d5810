package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	ID         uuid.UUID `json:"id"`
	DeviceID   string    `json:"device_id"`
	OptionName string    `json:"option"`
	CreatedAt  time.Time `json:"created_at"`
}

// Tally is the vote count per active option.
type Tally struct {
	Counts map[string]int64
	Total  int64
}

// NewTally keeps only the counts of the given options, seeding zero for
// options nobody voted for. Votes for retired options are dropped.
func NewTally(options []string, raw map[string]int64) Tally {
	t := Tally{Counts: make(map[string]int64, len(options))}
	for _, opt := range options {
		n := raw[opt]
		t.Counts[opt] = n
		t.Total += n
	}
	return t
}
