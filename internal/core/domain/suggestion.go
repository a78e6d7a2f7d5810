package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxSuggestionLength     = 140
	DefaultRecentSuggestion = 8

	dayKeyLayout = "2006-01-02"
)

type Suggestion struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	DayKey    string    `json:"day_key"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentSuggestion struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// DayKey is the calendar date of t in the server's local time zone.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}
