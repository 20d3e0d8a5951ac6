package guestimport

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// Timeline is the document a guest session keeps in browser storage.
type Timeline struct {
	Events    []Event    `json:"events"`
	LastSaved *time.Time `json:"lastSaved,omitempty"`
}

// Event is one guest event. IDs are local to the document.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	PositionX   float64 `json:"positionX"`
	PositionY   float64 `json:"positionY"`
	Nexts       []Link  `json:"nexts"`
}

// Link is one outgoing guest connection.
type Link struct {
	ID     string  `json:"id"`
	NextID *string `json:"nextId"`
	Type   string  `json:"type"`
	Order  int     `json:"order"`
}

// Decode reads a guest document. Unknown fields are ignored.
func Decode(r io.Reader) (*Timeline, error) {
	var tl Timeline
	if err := json.NewDecoder(r).Decode(&tl); err != nil {
		return nil, fmt.Errorf("decode guest timeline: %w", domain.NewValidationError("timeline", "malformed JSON"))
	}
	return &tl, nil
}

// Browsers store datetime-local values without seconds or zone.
var guestDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate interprets a guest date. nil and blank strings are NoDate.
// Zoneless values are taken as UTC.
func parseDate(s *string) (domain.EventDate, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return domain.NoDate(), nil
	}
	v := strings.TrimSpace(*s)
	for _, layout := range guestDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return domain.DatedAt(t), nil
		}
	}
	return domain.NoDate(), fmt.Errorf("date %q: %w", v, domain.ErrValidation)
}
