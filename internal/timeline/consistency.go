package timeline

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// IDSet is a set of event ids.
type IDSet map[uuid.UUID]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int { return len(s) }

// Sorted returns the ids ordered by their string form.
func (s IDSet) Sorted() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// MarshalJSON encodes the set as a sorted array.
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s IDSet) add(ids ...uuid.UUID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// DetectInconsistencies returns the ids of events implicated in a LINEAR
// connection whose ordering is violated or cannot be verified.
//
// Only dated events trigger a scan of their outgoing connections. A LINEAR
// connection to an undated target, or to a strictly earlier target, flags
// both endpoints. TIMETRAVEL connections are exempt. Connections pointing to
// events absent from the input are skipped.
func DetectInconsistencies(events []domain.Event) IDSet {
	byID := indexEvents(events)
	flagged := IDSet{}

	for id, e := range byID {
		if !e.Date.IsSet() {
			continue
		}
		for _, c := range e.Nexts {
			if c.Type != domain.ConnectionLinear {
				continue
			}
			target, ok := byID[c.TargetID]
			if !ok {
				continue
			}
			if !target.Date.IsSet() || target.Date.Before(e.Date) {
				flagged.add(id, target.ID)
			}
		}
	}

	return flagged
}

// Cause names why an event was flagged.
type Cause string

const (
	CauseUndatedEvent         Cause = "UNDATED_EVENT"
	CauseUndatedLinearTarget  Cause = "UNDATED_LINEAR_TARGET"
	CauseBackwardLinearTarget Cause = "BACKWARD_LINEAR_TARGET"
)

// Remediation messages, one per Cause.
const (
	MessageUndatedEvent         = "Add a date to this event to resolve the inconsistency."
	MessageUndatedLinearTarget  = "Add a date to the connected event or remove the connection."
	MessageBackwardLinearTarget = `Change the connection type to "TIMETRAVEL" or adjust the dates.`
)

// Suggestion is one remediation hint for a flagged event.
type Suggestion struct {
	EventID      uuid.UUID  `json:"eventId"`
	Cause        Cause      `json:"cause"`
	ConnectionID *uuid.UUID `json:"connectionId,omitempty"`
	TargetID     *uuid.UUID `json:"targetEventId,omitempty"`
	Message      string     `json:"suggestion"`
}

// SuggestFixes re-derives why each event in flagged was flagged and returns
// one suggestion per cause found. Output follows the order of events, then
// the order of each event's Nexts. Ids not present in events are ignored.
func SuggestFixes(events []domain.Event, flagged IDSet) []Suggestion {
	byID := indexEvents(events)
	suggestions := []Suggestion{}
	seen := make(map[uuid.UUID]bool, len(flagged))

	for i := range events {
		id := events[i].ID
		if seen[id] || !flagged.Has(id) {
			continue
		}
		seen[id] = true
		e := byID[id]

		if !e.Date.IsSet() {
			suggestions = append(suggestions, Suggestion{
				EventID: id,
				Cause:   CauseUndatedEvent,
				Message: MessageUndatedEvent,
			})
			continue
		}

		for _, c := range e.Nexts {
			if c.Type != domain.ConnectionLinear {
				continue
			}
			target, ok := byID[c.TargetID]
			if !ok {
				continue
			}

			connID, targetID := c.ID, c.TargetID
			switch {
			case !target.Date.IsSet():
				suggestions = append(suggestions, Suggestion{
					EventID:      id,
					Cause:        CauseUndatedLinearTarget,
					ConnectionID: &connID,
					TargetID:     &targetID,
					Message:      MessageUndatedLinearTarget,
				})
			case target.Date.Before(e.Date):
				suggestions = append(suggestions, Suggestion{
					EventID:      id,
					Cause:        CauseBackwardLinearTarget,
					ConnectionID: &connID,
					TargetID:     &targetID,
					Message:      MessageBackwardLinearTarget,
				})
			}
		}
	}

	return suggestions
}

// Report bundles the flagged ids and their remediation hints.
type Report struct {
	Inconsistent IDSet        `json:"inconsistentEventIds"`
	Suggestions  []Suggestion `json:"suggestions"`
}

// Analyze runs DetectInconsistencies followed by SuggestFixes.
func Analyze(events []domain.Event) Report {
	flagged := DetectInconsistencies(events)
	return Report{
		Inconsistent: flagged,
		Suggestions:  SuggestFixes(events, flagged),
	}
}

// indexEvents maps ids to events. A duplicated id keeps its last occurrence.
func indexEvents(events []domain.Event) map[uuid.UUID]*domain.Event {
	byID := make(map[uuid.UUID]*domain.Event, len(events))
	for i := range events {
		byID[events[i].ID] = &events[i]
	}
	return byID
}
