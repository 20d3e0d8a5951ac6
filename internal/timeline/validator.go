package timeline

import (
	"fmt"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// ReasonBackwardLinear is returned when a LINEAR connection would point to an
// earlier date than its source.
const ReasonBackwardLinear = "invalid linear connection: the target event is earlier than the source event; use a TIMETRAVEL connection instead"

// Verdict is the outcome of ValidateConnection.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ValidateConnection decides whether a connection of type ct from source to
// target is temporally legal.
//
// TIMETRAVEL is always legal. LINEAR is legal unless both endpoints are dated
// and the target is strictly earlier; an undated endpoint is accepted here and
// reported later by DetectInconsistencies.
func ValidateConnection(source, target domain.EventDate, ct domain.ConnectionType) Verdict {
	switch ct {
	case domain.ConnectionTimeTravel:
		return Verdict{Valid: true}
	case domain.ConnectionLinear:
		if target.Before(source) {
			return Verdict{Valid: false, Reason: ReasonBackwardLinear}
		}
		return Verdict{Valid: true}
	default:
		return Verdict{
			Valid:  false,
			Reason: fmt.Sprintf("unknown connection type %q: must be %s or %s", string(ct), domain.ConnectionLinear, domain.ConnectionTimeTravel),
		}
	}
}

// ValidateEvents is ValidateConnection applied to two events' dates.
func ValidateEvents(source, target *domain.Event, ct domain.ConnectionType) Verdict {
	return ValidateConnection(source.Date, target.Date, ct)
}
