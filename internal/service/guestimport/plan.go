package guestimport

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
)

// Reason explains why a guest record was not imported.
type Reason string

const (
	ReasonMissingID           Reason = "MISSING_ID"
	ReasonDuplicateID         Reason = "DUPLICATE_ID"
	ReasonInvalidDate         Reason = "INVALID_DATE"
	ReasonInvalidEvent        Reason = "INVALID_EVENT"
	ReasonDanglingTarget      Reason = "DANGLING_TARGET"
	ReasonDuplicateConnection Reason = "DUPLICATE_CONNECTION"
	ReasonInvalidConnection   Reason = "INVALID_CONNECTION"
	ReasonRejected            Reason = "REJECTED_BY_VALIDATOR"
)

// Record kinds reported in Skip.
const (
	KindEvent      = "event"
	KindConnection = "connection"
)

// Skip reports one guest record left out of the import.
type Skip struct {
	Kind    string `json:"kind"`
	LocalID string `json:"localId"`
	// TargetID is the local target of a skipped connection.
	TargetID string `json:"targetLocalId,omitempty"`
	Reason   Reason `json:"reason"`
	Detail   string `json:"detail,omitempty"`
}

type plannedEvent struct {
	localID string
	input   event.CreateEventInput
	nexts   []Link
}

type plannedLink struct {
	sourceLocalID string
	targetLocalID string
	input         event.ConnectInput
}

// Plan is the outcome of checking a guest document without touching storage.
type Plan struct {
	events  []plannedEvent
	links   []plannedLink
	Skipped []Skip
}

// Events returns the number of events the plan will create.
func (p *Plan) Events() int { return len(p.events) }

// Connections returns the number of connections the plan will create.
func (p *Plan) Connections() int { return len(p.links) }

// SkipCounts tallies Skipped by reason.
func (p *Plan) SkipCounts() map[string]int {
	counts := make(map[string]int, len(p.Skipped))
	for _, s := range p.Skipped {
		counts[string(s.Reason)]++
	}
	return counts
}

// NewPlan decides which guest events and connections can be imported.
//
// Events keep their input order. Connections are replayed per source,
// sorted by order, and are skipped when their target is unknown or was
// skipped, when the pair repeats, when the type or order is invalid, or when
// the temporal validator refuses them.
func NewPlan(tl *Timeline) *Plan {
	p := &Plan{Skipped: []Skip{}}
	dates := make(map[string]domain.EventDate, len(tl.Events))

	for _, ge := range tl.Events {
		if ge.ID == "" {
			p.skipEvent(ge.ID, ReasonMissingID, "")
			continue
		}
		if _, dup := dates[ge.ID]; dup {
			p.skipEvent(ge.ID, ReasonDuplicateID, "")
			continue
		}
		date, err := parseDate(ge.Date)
		if err != nil {
			// Reserve the id so later duplicates are still reported as such.
			dates[ge.ID] = domain.NoDate()
			p.skipEvent(ge.ID, ReasonInvalidDate, err.Error())
			continue
		}

		in := event.CreateEventInput{
			ProjectID:   placeholderProject,
			Title:       ge.Title,
			Description: ge.Description,
			Date:        date,
			Position:    domain.Position{X: ge.PositionX, Y: ge.PositionY},
		}
		dates[ge.ID] = date
		if err := in.Validate(); err != nil {
			p.skipEvent(ge.ID, ReasonInvalidEvent, describe(err))
			continue
		}
		p.events = append(p.events, plannedEvent{localID: ge.ID, input: in, nexts: ge.Nexts})
	}

	kept := make(map[string]bool, len(p.events))
	for _, pe := range p.events {
		kept[pe.localID] = true
	}

	// Only the first occurrence of an id contributes connections.
	for _, pe := range p.events {
		links := slices.Clone(pe.nexts)
		slices.SortStableFunc(links, func(a, b Link) int { return cmp.Compare(a.Order, b.Order) })

		seen := make(map[string]bool, len(links))
		for _, l := range links {
			p.planLink(pe.localID, l, kept, seen, dates)
		}
	}

	return p
}

func (p *Plan) planLink(sourceID string, l Link, kept, seen map[string]bool, dates map[string]domain.EventDate) {
	target := ""
	if l.NextID != nil {
		target = *l.NextID
	}
	skip := func(reason Reason, detail string) {
		p.Skipped = append(p.Skipped, Skip{
			Kind: KindConnection, LocalID: sourceID, TargetID: target, Reason: reason, Detail: detail,
		})
	}

	if !kept[target] {
		skip(ReasonDanglingTarget, "")
		return
	}
	if seen[target] {
		skip(ReasonDuplicateConnection, "")
		return
	}

	ct, err := domain.ParseConnectionType(l.Type)
	if err != nil {
		skip(ReasonInvalidConnection, err.Error())
		return
	}
	in := event.ConnectInput{SourceID: placeholderEvent, TargetID: placeholderEvent, Type: ct, Order: l.Order}
	if err := in.Validate(); err != nil {
		skip(ReasonInvalidConnection, describe(err))
		return
	}
	if verdict := timeline.ValidateConnection(dates[sourceID], dates[target], ct); !verdict.Valid {
		skip(ReasonRejected, verdict.Reason)
		return
	}

	seen[target] = true
	p.links = append(p.links, plannedLink{sourceLocalID: sourceID, targetLocalID: target, input: in})
}

func (p *Plan) skipEvent(localID string, reason Reason, detail string) {
	p.Skipped = append(p.Skipped, Skip{Kind: KindEvent, LocalID: localID, Reason: reason, Detail: detail})
}

// Preview materializes the planned events with fresh ids so they can be
// analyzed offline. Connections reference the preview ids. The returned map
// translates preview ids back to local ids.
func (p *Plan) Preview() ([]domain.Event, map[uuid.UUID]string) {
	ids := make(map[string]uuid.UUID, len(p.events))
	locals := make(map[uuid.UUID]string, len(p.events))
	out := make([]domain.Event, len(p.events))
	for i, pe := range p.events {
		ids[pe.localID] = uuid.New()
		locals[ids[pe.localID]] = pe.localID
		out[i] = domain.Event{
			ID:          ids[pe.localID],
			Title:       pe.input.Title,
			Description: pe.input.Description,
			Date:        pe.input.Date,
			Position:    pe.input.Position,
			Nexts:       []domain.Connection{},
			Prevs:       []domain.Connection{},
		}
	}

	index := make(map[uuid.UUID]int, len(out))
	for i := range out {
		index[out[i].ID] = i
	}
	for _, pl := range p.links {
		c := domain.Connection{
			ID:       uuid.New(),
			SourceID: ids[pl.sourceLocalID],
			TargetID: ids[pl.targetLocalID],
			Type:     pl.input.Type,
			Order:    pl.input.Order,
		}
		out[index[c.SourceID]].Nexts = append(out[index[c.SourceID]].Nexts, c)
		out[index[c.TargetID]].Prevs = append(out[index[c.TargetID]].Prevs, c)
	}

	return out, locals
}

// Finding is one consistency suggestion expressed in local ids.
type Finding struct {
	LocalID  string         `json:"localId"`
	Cause    timeline.Cause `json:"cause"`
	TargetID string         `json:"targetLocalId,omitempty"`
	Message  string         `json:"suggestion"`
}

// CheckReport is the offline verdict on a guest document.
type CheckReport struct {
	Events       int       `json:"events"`
	Connections  int       `json:"connections"`
	Skipped      []Skip    `json:"skipped"`
	Inconsistent []string  `json:"inconsistentLocalIds"`
	Findings     []Finding `json:"suggestions"`
}

// Check plans tl and runs the consistency analysis on what would be
// imported. Nothing is stored.
func Check(tl *Timeline) CheckReport {
	plan := NewPlan(tl)
	events, locals := plan.Preview()
	report := timeline.Analyze(events)

	out := CheckReport{
		Events:       plan.Events(),
		Connections:  plan.Connections(),
		Skipped:      plan.Skipped,
		Inconsistent: []string{},
		Findings:     make([]Finding, 0, len(report.Suggestions)),
	}
	// Input order keeps the output stable across runs.
	for _, e := range events {
		if report.Inconsistent.Has(e.ID) {
			out.Inconsistent = append(out.Inconsistent, locals[e.ID])
		}
	}
	for _, sg := range report.Suggestions {
		f := Finding{LocalID: locals[sg.EventID], Cause: sg.Cause, Message: sg.Message}
		if sg.TargetID != nil {
			f.TargetID = locals[*sg.TargetID]
		}
		out.Findings = append(out.Findings, f)
	}
	return out
}

// Placeholders satisfy the required-id checks while planning. They are
// replaced by stored ids before any write.
var (
	placeholderProject = uuid.Max
	placeholderEvent   = uuid.Max
)

func describe(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msg := ""
	for i, fe := range ve.Errors {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return msg
}
