package event

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// CreateEventInput holds the parameters for creating an event.
type CreateEventInput struct {
	ProjectID   uuid.UUID        `json:"project_id"`
	Title       string           `json:"title"       validate:"required,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Date        domain.EventDate `json:"date"`
	Position    domain.Position  `json:"position"`
}

// Validate checks all fields and collects all errors.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}

	i.Title = strings.TrimSpace(i.Title)
	i.Description = trimmed(i.Description)
	errs = append(errs, domain.ValidateStruct(i)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEventInput holds a partial update. Nil fields are left unchanged.
// An empty Description clears it and a NoDate Date clears the date.
type UpdateEventInput struct {
	EventID     uuid.UUID         `json:"event_id"`
	Title       *string           `json:"title"       validate:"omitempty,max=200"`
	Description *string           `json:"description" validate:"omitempty,max=2000"`
	Date        *domain.EventDate `json:"date"`
	Position    *domain.Position  `json:"position"`
}

// Validate checks all fields and collects all errors.
func (i UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}

	if i.Title == nil && i.Description == nil && i.Date == nil && i.Position == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	i.Title = trimmed(i.Title)
	if i.Title != nil && *i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		i.Description = &d
	}
	errs = append(errs, domain.ValidateStruct(i)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// params converts the input into sanitized repository parameters.
func (i UpdateEventInput) params() domain.EventUpdateParams {
	p := domain.EventUpdateParams{Date: i.Date, Position: i.Position}
	if i.Title != nil {
		t := domain.SanitizeText(*i.Title)
		p.Title = &t
	}
	if i.Description != nil {
		d := domain.SanitizeText(*i.Description)
		p.Description = &d
	}
	return p
}

// DeleteEventInput holds the parameters for deleting an event.
type DeleteEventInput struct {
	EventID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteEventInput) Validate() error {
	if i.EventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}
	return nil
}

// ConnectInput holds the parameters for connecting two events.
// An empty Type defaults to LINEAR.
type ConnectInput struct {
	SourceID uuid.UUID             `json:"source_id"`
	TargetID uuid.UUID             `json:"target_event_id"`
	Type     domain.ConnectionType `json:"type"`
	Order    int                   `json:"order" validate:"min=0,max=2147483647"`
}

// Validate checks all fields and collects all errors.
func (i ConnectInput) Validate() error {
	errs := endpointErrors(i.SourceID, i.TargetID)

	if i.Type != "" && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be LINEAR or TIMETRAVEL"})
	}
	errs = append(errs, domain.ValidateStruct(i)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ConnectInput) connectionType() domain.ConnectionType {
	if i.Type == "" {
		return domain.ConnectionLinear
	}
	return i.Type
}

// DisconnectInput holds the parameters for removing a connection.
type DisconnectInput struct {
	SourceID uuid.UUID `json:"source_id"`
	TargetID uuid.UUID `json:"target_event_id"`
}

// Validate checks all fields and collects all errors.
func (i DisconnectInput) Validate() error {
	if errs := endpointErrors(i.SourceID, i.TargetID); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func endpointErrors(sourceID, targetID uuid.UUID) []domain.FieldError {
	var errs []domain.FieldError
	if sourceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "source_id", Message: "required"})
	}
	if targetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_event_id", Message: "required"})
	}
	return errs
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
