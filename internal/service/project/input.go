package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if errs := domain.ValidateStruct(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProjectInput holds the parameters for renaming a project.
type UpdateProjectInput struct {
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name" validate:"required,max=100"`
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}

	i.Name = strings.TrimSpace(i.Name)
	errs = append(errs, domain.ValidateStruct(i)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteProjectInput holds the parameters for deleting a project.
type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteProjectInput) Validate() error {
	if i.ProjectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}
	return nil
}
