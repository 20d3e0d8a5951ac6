package event

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// applyFilter adds the predicates of f to a select over events e joined to projects p.
func applyFilter(b sq.SelectBuilder, f domain.EventFilter) sq.SelectBuilder {
	if f.ProjectID != nil {
		b = b.Where(sq.Eq{"e.project_id": *f.ProjectID})
	}
	if f.Undated != nil {
		if *f.Undated {
			b = b.Where(sq.Eq{"e.date": nil})
		} else {
			b = b.Where(sq.NotEq{"e.date": nil})
		}
	}
	return b
}
