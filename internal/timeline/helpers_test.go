package timeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

func day(year int, month time.Month, d int) domain.EventDate {
	return domain.DatedAt(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

func newEvent(title string, date domain.EventDate) domain.Event {
	return domain.Event{ID: uuid.New(), Title: title, Date: date}
}

// link appends an outgoing connection from src to dst and returns it.
func link(src *domain.Event, dst domain.Event, ct domain.ConnectionType, order int) domain.Connection {
	c := domain.Connection{
		ID:       uuid.New(),
		SourceID: src.ID,
		TargetID: dst.ID,
		Type:     ct,
		Order:    order,
	}
	src.Nexts = append(src.Nexts, c)
	return c
}
