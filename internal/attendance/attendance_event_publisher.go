package attendance

import (
	"context"
	"time"

	"go-hris-web/internal/events"
	"go-hris-web/internal/shared/contextutil"
)

type EventPublisher interface {
	PublishAttendanceMarked(ctx context.Context, rec Record) error
}

type eventPublisher struct {
	publisher events.Publisher
	now       func() time.Time
}

func NewEventPublisher(publisher events.Publisher) EventPublisher {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &eventPublisher{publisher: publisher, now: time.Now}
}

// Keyed by employee so one employee's marks stay ordered on a partition.
func (p *eventPublisher) PublishAttendanceMarked(ctx context.Context, rec Record) error {
	return p.publisher.Publish(ctx, events.AttendanceTopic, rec.EmployeeID, events.AttendanceMarkedEvent{
		EventType:  "attendance_marked",
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		Status:     string(rec.Status),
		OccurredAt: p.now().UTC(),
	})
}
