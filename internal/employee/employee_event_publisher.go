package employee

import (
	"context"
	"time"

	"go-hris-web/internal/events"
	"go-hris-web/internal/shared/contextutil"
)

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, empl Employee) error
	PublishEmployeeDeleted(ctx context.Context, employeeID string) error
}

type eventPublisher struct {
	publisher events.Publisher
	now       func() time.Time
}

// NewEventPublisher maps employee mutations onto lifecycle events.
// A nil publisher drops them.
func NewEventPublisher(publisher events.Publisher) EventPublisher {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &eventPublisher{publisher: publisher, now: time.Now}
}

func (p *eventPublisher) PublishEmployeeCreated(ctx context.Context, empl Employee) error {
	return p.publisher.Publish(ctx, events.EmployeeLifecycleTopic, empl.EmployeeID, events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: empl.EmployeeID,
		Department: empl.Department,
		OccurredAt: p.now().UTC(),
	})
}

func (p *eventPublisher) PublishEmployeeDeleted(ctx context.Context, employeeID string) error {
	return p.publisher.Publish(ctx, events.EmployeeLifecycleTopic, employeeID, events.EmployeeDeletedEvent{
		EventType:  "employee_deleted",
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: employeeID,
		OccurredAt: p.now().UTC(),
	})
}
