package consumer

import (
	"context"
	"encoding/json"
	"strings"

	"go-hris-web/internal/bootstrap"
	"go-hris-web/internal/events"
	"go-hris-web/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// AuditTopics are the topics the front-end publishes to.
var AuditTopics = []string{events.EmployeeLifecycleTopic, events.AttendanceTopic}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// auditEvent covers the fields shared by every event in events.go.
type auditEvent struct {
	EventType  string `json:"event_type"`
	RequestID  string `json:"request_id"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// ConsumeAuditTrail writes every employee and attendance event to the audit
// log. It returns when ctx is cancelled.
func ConsumeAuditTrail(
	ctx context.Context,
	reader messageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.audit_trail")
	log.Info("audit trail consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit trail consumer stopped")
				return
			}
			log.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		var event auditEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.EventType == "" {
			log.Error("decode audit event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			// pesan rusak tidak akan pernah bisa diproses, commit agar tidak macet
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(contextutil.WithRequestID(ctx, event.RequestID), toAuditLog(msg, event))

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit audit message failed", zap.Error(err))
			continue
		}

		log.Debug("audit event recorded",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func toAuditLog(msg kafkago.Message, event auditEvent) bootstrap.AuditLog {
	meta := map[string]any{
		"topic":       msg.Topic,
		"employee_id": event.EmployeeID,
	}
	for _, h := range msg.Headers {
		if h.Key == "event_id" {
			meta["event_id"] = string(h.Value)
		}
	}

	var message string
	switch event.EventType {
	case "employee_created":
		meta["department"] = event.Department
		message = "Employee " + event.EmployeeID + " created"
	case "employee_deleted":
		message = "Employee " + event.EmployeeID + " deleted"
	case "attendance_marked":
		meta["date"] = event.Date
		meta["status"] = event.Status
		message = "Attendance " + event.Status + " marked for " + event.EmployeeID + " on " + event.Date
	default:
		message = "Unrecognised event " + event.EventType
	}

	return bootstrap.AuditLog{
		Action:  strings.ToUpper(event.EventType),
		Message: message,
		Meta:    meta,
	}
}
