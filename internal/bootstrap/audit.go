package bootstrap

import "context"

// AuditLog is one entry of the operational audit trail: server lifecycle and
// the domain events the front-end publishes.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
