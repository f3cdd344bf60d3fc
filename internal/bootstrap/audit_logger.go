package bootstrap

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-leave/internal/audit"

	"go.uber.org/zap"
)

// AuditLog is a lifecycle event of the process itself.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// TrailAuditLogger writes lifecycle events to the audit trail as the system
// actor. When the trail is unavailable the event still reaches the log.
type TrailAuditLogger struct {
	audit  audit.Service
	logger *zap.Logger
}

func NewTrailAuditLogger(auditService audit.Service, logger ...*zap.Logger) *TrailAuditLogger {
	l := zap.L().Named("bootstrap.audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bootstrap.audit")
	}
	return &TrailAuditLogger{audit: auditService, logger: l}
}

func (l *TrailAuditLogger) Log(ctx context.Context, entry AuditLog) {
	details := entry.Message
	if len(entry.Meta) > 0 {
		details = fmt.Sprintf("%s (%s)", entry.Message, formatMeta(entry.Meta))
	}

	if err := l.audit.Record(ctx, audit.ActorSystem, entry.Action, details, ""); err != nil {
		l.logger.Warn("audit event not persisted",
			zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
			zap.String("action", entry.Action),
			zap.String("message", entry.Message),
			zap.Any("meta", entry.Meta),
			zap.Error(err),
		)
	}
}

func formatMeta(meta map[string]any) string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, meta[k])
	}
	return strings.Join(parts, ", ")
}
