package audit

import (
	"context"

	"go.uber.org/zap"

	"guardbot/internal/app/events"
)

// Logger drains the audit topic and emits one structured line per
// command outcome, so moderation actions stay traceable after the fact.
type Logger struct {
	bus *events.Bus
	log *zap.Logger
}

func NewLogger(bus *events.Bus, log *zap.Logger) *Logger {
	return &Logger{bus: bus, log: log}
}

// Run consumes until ctx is cancelled.
func (l *Logger) Run(ctx context.Context) {
	ch, unsubscribe := l.bus.Subscribe(events.TopicCommandAudit)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-ch:
			if !ok {
				return
			}
			dto, valid := payload.(events.CommandAuditDTO)
			if !valid {
				continue
			}
			l.log.Info("command audit",
				zap.String("invocation_id", dto.InvocationID),
				zap.String("command", dto.Command),
				zap.String("source", dto.Source),
				zap.String("guild_id", dto.GuildID),
				zap.String("user_id", dto.UserID),
				zap.String("username", dto.Username),
				zap.String("status", dto.Status),
				zap.String("detail", dto.Detail),
				zap.String("timestamp", dto.Timestamp))
		}
	}
}
