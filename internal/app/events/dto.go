package events

import (
	"time"

	"guardbot/internal/domain"
)

// CommandAuditDTO is the serializable form of a command outcome carried
// on TopicCommandAudit.
type CommandAuditDTO struct {
	InvocationID string `json:"invocation_id"`
	Command      string `json:"command"`
	Source       string `json:"source"`
	GuildID      string `json:"guild_id"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Status       string `json:"status"`
	Detail       string `json:"detail,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// NewCommandAuditDTO converts a domain audit entry for the bus.
func NewCommandAuditDTO(entry domain.AuditEntry) CommandAuditDTO {
	at := entry.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return CommandAuditDTO{
		InvocationID: entry.InvocationID,
		Command:      entry.Command,
		Source:       string(entry.Source),
		GuildID:      entry.GuildID,
		UserID:       entry.UserID,
		Username:     entry.Username,
		Status:       string(entry.Status),
		Detail:       entry.Detail,
		Timestamp:    at.Format(time.RFC3339Nano),
	}
}
