package domain

import "time"

type AuditStatus string

const (
	AuditOK       AuditStatus = "ok"
	AuditDenied   AuditStatus = "denied"
	AuditRejected AuditStatus = "rejected"
	AuditFailed   AuditStatus = "failed"
)

// AuditEntry records the outcome of one command invocation.
type AuditEntry struct {
	InvocationID string
	Command      string
	Source       Source
	GuildID      string
	UserID       string
	Username     string
	Status       AuditStatus
	Detail       string
	At           time.Time
}
