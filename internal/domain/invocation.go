package domain

type Source string

const (
	SourceSlash  Source = "slash"
	SourcePrefix Source = "prefix"
)

// Invocation is the per-command snapshot of who invoked what, and with
// which privileges. It is rebuilt from platform objects on every event
// and never persisted.
type Invocation struct {
	ID        string
	Source    Source
	GuildID   string
	ChannelID string
	UserID    string
	Username  string

	// Privileges as reported by the platform at dispatch time.
	IsAdministrator bool
	RoleNames       []string
}

// Mention renders the invoker's user reference for replies.
func (inv Invocation) Mention() string {
	return "<@" + inv.UserID + ">"
}
