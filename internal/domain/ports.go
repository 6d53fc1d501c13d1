package domain

import "context"

// ResponsePort delivers the single reply each command owes its invoker.
// Delivery is private to the invoker (ephemeral on the slash surface).
type ResponsePort interface {
	Reply(ctx context.Context, inv Invocation, text string) error
}

// GuildPort is every read and mutation the bot performs against the
// platform. Each call may fail with a FORBIDDEN domain error when the
// platform refuses the operation, or TRANSPORT for anything else.
type GuildPort interface {
	PurgeMessages(ctx context.Context, channelID string, amount int) (int, error)
	KickMember(ctx context.Context, guildID, userID, reason string) error
	BanMember(ctx context.Context, guildID, userID, reason string) error

	CreateRole(ctx context.Context, guildID string, spec RoleSpec) (*Role, error)
	DeleteRole(ctx context.Context, guildID, roleID string) error

	RenameChannel(ctx context.Context, channelID, name string) (*ChannelSnapshot, error)
	MoveChannel(ctx context.Context, channelID, categoryID string) error
	DeleteChannel(ctx context.Context, channelID string) (*ChannelSnapshot, error)
	CreateCategory(ctx context.Context, guildID, name string) (string, error)

	TextChannels(ctx context.Context, guildID string) ([]ChannelSnapshot, error)
	ChannelInfo(ctx context.Context, channelID string) (*ChannelSnapshot, error)
	SendMessage(ctx context.Context, channelID, text string) error

	ResolveMember(ctx context.Context, guildID, userID string) (*Member, error)
}

// TaskRepository persists the task list as a whole. LoadAll returns an
// empty slice when no backing store exists yet; SaveAll rewrites the
// entire store or leaves it untouched on failure.
type TaskRepository interface {
	LoadAll(ctx context.Context) ([]Task, error)
	SaveAll(ctx context.Context, tasks []Task) error
}

// AuditPort receives command outcomes. Recording is fire-and-forget:
// a failing sink must never affect command processing.
type AuditPort interface {
	Record(entry AuditEntry)
}
