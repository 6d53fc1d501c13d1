package domain

// RoleSpec describes a role to be created on the guild.
type RoleSpec struct {
	Name        string
	Color       int
	Hoist       bool
	Mentionable bool
}

type Role struct {
	ID   string
	Name string
}

type Member struct {
	ID       string
	Username string
}

// ChannelSnapshot is a point-in-time view of a text channel plus the
// permission bits the broadcast logic branches on.
type ChannelSnapshot struct {
	ID   string
	Name string

	// Whether the bot itself may view / send in the channel.
	BotCanView bool
	BotCanSend bool

	// Whether the default (everyone) role may send. A channel where it
	// may not is considered locked.
	EveryoneCanSend bool
}
