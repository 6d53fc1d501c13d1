package commands

import (
	"context"

	"guardbot/internal/domain"
)

// fakeResponder records every reply a dispatch produces.
type fakeResponder struct {
	replies []string
	err     error
}

func (f *fakeResponder) Reply(ctx context.Context, inv domain.Invocation, text string) error {
	if f.err != nil {
		return f.err
	}
	f.replies = append(f.replies, text)
	return nil
}

func (f *fakeResponder) last() string {
	if len(f.replies) == 0 {
		return ""
	}
	return f.replies[len(f.replies)-1]
}

type fakeAudit struct {
	entries []domain.AuditEntry
}

func (f *fakeAudit) Record(entry domain.AuditEntry) {
	f.entries = append(f.entries, entry)
}

// fakeGuild counts every external call and returns scripted results.
type fakeGuild struct {
	calls int

	purgeErr     error
	purgedAmount int

	kickErr error
	banErr  error

	memberErr error
	member    domain.Member

	roleErr     error
	createdRole domain.RoleSpec

	channels    []domain.ChannelSnapshot
	channelErr  error
	channelByID map[string]domain.ChannelSnapshot

	sent     []string
	sendFail map[string]bool
}

func (f *fakeGuild) PurgeMessages(ctx context.Context, channelID string, amount int) (int, error) {
	f.calls++
	if f.purgeErr != nil {
		return 0, f.purgeErr
	}
	f.purgedAmount = amount
	return amount, nil
}

func (f *fakeGuild) KickMember(ctx context.Context, guildID, userID, reason string) error {
	f.calls++
	return f.kickErr
}

func (f *fakeGuild) BanMember(ctx context.Context, guildID, userID, reason string) error {
	f.calls++
	return f.banErr
}

func (f *fakeGuild) CreateRole(ctx context.Context, guildID string, spec domain.RoleSpec) (*domain.Role, error) {
	f.calls++
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	f.createdRole = spec
	return &domain.Role{ID: "r1", Name: spec.Name}, nil
}

func (f *fakeGuild) DeleteRole(ctx context.Context, guildID, roleID string) error {
	f.calls++
	return f.roleErr
}

func (f *fakeGuild) RenameChannel(ctx context.Context, channelID, name string) (*domain.ChannelSnapshot, error) {
	f.calls++
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return &domain.ChannelSnapshot{ID: channelID, Name: "old-name"}, nil
}

func (f *fakeGuild) MoveChannel(ctx context.Context, channelID, categoryID string) error {
	f.calls++
	return f.channelErr
}

func (f *fakeGuild) DeleteChannel(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
	f.calls++
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return &domain.ChannelSnapshot{ID: channelID, Name: "doomed"}, nil
}

func (f *fakeGuild) CreateCategory(ctx context.Context, guildID, name string) (string, error) {
	f.calls++
	if f.channelErr != nil {
		return "", f.channelErr
	}
	return name, nil
}

func (f *fakeGuild) TextChannels(ctx context.Context, guildID string) ([]domain.ChannelSnapshot, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channels, nil
}

func (f *fakeGuild) ChannelInfo(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	if snap, ok := f.channelByID[channelID]; ok {
		return &snap, nil
	}
	return nil, domain.NewError(domain.ErrCodeNotFound, "no such channel")
}

func (f *fakeGuild) SendMessage(ctx context.Context, channelID, text string) error {
	f.calls++
	if f.sendFail[channelID] {
		return domain.NewError(domain.ErrCodeTransport, "send failed")
	}
	f.sent = append(f.sent, channelID)
	return nil
}

func (f *fakeGuild) ResolveMember(ctx context.Context, guildID, userID string) (*domain.Member, error) {
	if f.memberErr != nil {
		return nil, f.memberErr
	}
	if f.member.ID == "" {
		return &domain.Member{ID: userID, Username: "someone"}, nil
	}
	m := f.member
	return &m, nil
}

// memRepo is an in-memory TaskRepository.
type memRepo struct {
	tasks   []domain.Task
	loadErr error
	saveErr error
	saves   int
}

func (r *memRepo) LoadAll(ctx context.Context) ([]domain.Task, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return append([]domain.Task(nil), r.tasks...), nil
}

func (r *memRepo) SaveAll(ctx context.Context, tasks []domain.Task) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.tasks = append([]domain.Task(nil), tasks...)
	return nil
}

func adminInvocation() domain.Invocation {
	return domain.Invocation{
		ID:              "inv-1",
		Source:          domain.SourceSlash,
		GuildID:         "g1",
		ChannelID:       "c1",
		UserID:          "u1",
		Username:        "mod",
		IsAdministrator: true,
	}
}

func testContext(inv domain.Invocation, out domain.ResponsePort, opts map[string]string) *Context {
	if opts == nil {
		opts = map[string]string{}
	}
	return &Context{
		Invocation: inv,
		Out:        out,
		opts:       opts,
	}
}
