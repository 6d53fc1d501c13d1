package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"guardbot/internal/domain"
)

// guildService implements domain.GuildPort with one discordgo call per
// mutation.
type guildService struct {
	session *discordgo.Session
}

// Discord fetches and bulk-deletes at most 100 messages per call.
const purgeBatchLimit = 100

// messagePurger is the slice of the session the purge loop needs.
type messagePurger interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessagesBulkDelete(channelID string, messages []string, options ...discordgo.RequestOption) error
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

func (g *guildService) PurgeMessages(ctx context.Context, channelID string, amount int) (int, error) {
	return purgeMessages(ctx, g.session, channelID, amount)
}

func purgeMessages(ctx context.Context, s messagePurger, channelID string, amount int) (int, error) {
	deleted := 0
	beforeID := ""
	for deleted < amount {
		limit := amount - deleted
		if limit > purgeBatchLimit {
			limit = purgeBatchLimit
		}
		msgs, err := s.ChannelMessages(channelID, limit, beforeID, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return deleted, translate("listing messages", err)
		}
		if len(msgs) == 0 {
			break
		}

		ids := make([]string, 0, len(msgs))
		for _, m := range msgs {
			ids = append(ids, m.ID)
		}
		// Messages arrive newest first; the next fetch continues past
		// the oldest of this batch.
		beforeID = ids[len(ids)-1]

		// Bulk delete needs at least two ids.
		if len(ids) == 1 {
			if err := s.ChannelMessageDelete(channelID, ids[0], discordgo.WithContext(ctx)); err != nil {
				return deleted, translate("deleting message", err)
			}
		} else if err := s.ChannelMessagesBulkDelete(channelID, ids, discordgo.WithContext(ctx)); err != nil {
			return deleted, translate("deleting messages", err)
		}
		deleted += len(ids)
	}
	return deleted, nil
}

func (g *guildService) KickMember(ctx context.Context, guildID, userID, reason string) error {
	return translate("kicking member",
		g.session.GuildMemberDeleteWithReason(guildID, userID, reason, discordgo.WithContext(ctx)))
}

func (g *guildService) BanMember(ctx context.Context, guildID, userID, reason string) error {
	// Zero days: banning scrubs no message history.
	return translate("banning member",
		g.session.GuildBanCreateWithReason(guildID, userID, reason, 0, discordgo.WithContext(ctx)))
}

func (g *guildService) CreateRole(ctx context.Context, guildID string, spec domain.RoleSpec) (*domain.Role, error) {
	role, err := g.session.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        spec.Name,
		Color:       &spec.Color,
		Hoist:       &spec.Hoist,
		Mentionable: &spec.Mentionable,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("creating role", err)
	}
	return &domain.Role{ID: role.ID, Name: role.Name}, nil
}

func (g *guildService) DeleteRole(ctx context.Context, guildID, roleID string) error {
	return translate("deleting role",
		g.session.GuildRoleDelete(guildID, roleID, discordgo.WithContext(ctx)))
}

func (g *guildService) RenameChannel(ctx context.Context, channelID, name string) (*domain.ChannelSnapshot, error) {
	ch, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("resolving channel", err)
	}
	old := domain.ChannelSnapshot{ID: ch.ID, Name: ch.Name}
	if _, err := g.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx)); err != nil {
		return nil, translate("renaming channel", err)
	}
	return &old, nil
}

func (g *guildService) MoveChannel(ctx context.Context, channelID, categoryID string) error {
	_, err := g.session.ChannelEdit(channelID, &discordgo.ChannelEdit{ParentID: categoryID}, discordgo.WithContext(ctx))
	return translate("moving channel", err)
}

func (g *guildService) DeleteChannel(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
	ch, err := g.session.ChannelDelete(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("deleting channel", err)
	}
	return &domain.ChannelSnapshot{ID: ch.ID, Name: ch.Name}, nil
}

func (g *guildService) CreateCategory(ctx context.Context, guildID, name string) (string, error) {
	ch, err := g.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", translate("creating category", err)
	}
	return ch.Name, nil
}

func (g *guildService) TextChannels(ctx context.Context, guildID string) ([]domain.ChannelSnapshot, error) {
	chans, err := g.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("listing channels", err)
	}
	var out []domain.ChannelSnapshot
	for _, ch := range chans {
		if ch.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		out = append(out, g.snapshot(ch))
	}
	return out, nil
}

func (g *guildService) ChannelInfo(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
	ch, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("resolving channel", err)
	}
	snap := g.snapshot(ch)
	return &snap, nil
}

func (g *guildService) SendMessage(ctx context.Context, channelID, text string) error {
	_, err := g.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	return translate("sending message", err)
}

func (g *guildService) ResolveMember(ctx context.Context, guildID, userID string) (*domain.Member, error) {
	member, err := g.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("resolving member", err)
	}
	return &domain.Member{ID: member.User.ID, Username: member.User.Username}, nil
}

func (g *guildService) snapshot(ch *discordgo.Channel) domain.ChannelSnapshot {
	snap := domain.ChannelSnapshot{ID: ch.ID, Name: ch.Name, EveryoneCanSend: true}

	// The everyone role shares the guild id.
	for _, ow := range ch.PermissionOverwrites {
		if ow.Type == discordgo.PermissionOverwriteTypeRole && ow.ID == ch.GuildID {
			snap.EveryoneCanSend = ow.Deny&discordgo.PermissionSendMessages == 0
			break
		}
	}

	if g.session.State != nil && g.session.State.User != nil {
		if perms, err := g.session.UserChannelPermissions(g.session.State.User.ID, ch.ID); err == nil {
			snap.BotCanView = perms&discordgo.PermissionViewChannel != 0
			snap.BotCanSend = perms&discordgo.PermissionSendMessages != 0
		}
	}
	return snap
}

// translate folds discordgo failures into the domain taxonomy: refused
// mutations become FORBIDDEN, unknown entities NOT_FOUND, everything
// else TRANSPORT.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Message != nil {
			switch restErr.Message.Code {
			case discordgo.ErrCodeMissingPermissions, discordgo.ErrCodeMissingAccess:
				return domain.WrapError(domain.ErrCodeForbidden, "insufficient permission", err)
			case discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownUser,
				discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeUnknownRole:
				return domain.WrapError(domain.ErrCodeNotFound, op, err)
			}
		}
		if restErr.Response != nil {
			switch restErr.Response.StatusCode {
			case http.StatusForbidden:
				return domain.WrapError(domain.ErrCodeForbidden, "insufficient permission", err)
			case http.StatusNotFound:
				return domain.WrapError(domain.ErrCodeNotFound, op, err)
			}
		}
	}
	return domain.WrapError(domain.ErrCodeTransport, op, err)
}
