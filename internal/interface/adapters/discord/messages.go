package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"guardbot/internal/domain"
)

// onMessageCreate is the legacy prefix-command surface.
func (a *Adapter) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if !strings.HasPrefix(m.Content, a.cfg.Prefix) {
		return
	}

	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		a.log.Warn("resolving author permissions",
			zap.String("user_id", m.Author.ID),
			zap.Error(err))
	}

	var roleIDs []string
	if m.Member != nil {
		roleIDs = m.Member.Roles
	}

	inv := domain.Invocation{
		ID:              uuid.NewString(),
		Source:          domain.SourcePrefix,
		GuildID:         m.GuildID,
		ChannelID:       m.ChannelID,
		UserID:          m.Author.ID,
		Username:        m.Author.Username,
		IsAdministrator: perms&discordgo.PermissionAdministrator != 0,
		RoleNames:       a.roleNames(s, m.GuildID, roleIDs),
	}

	out := &channelResponder{session: s, channelID: m.ChannelID}
	if err := a.router.HandleText(context.Background(), inv, m.Content, out); err != nil {
		a.log.Warn("message dispatch",
			zap.String("invocation_id", inv.ID),
			zap.Error(err))
	}
}

// channelResponder replies in the invoking channel; the prefix surface
// has no ephemeral delivery.
type channelResponder struct {
	session   *discordgo.Session
	channelID string
}

func (r *channelResponder) Reply(ctx context.Context, inv domain.Invocation, text string) error {
	_, err := r.session.ChannelMessageSend(r.channelID, text, discordgo.WithContext(ctx))
	return translate("sending reply", err)
}
