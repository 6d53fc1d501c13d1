package discord

import (
	"context"
	"strconv"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"guardbot/internal/domain"
)

func (a *Adapter) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	// Guild-only bot; interactions from DMs carry no member.
	if i.Member == nil || i.Member.User == nil {
		return
	}

	data := i.ApplicationCommandData()
	inv := domain.Invocation{
		ID:              uuid.NewString(),
		Source:          domain.SourceSlash,
		GuildID:         i.GuildID,
		ChannelID:       i.ChannelID,
		UserID:          i.Member.User.ID,
		Username:        i.Member.User.Username,
		IsAdministrator: i.Member.Permissions&discordgo.PermissionAdministrator != 0,
		RoleNames:       a.roleNames(s, i.GuildID, i.Member.Roles),
	}

	named := make(map[string]string, len(data.Options))
	for _, opt := range data.Options {
		named[opt.Name] = optionValue(opt)
	}

	out := &interactionResponder{session: s, interaction: i.Interaction}
	if err := a.router.Dispatch(context.Background(), inv, data.Name, nil, named, out); err != nil {
		a.log.Warn("interaction dispatch",
			zap.String("command", data.Name),
			zap.String("invocation_id", inv.ID),
			zap.Error(err))
	}
}

func optionValue(opt *discordgo.ApplicationCommandInteractionDataOption) string {
	switch opt.Type {
	case discordgo.ApplicationCommandOptionInteger:
		return strconv.FormatInt(opt.IntValue(), 10)
	case discordgo.ApplicationCommandOptionBoolean:
		return strconv.FormatBool(opt.BoolValue())
	case discordgo.ApplicationCommandOptionUser:
		return opt.UserValue(nil).ID
	case discordgo.ApplicationCommandOptionRole:
		return opt.RoleValue(nil, "").ID
	case discordgo.ApplicationCommandOptionChannel:
		return opt.ChannelValue(nil).ID
	default:
		return opt.StringValue()
	}
}

// interactionResponder delivers ephemeral replies. The first reply is
// the interaction response; any later one becomes a followup.
type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction

	mu        sync.Mutex
	responded bool
}

func (r *interactionResponder) Reply(ctx context.Context, inv domain.Invocation, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.responded {
		_, err := r.session.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		}, discordgo.WithContext(ctx))
		return translate("sending followup", err)
	}

	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
	if err == nil {
		r.responded = true
	}
	return translate("responding to interaction", err)
}
