package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"guardbot/internal/domain"
)

// RulesPostCommand broadcasts a message to one channel or to every text
// channel of the guild. Per-channel failures are counted, never raised:
// one channel must not abort the rest of the broadcast.
type RulesPostCommand struct {
	guild domain.GuildPort
	log   *zap.Logger
}

func NewRulesPostCommand(guild domain.GuildPort, log *zap.Logger) *RulesPostCommand {
	return &RulesPostCommand{guild: guild, log: log}
}

func (c *RulesPostCommand) Name() string {
	return "rules_post"
}

func (c *RulesPostCommand) Aliases() []string {
	return nil
}

func (c *RulesPostCommand) Description() string {
	return "Post the rules to a channel, or to every text channel."
}

func (c *RulesPostCommand) Options() []Option {
	return []Option{
		{Name: "message", Description: "The rules text", Kind: OptionText, Required: true},
		{Name: "channel", Description: "Only this channel (default: all text channels)", Kind: OptionChannel, Required: false},
		{Name: "include_locked", Description: "Also post to channels the default role cannot send in", Kind: OptionBool, Required: false},
	}
}

func (c *RulesPostCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	inv := cmdCtx.Invocation

	var targets []domain.ChannelSnapshot
	if id := cmdCtx.String("channel"); id != "" {
		snap, err := c.guild.ChannelInfo(ctx, id)
		if err != nil {
			if domain.IsDomainError(err, domain.ErrCodeNotFound) {
				return domain.ErrChannelNotFound
			}
			return err
		}
		targets = []domain.ChannelSnapshot{*snap}
	} else {
		var err error
		targets, err = c.guild.TextChannels(ctx, inv.GuildID)
		if err != nil {
			return err
		}
	}

	includeLocked := cmdCtx.Bool("include_locked")
	message := cmdCtx.String("message")

	var posted, skipped, failed int
	for _, ch := range targets {
		switch {
		case !ch.BotCanView || !ch.BotCanSend:
			skipped++
		case !ch.EveryoneCanSend && !includeLocked:
			skipped++
		default:
			if err := c.guild.SendMessage(ctx, ch.ID, message); err != nil {
				c.log.Warn("rules post failed for channel",
					zap.String("channel_id", ch.ID),
					zap.String("channel", ch.Name),
					zap.Error(err))
				failed++
			} else {
				posted++
			}
		}
	}

	return cmdCtx.Reply(ctx, fmt.Sprintf("📣 Posted to %d channel(s), skipped %d, failed %d.",
		posted, skipped, failed))
}
