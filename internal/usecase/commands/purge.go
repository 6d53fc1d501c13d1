package commands

import (
	"context"
	"fmt"

	"guardbot/internal/domain"
)

const (
	purgeMin = 1
	purgeMax = 200
)

type PurgeCommand struct {
	guild domain.GuildPort
}

func NewPurgeCommand(guild domain.GuildPort) *PurgeCommand {
	return &PurgeCommand{guild: guild}
}

func (c *PurgeCommand) Name() string {
	return "purge"
}

func (c *PurgeCommand) Aliases() []string {
	return nil
}

func (c *PurgeCommand) Description() string {
	return "Delete recent messages in this channel."
}

func (c *PurgeCommand) Options() []Option {
	return []Option{
		{Name: "amount", Description: "How many messages to delete (1-200)", Kind: OptionInt, Required: true},
	}
}

func (c *PurgeCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	amount := cmdCtx.Int("amount")
	if amount < purgeMin || amount > purgeMax {
		return domain.Errorf(domain.ErrCodeInvalid, "⚠️ Amount must be between %d and %d.", purgeMin, purgeMax)
	}

	deleted, err := c.guild.PurgeMessages(ctx, cmdCtx.Invocation.ChannelID, amount)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeForbidden) {
			return domain.NewError(domain.ErrCodeForbidden, "❌ Need **Manage Messages** permission in this channel.")
		}
		return err
	}

	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Deleted %d message(s).", deleted))
}
