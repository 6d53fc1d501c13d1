package commands

import (
	"context"
	"fmt"

	"guardbot/internal/domain"
)

const defaultModReason = "No reason given."

type KickCommand struct {
	guild domain.GuildPort
}

func NewKickCommand(guild domain.GuildPort) *KickCommand {
	return &KickCommand{guild: guild}
}

func (c *KickCommand) Name() string {
	return "kick"
}

func (c *KickCommand) Aliases() []string {
	return nil
}

func (c *KickCommand) Description() string {
	return "Kick a member from the guild."
}

func (c *KickCommand) Options() []Option {
	return []Option{
		{Name: "user", Description: "Member to kick", Kind: OptionUser, Required: true},
		{Name: "reason", Description: "Why", Kind: OptionText, Required: false},
	}
}

func (c *KickCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	inv := cmdCtx.Invocation

	member, err := c.guild.ResolveMember(ctx, inv.GuildID, cmdCtx.String("user"))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}

	reason := cmdCtx.String("reason")
	if reason == "" {
		reason = defaultModReason
	}

	if err := c.guild.KickMember(ctx, inv.GuildID, member.ID, reason); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeForbidden) {
			return domain.NewError(domain.ErrCodeForbidden,
				"❌ Need **Kick Members** permission, and my role must sit above the target's.")
		}
		return err
	}

	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Kicked <@%s> (reason: %s)", member.ID, reason))
}

type BanCommand struct {
	guild domain.GuildPort
}

func NewBanCommand(guild domain.GuildPort) *BanCommand {
	return &BanCommand{guild: guild}
}

func (c *BanCommand) Name() string {
	return "ban"
}

func (c *BanCommand) Aliases() []string {
	return nil
}

func (c *BanCommand) Description() string {
	return "Ban a member from the guild. No message history is removed."
}

func (c *BanCommand) Options() []Option {
	return []Option{
		{Name: "user", Description: "Member to ban", Kind: OptionUser, Required: true},
		{Name: "reason", Description: "Why", Kind: OptionText, Required: false},
	}
}

func (c *BanCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	inv := cmdCtx.Invocation

	member, err := c.guild.ResolveMember(ctx, inv.GuildID, cmdCtx.String("user"))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}

	reason := cmdCtx.String("reason")
	if reason == "" {
		reason = defaultModReason
	}

	if err := c.guild.BanMember(ctx, inv.GuildID, member.ID, reason); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeForbidden) {
			return domain.NewError(domain.ErrCodeForbidden,
				"❌ Need **Ban Members** permission, and my role must sit above the target's.")
		}
		return err
	}

	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Banned <@%s> (reason: %s)", member.ID, reason))
}
