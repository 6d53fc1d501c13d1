package commands

import (
	"context"
	"fmt"

	"guardbot/internal/domain"
)

const needManageChannels = "❌ Need **Manage Channels** permission."

type ChannelRenameCommand struct {
	guild domain.GuildPort
}

func NewChannelRenameCommand(guild domain.GuildPort) *ChannelRenameCommand {
	return &ChannelRenameCommand{guild: guild}
}

func (c *ChannelRenameCommand) Name() string {
	return "channel_rename"
}

func (c *ChannelRenameCommand) Aliases() []string {
	return nil
}

func (c *ChannelRenameCommand) Description() string {
	return "Rename a channel."
}

func (c *ChannelRenameCommand) Options() []Option {
	return []Option{
		{Name: "channel", Description: "Channel to rename", Kind: OptionChannel, Required: true},
		{Name: "name", Description: "New name", Kind: OptionString, Required: true},
	}
}

func (c *ChannelRenameCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	name := cmdCtx.String("name")
	old, err := c.guild.RenameChannel(ctx, cmdCtx.String("channel"), name)
	if err != nil {
		return translateChannelError(err)
	}
	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Renamed **%s** to **%s**.", old.Name, name))
}

type ChannelMoveCommand struct {
	guild domain.GuildPort
}

func NewChannelMoveCommand(guild domain.GuildPort) *ChannelMoveCommand {
	return &ChannelMoveCommand{guild: guild}
}

func (c *ChannelMoveCommand) Name() string {
	return "channel_move"
}

func (c *ChannelMoveCommand) Aliases() []string {
	return nil
}

func (c *ChannelMoveCommand) Description() string {
	return "Move a channel under a category."
}

func (c *ChannelMoveCommand) Options() []Option {
	return []Option{
		{Name: "channel", Description: "Channel to move", Kind: OptionChannel, Required: true},
		{Name: "category", Description: "Target category", Kind: OptionChannel, Required: true},
	}
}

func (c *ChannelMoveCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	if err := c.guild.MoveChannel(ctx, cmdCtx.String("channel"), cmdCtx.String("category")); err != nil {
		return translateChannelError(err)
	}
	return cmdCtx.Reply(ctx, "✅ Channel moved.")
}

type ChannelDeleteCommand struct {
	guild domain.GuildPort
}

func NewChannelDeleteCommand(guild domain.GuildPort) *ChannelDeleteCommand {
	return &ChannelDeleteCommand{guild: guild}
}

func (c *ChannelDeleteCommand) Name() string {
	return "channel_delete"
}

func (c *ChannelDeleteCommand) Aliases() []string {
	return nil
}

func (c *ChannelDeleteCommand) Description() string {
	return "Delete a channel."
}

func (c *ChannelDeleteCommand) Options() []Option {
	return []Option{
		{Name: "channel", Description: "Channel to delete", Kind: OptionChannel, Required: true},
	}
}

func (c *ChannelDeleteCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	deleted, err := c.guild.DeleteChannel(ctx, cmdCtx.String("channel"))
	if err != nil {
		return translateChannelError(err)
	}
	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Deleted channel **%s**.", deleted.Name))
}

type CategoryCreateCommand struct {
	guild domain.GuildPort
}

func NewCategoryCreateCommand(guild domain.GuildPort) *CategoryCreateCommand {
	return &CategoryCreateCommand{guild: guild}
}

func (c *CategoryCreateCommand) Name() string {
	return "category_create"
}

func (c *CategoryCreateCommand) Aliases() []string {
	return nil
}

func (c *CategoryCreateCommand) Description() string {
	return "Create a channel category."
}

func (c *CategoryCreateCommand) Options() []Option {
	return []Option{
		{Name: "name", Description: "Category name", Kind: OptionString, Required: true},
	}
}

func (c *CategoryCreateCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	name, err := c.guild.CreateCategory(ctx, cmdCtx.Invocation.GuildID, cmdCtx.String("name"))
	if err != nil {
		return translateChannelError(err)
	}
	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Created category **%s**.", name))
}

func translateChannelError(err error) error {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return domain.ErrChannelNotFound
	case domain.IsDomainError(err, domain.ErrCodeForbidden):
		return domain.NewError(domain.ErrCodeForbidden, needManageChannels)
	}
	return err
}
