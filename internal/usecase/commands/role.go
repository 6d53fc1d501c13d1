package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"guardbot/internal/domain"
)

type RoleCreateCommand struct {
	guild domain.GuildPort
}

func NewRoleCreateCommand(guild domain.GuildPort) *RoleCreateCommand {
	return &RoleCreateCommand{guild: guild}
}

func (c *RoleCreateCommand) Name() string {
	return "role_create"
}

func (c *RoleCreateCommand) Aliases() []string {
	return nil
}

func (c *RoleCreateCommand) Description() string {
	return "Create a role."
}

func (c *RoleCreateCommand) Options() []Option {
	return []Option{
		{Name: "name", Description: "Role name", Kind: OptionString, Required: true},
		{Name: "color", Description: "Hex color like ff8800", Kind: OptionString, Required: false},
		{Name: "hoist", Description: "List members separately", Kind: OptionBool, Required: false},
		{Name: "mentionable", Description: "Allow mentioning the role", Kind: OptionBool, Required: false},
	}
}

func (c *RoleCreateCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	spec := domain.RoleSpec{
		Name:        cmdCtx.String("name"),
		Hoist:       cmdCtx.Bool("hoist"),
		Mentionable: cmdCtx.Bool("mentionable"),
	}

	if raw := cmdCtx.String("color"); raw != "" {
		color, err := ParseHexColor(raw)
		if err != nil {
			return err
		}
		spec.Color = color
	}

	role, err := c.guild.CreateRole(ctx, cmdCtx.Invocation.GuildID, spec)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeForbidden) {
			return domain.NewError(domain.ErrCodeForbidden, "❌ Need **Manage Roles** permission.")
		}
		return err
	}

	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Created role: **%s**", role.Name))
}

// ParseHexColor parses a 24-bit RGB value written as exactly six hex
// digits, with an optional leading '#'.
func ParseHexColor(raw string) (int, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(hex) != 6 {
		return 0, domain.Errorf(domain.ErrCodeInvalid, "⚠️ Invalid hex color %q: expected six hex digits like ff8800.", raw)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, domain.Errorf(domain.ErrCodeInvalid, "⚠️ Invalid hex color %q: expected six hex digits like ff8800.", raw)
	}
	return int(value), nil
}

type RoleDeleteCommand struct {
	guild domain.GuildPort
}

func NewRoleDeleteCommand(guild domain.GuildPort) *RoleDeleteCommand {
	return &RoleDeleteCommand{guild: guild}
}

func (c *RoleDeleteCommand) Name() string {
	return "role_delete"
}

func (c *RoleDeleteCommand) Aliases() []string {
	return nil
}

func (c *RoleDeleteCommand) Description() string {
	return "Delete a role."
}

func (c *RoleDeleteCommand) Options() []Option {
	return []Option{
		{Name: "role", Description: "Role to delete", Kind: OptionRole, Required: true},
	}
}

func (c *RoleDeleteCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	err := c.guild.DeleteRole(ctx, cmdCtx.Invocation.GuildID, cmdCtx.String("role"))
	if err != nil {
		switch {
		case domain.IsDomainError(err, domain.ErrCodeNotFound):
			return domain.ErrRoleNotFound
		case domain.IsDomainError(err, domain.ErrCodeForbidden):
			return domain.NewError(domain.ErrCodeForbidden, "❌ Need **Manage Roles** permission.")
		}
		return err
	}
	return cmdCtx.Reply(ctx, "✅ Role deleted.")
}
