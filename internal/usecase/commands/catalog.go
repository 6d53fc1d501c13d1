package commands

import (
	"context"
	"strings"

	"guardbot/internal/domain"
)

// CommandDescriptor exposes per-command metadata for the help command
// and for slash-command registration.
type CommandDescriptor struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	Options     []Option
}

// Catalog describes every registered command in registration order.
// Usage strings are rendered for the given surface.
func (r *Router) Catalog(source domain.Source) []CommandDescriptor {
	cmds := r.Commands()
	out := make([]CommandDescriptor, 0, len(cmds))
	for _, cmd := range cmds {
		out = append(out, CommandDescriptor{
			Name:        cmd.Name(),
			Aliases:     append([]string(nil), cmd.Aliases()...),
			Description: cmd.Description(),
			Usage:       r.usage(cmd, source),
			Options:     append([]Option(nil), cmd.Options()...),
		})
	}
	return out
}

// HelpCommand renders the catalog back to the invoker.
type HelpCommand struct {
	router *Router
}

func NewHelpCommand(router *Router) *HelpCommand {
	return &HelpCommand{router: router}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Aliases() []string {
	return nil
}

func (c *HelpCommand) Description() string {
	return "List the available commands."
}

func (c *HelpCommand) Options() []Option {
	return nil
}

func (c *HelpCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	var b strings.Builder
	b.WriteString("**Commands**\n")
	for _, desc := range c.router.Catalog(cmdCtx.Invocation.Source) {
		b.WriteString("`" + desc.Usage + "`: " + desc.Description + "\n")
	}
	return cmdCtx.Reply(ctx, strings.TrimRight(b.String(), "\n"))
}
