package commands

import "context"

type PingCommand struct{}

func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

func (c *PingCommand) Name() string {
	return "ping"
}

func (c *PingCommand) Aliases() []string {
	return nil
}

func (c *PingCommand) Description() string {
	return "Test the bot is alive."
}

func (c *PingCommand) Options() []Option {
	return nil
}

func (c *PingCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	return cmdCtx.Reply(ctx, "Pong!")
}
