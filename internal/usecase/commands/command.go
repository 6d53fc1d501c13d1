package commands

import (
	"context"
	"strconv"

	"guardbot/internal/domain"
)

type OptionKind int

const (
	OptionString OptionKind = iota
	// OptionText captures the remainder of the line on the prefix surface.
	// A command may declare at most one, and it must be last.
	OptionText
	OptionInt
	OptionBool
	OptionUser
	OptionRole
	OptionChannel
)

// Option describes one argument of a command. The same descriptors drive
// slash-command registration and positional parsing of prefix commands.
type Option struct {
	Name        string
	Description string
	Kind        OptionKind
	Required    bool
}

type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Options() []Option
	Handle(ctx context.Context, c *Context) error
}

// Context is everything a handler sees for one invocation: who invoked,
// where to reply, and the bound option values.
type Context struct {
	Invocation domain.Invocation
	Out        domain.ResponsePort

	Raw  string
	opts map[string]string
}

// Reply sends the invoker-visible response for this invocation.
func (c *Context) Reply(ctx context.Context, text string) error {
	return c.Out.Reply(ctx, c.Invocation, text)
}

// String returns the bound value of a string-like option, or "".
func (c *Context) String(name string) string {
	return c.opts[name]
}

// Has reports whether the option was supplied at all.
func (c *Context) Has(name string) bool {
	_, ok := c.opts[name]
	return ok
}

// Int returns the bound value of an int option. Binding already
// validated the number format.
func (c *Context) Int(name string) int {
	n, _ := strconv.Atoi(c.opts[name])
	return n
}

// Bool returns the bound value of a bool option, false when absent.
func (c *Context) Bool(name string) bool {
	b, _ := strconv.ParseBool(c.opts[name])
	return b
}
