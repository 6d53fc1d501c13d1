package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"guardbot/internal/domain"
)

const genericFailure = "⚠️ Something went wrong running that command."

type registration struct {
	cmd  Command
	pres []Precondition
}

// Router binds command names to handlers and runs the precondition and
// validation gates in front of them. No error from a handler escapes a
// dispatch; every outcome is reported to the invoker and audited.
type Router struct {
	prefix   string
	log      *zap.Logger
	audit    domain.AuditPort
	now      func() time.Time
	cmdIndex map[string]*registration
	order    []string
}

func NewRouter(prefix string, log *zap.Logger, audit domain.AuditPort) *Router {
	return &Router{
		prefix:   prefix,
		log:      log,
		audit:    audit,
		now:      time.Now,
		cmdIndex: make(map[string]*registration),
	}
}

func (r *Router) Prefix() string {
	return r.prefix
}

// Register indexes a command under its name and aliases, paired with the
// preconditions evaluated before every invocation of it.
func (r *Router) Register(cmd Command, pres ...Precondition) {
	reg := &registration{cmd: cmd, pres: pres}
	name := strings.ToLower(cmd.Name())
	r.cmdIndex[name] = reg
	r.order = append(r.order, name)
	for _, alias := range cmd.Aliases() {
		r.cmdIndex[strings.ToLower(alias)] = reg
	}
}

// Commands returns the registered commands in registration order,
// canonical names only.
func (r *Router) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.cmdIndex[name].cmd)
	}
	return out
}

// HandleText is the legacy prefix surface: parse "<prefix><name> args…"
// and dispatch with positional binding. Non-command text is ignored.
func (r *Router) HandleText(ctx context.Context, inv domain.Invocation, text string, out domain.ResponsePort) error {
	text = strings.TrimSpace(text)
	if text == "" || !strings.HasPrefix(text, r.prefix) {
		return nil
	}
	parts := strings.Fields(strings.TrimPrefix(text, r.prefix))
	if len(parts) == 0 {
		return nil
	}
	return r.Dispatch(ctx, inv, parts[0], parts[1:], nil, out)
}

// Dispatch looks up a handler, gates it, binds its options and runs it.
// Exactly one of args (positional, prefix surface) and named (slash
// surface) is expected to carry the option values.
func (r *Router) Dispatch(ctx context.Context, inv domain.Invocation, name string, args []string, named map[string]string, out domain.ResponsePort) error {
	reg, ok := r.cmdIndex[strings.ToLower(name)]
	if !ok {
		r.record(inv, name, domain.AuditRejected, "unknown command")
		return r.reply(ctx, inv, out, "⚠️ Unknown command. Try "+r.surfacePrefix(inv.Source)+"help.")
	}
	cmdName := reg.cmd.Name()

	for _, pre := range reg.pres {
		if err := pre(inv); err != nil {
			r.record(inv, cmdName, domain.AuditDenied, err.Error())
			return r.reply(ctx, inv, out, denialMessage(err))
		}
	}

	opts, err := bindOptions(reg.cmd, args, named)
	if err != nil {
		r.record(inv, cmdName, domain.AuditRejected, err.Error())
		return r.reply(ctx, inv, out, validationMessage(err, r.usage(reg.cmd, inv.Source)))
	}

	cmdCtx := &Context{
		Invocation: inv,
		Out:        out,
		Raw:        strings.Join(args, " "),
		opts:       opts,
	}

	err = reg.cmd.Handle(ctx, cmdCtx)
	if err == nil {
		r.record(inv, cmdName, domain.AuditOK, "")
		return nil
	}

	switch domain.CodeOf(err) {
	case domain.ErrCodeInvalid, domain.ErrCodeNotFound, domain.ErrCodeForbidden:
		r.record(inv, cmdName, domain.AuditRejected, err.Error())
		var dErr *domain.Error
		if ok := asDomainError(err, &dErr); ok {
			return r.reply(ctx, inv, out, dErr.Message)
		}
		return r.reply(ctx, inv, out, genericFailure)
	case domain.ErrCodeDenied:
		r.record(inv, cmdName, domain.AuditDenied, err.Error())
		return r.reply(ctx, inv, out, denialMessage(err))
	default:
		// Store and transport faults abort this one command only.
		r.log.Error("command failed",
			zap.String("command", cmdName),
			zap.String("invocation_id", inv.ID),
			zap.Error(err))
		r.record(inv, cmdName, domain.AuditFailed, err.Error())
		return r.reply(ctx, inv, out, genericFailure)
	}
}

func (r *Router) reply(ctx context.Context, inv domain.Invocation, out domain.ResponsePort, text string) error {
	if err := out.Reply(ctx, inv, text); err != nil {
		r.log.Warn("reply failed",
			zap.String("invocation_id", inv.ID),
			zap.Error(err))
		return err
	}
	return nil
}

func (r *Router) record(inv domain.Invocation, cmdName string, status domain.AuditStatus, detail string) {
	if r.audit == nil {
		return
	}
	r.audit.Record(domain.AuditEntry{
		InvocationID: inv.ID,
		Command:      cmdName,
		Source:       inv.Source,
		GuildID:      inv.GuildID,
		UserID:       inv.UserID,
		Username:     inv.Username,
		Status:       status,
		Detail:       detail,
		At:           r.now().UTC(),
	})
}

func denialMessage(err error) string {
	var dErr *domain.Error
	if asDomainError(err, &dErr) && dErr.Message != "" {
		return dErr.Message
	}
	return "❌ You are not allowed to use this command."
}

func validationMessage(err error, usage string) string {
	var dErr *domain.Error
	if asDomainError(err, &dErr) && dErr.Message != "" {
		return dErr.Message + " Usage: " + usage
	}
	return "⚠️ Invalid arguments. Usage: " + usage
}

// surfacePrefix renders how a command is typed on the given surface:
// the configured text prefix, or a slash.
func (r *Router) surfacePrefix(source domain.Source) string {
	if source == domain.SourcePrefix {
		return r.prefix
	}
	return "/"
}

func (r *Router) usage(cmd Command, source domain.Source) string {
	var b strings.Builder
	b.WriteString(r.surfacePrefix(source))
	b.WriteString(cmd.Name())
	for _, opt := range cmd.Options() {
		if opt.Required {
			b.WriteString(" <" + opt.Name + ">")
		} else {
			b.WriteString(" [" + opt.Name + "]")
		}
	}
	return b.String()
}

// bindOptions validates the supplied values against the command's
// declared options. Positional args are matched in declaration order;
// a trailing text option swallows the remainder.
func bindOptions(cmd Command, args []string, named map[string]string) (map[string]string, error) {
	opts := make(map[string]string)
	decls := cmd.Options()

	if named != nil {
		for _, decl := range decls {
			val, ok := named[decl.Name]
			if !ok {
				if decl.Required {
					return nil, domain.Errorf(domain.ErrCodeInvalid, "Missing required option %q.", decl.Name)
				}
				continue
			}
			canonical, err := canonicalValue(decl, val)
			if err != nil {
				return nil, err
			}
			opts[decl.Name] = canonical
		}
		return opts, nil
	}

	rest := args
	for _, decl := range decls {
		if len(rest) == 0 {
			if decl.Required {
				return nil, domain.Errorf(domain.ErrCodeInvalid, "Missing required option %q.", decl.Name)
			}
			continue
		}
		var raw string
		if decl.Kind == OptionText {
			raw = strings.Join(rest, " ")
			rest = nil
		} else {
			raw = rest[0]
			rest = rest[1:]
		}
		canonical, err := canonicalValue(decl, raw)
		if err != nil {
			return nil, err
		}
		opts[decl.Name] = canonical
	}
	return opts, nil
}

func canonicalValue(decl Option, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch decl.Kind {
	case OptionInt:
		if _, err := strconv.Atoi(raw); err != nil {
			return "", domain.Errorf(domain.ErrCodeInvalid, "Option %q must be a number.", decl.Name)
		}
		return raw, nil
	case OptionBool:
		b, err := parseFlag(raw)
		if err != nil {
			return "", domain.Errorf(domain.ErrCodeInvalid, "Option %q must be true or false.", decl.Name)
		}
		return strconv.FormatBool(b), nil
	case OptionUser, OptionRole, OptionChannel:
		return stripMention(raw), nil
	default:
		return raw, nil
	}
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// stripMention reduces <@123>, <@!123>, <@&123> and <#123> to the bare
// platform id. Bare ids pass through untouched.
func stripMention(raw string) string {
	if !strings.HasPrefix(raw, "<") || !strings.HasSuffix(raw, ">") {
		return raw
	}
	id := strings.TrimSuffix(raw, ">")
	id = strings.TrimPrefix(id, "<")
	id = strings.TrimPrefix(id, "#")
	id = strings.TrimPrefix(id, "@")
	id = strings.TrimPrefix(id, "&")
	id = strings.TrimPrefix(id, "!")
	return id
}

func asDomainError(err error, target **domain.Error) bool {
	return errors.As(err, target)
}
