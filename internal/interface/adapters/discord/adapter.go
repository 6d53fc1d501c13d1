// Package discord is the only package that speaks discordgo; everything
// inward of it sees domain types through the ports.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/internal/domain"
	"guardbot/internal/usecase/commands"
)

type Config struct {
	Token string
	// GuildID targets slash-command registration at one guild for fast
	// propagation; empty means global registration.
	GuildID string
	Prefix  string
}

type Adapter struct {
	cfg     Config
	log     *zap.Logger
	session *discordgo.Session
	router  *commands.Router
}

func NewAdapter(cfg Config, log *zap.Logger) (*Adapter, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	a := &Adapter{
		cfg:     cfg,
		log:     log,
		session: session,
	}
	session.AddHandler(a.onReady)
	session.AddHandler(a.onInteractionCreate)
	session.AddHandler(a.onMessageCreate)

	return a, nil
}

// SetRouter wires the dispatcher; must be called before Start.
func (a *Adapter) SetRouter(router *commands.Router) {
	a.router = router
}

// Guild exposes the platform mutations behind the domain port.
func (a *Adapter) Guild() domain.GuildPort {
	return &guildService{session: a.session}
}

// Start opens the gateway and blocks until ctx is cancelled.
func (a *Adapter) Start(ctx context.Context) error {
	if a.router == nil {
		return fmt.Errorf("discord: no router set")
	}
	if err := a.session.Open(); err != nil {
		return fmt.Errorf("discord: open gateway: %w", err)
	}

	<-ctx.Done()

	if err := a.session.Close(); err != nil {
		a.log.Warn("closing gateway", zap.Error(err))
	}
	return ctx.Err()
}

func (a *Adapter) onReady(s *discordgo.Session, r *discordgo.Ready) {
	a.log.Info("logged in",
		zap.String("username", r.User.Username),
		zap.String("user_id", r.User.ID))

	defs := a.commandDefinitions()
	synced, err := s.ApplicationCommandBulkOverwrite(r.User.ID, a.cfg.GuildID, defs)
	if err != nil {
		a.log.Error("syncing commands", zap.Error(err))
		return
	}
	scope := "global"
	if a.cfg.GuildID != "" {
		scope = "guild " + a.cfg.GuildID
	}
	a.log.Info("synced commands",
		zap.Int("count", len(synced)),
		zap.String("scope", scope))
}

func (a *Adapter) commandDefinitions() []*discordgo.ApplicationCommand {
	catalog := a.router.Catalog(domain.SourceSlash)
	defs := make([]*discordgo.ApplicationCommand, 0, len(catalog))
	for _, desc := range catalog {
		def := &discordgo.ApplicationCommand{
			Name:        desc.Name,
			Description: desc.Description,
		}
		for _, opt := range desc.Options {
			def.Options = append(def.Options, &discordgo.ApplicationCommandOption{
				Type:        optionType(opt.Kind),
				Name:        opt.Name,
				Description: opt.Description,
				Required:    opt.Required,
			})
		}
		defs = append(defs, def)
	}
	return defs
}

func optionType(kind commands.OptionKind) discordgo.ApplicationCommandOptionType {
	switch kind {
	case commands.OptionInt:
		return discordgo.ApplicationCommandOptionInteger
	case commands.OptionBool:
		return discordgo.ApplicationCommandOptionBoolean
	case commands.OptionUser:
		return discordgo.ApplicationCommandOptionUser
	case commands.OptionRole:
		return discordgo.ApplicationCommandOptionRole
	case commands.OptionChannel:
		return discordgo.ApplicationCommandOptionChannel
	default:
		return discordgo.ApplicationCommandOptionString
	}
}

func (a *Adapter) roleNames(s *discordgo.Session, guildID string, roleIDs []string) []string {
	var roles []*discordgo.Role
	if g, err := s.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
		roles = g.Roles
	} else if fetched, err := s.GuildRoles(guildID); err == nil {
		roles = fetched
	} else {
		a.log.Warn("resolving role names", zap.String("guild_id", guildID), zap.Error(err))
		return nil
	}

	byID := make(map[string]string, len(roles))
	for _, role := range roles {
		byID[role.ID] = role.Name
	}
	names := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
