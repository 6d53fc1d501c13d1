package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"guardbot/internal/app/events"
	"guardbot/internal/infrastructure/config"
	"guardbot/internal/infrastructure/logging"
	"guardbot/internal/infrastructure/persistence/jsonfile"
	"guardbot/internal/interface/adapters/discord"
	"guardbot/internal/usecase/audit"
	"guardbot/internal/usecase/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	bus := events.NewBus(log)
	go audit.NewLogger(bus, log).Run(ctx)

	store, err := jsonfile.NewTaskStore(cfg.TasksFile)
	if err != nil {
		log.Fatal("task store", zap.Error(err))
	}
	tasks := commands.NewTaskService(store)

	adapter, err := discord.NewAdapter(discord.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.GuildID,
		Prefix:  cfg.CommandPrefix,
	}, log)
	if err != nil {
		log.Fatal("discord adapter", zap.Error(err))
	}
	guild := adapter.Guild()

	router := commands.NewRouter(cfg.CommandPrefix, log, audit.NewRecorder(bus))
	admin := commands.RequireAdmin(cfg.AdminRoleName)

	router.Register(commands.NewPingCommand())
	router.Register(commands.NewHelpCommand(router))
	router.Register(commands.NewPurgeCommand(guild), admin)
	router.Register(commands.NewKickCommand(guild), admin)
	router.Register(commands.NewBanCommand(guild), admin)
	router.Register(commands.NewRoleCreateCommand(guild), admin)
	router.Register(commands.NewRoleDeleteCommand(guild), admin)
	router.Register(commands.NewChannelRenameCommand(guild), admin)
	router.Register(commands.NewChannelMoveCommand(guild), admin)
	router.Register(commands.NewChannelDeleteCommand(guild), admin)
	router.Register(commands.NewCategoryCreateCommand(guild), admin)
	router.Register(commands.NewTaskAssignCommand(tasks), admin)
	router.Register(commands.NewTaskCompleteCommand(tasks), admin)
	router.Register(commands.NewTaskListCommand(tasks), admin)
	router.Register(commands.NewRulesPostCommand(guild, log), admin)

	adapter.SetRouter(router)

	log.Info("starting bot", zap.String("prefix", cfg.CommandPrefix))

	if err := adapter.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("adapter stopped", zap.Error(err))
	}

	log.Info("bot shut down")
}
