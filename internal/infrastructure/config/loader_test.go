package config

import (
	"errors"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DISCORD_TOKEN", "GUILD_ID", "ADMIN_ROLE_NAME",
		"COMMAND_PREFIX", "TASKS_FILE", "LOG_LEVEL", "LOG_ENCODING",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("error = %v, want ErrMissingToken", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AdminRoleName != "Admin" {
		t.Fatalf("AdminRoleName = %q, want Admin", cfg.AdminRoleName)
	}
	if cfg.CommandPrefix != "!" {
		t.Fatalf("CommandPrefix = %q, want !", cfg.CommandPrefix)
	}
	if cfg.TasksFile != "tasks.json" {
		t.Fatalf("TasksFile = %q, want tasks.json", cfg.TasksFile)
	}
	if cfg.GuildID != "" {
		t.Fatalf("GuildID = %q, want empty", cfg.GuildID)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Encoding != "json" {
		t.Fatalf("Logger = %+v, want info/json", cfg.Logger)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("GUILD_ID", "123456789")
	t.Setenv("ADMIN_ROLE_NAME", "Staff")
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("TASKS_FILE", "/var/lib/bot/tasks.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_ENCODING", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GuildID != "123456789" || cfg.AdminRoleName != "Staff" ||
		cfg.CommandPrefix != "?" || cfg.TasksFile != "/var/lib/bot/tasks.json" {
		t.Fatalf("cfg = %+v, want the overridden values", cfg)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Encoding != "console" {
		t.Fatalf("Logger = %+v, want debug/console", cfg.Logger)
	}
}

// A guild id of "0" means global registration and is normalized away.
func TestLoadNormalizesZeroGuildID(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("GUILD_ID", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GuildID != "" {
		t.Fatalf("GuildID = %q, want empty", cfg.GuildID)
	}
}
