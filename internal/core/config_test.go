package core

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	contents := []byte("game_data_path: /opt/arena\n" +
		"log_level: info\n" +
		"roster:\n" +
		"  database_path: /var/lib/arenafile/characters.db\n")
	if err := ioutil.WriteFile(filepath.Join(dir, "config.yaml"), contents, 0666); err != nil {
		t.Fatalf("error writing config file: %s", err)
	}

	os.Setenv("ARENAFILE_LOG_LEVEL", "debug")
	os.Setenv("ARENAFILE_ROSTER_DATABASE_PATH", "/tmp/override.db")
	defer os.Unsetenv("ARENAFILE_LOG_LEVEL")
	defer os.Unsetenv("ARENAFILE_ROSTER_DATABASE_PATH")

	cfg := LoadConfig(dir)

	if cfg.GameDataPath != "/opt/arena" {
		t.Errorf("GameDataPath = %s, want /opt/arena", cfg.GameDataPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want the env override debug", cfg.LogLevel)
	}
	if cfg.Roster.DatabasePath != "/tmp/override.db" {
		t.Errorf("Roster.DatabasePath = %s, want the env override /tmp/override.db", cfg.Roster.DatabasePath)
	}
}

func TestConfig_RosterDatabasePath(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want string
	}{
		{
			name: "explicitly configured",
			cfg: &Config{
				Roster: struct {
					DatabasePath string `mapstructure:"database_path"`
				}{
					DatabasePath: "/var/lib/arenafile/characters.db",
				},
			},
			want: "/var/lib/arenafile/characters.db",
		},
		{
			name: "defaults to the game data directory",
			cfg:  &Config{GameDataPath: "/opt/arena"},
			want: filepath.Join("/opt/arena", "characters.db"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.RosterDatabasePath(); got != tt.want {
				t.Errorf("RosterDatabasePath() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&Config{LogLevel: "debug"})
	if err != nil {
		t.Fatalf("NewLogger() returned an unexpected error: %s", err)
	}
	if logger.Level.String() != "debug" {
		t.Errorf("logger level = %s, want debug", logger.Level)
	}

	if _, err := NewLogger(&Config{LogLevel: "noisy"}); err == nil {
		t.Errorf("NewLogger() with a bad level did not return an error")
	}
}
