package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to the library
// and its command line tools.
type Config struct {
	// Full (or relative to the current directory) path to the directory containing
	// the extracted game data files (TEMPLATE.DAT, CLASSES.DAT, and so on).
	GameDataPath string `mapstructure:"game_data_path"`
	// Full path to an unpacked copy of the game executable, which holds the class
	// definition tables. The shipped executable is compressed and has to be run
	// through an external unpacker before it can be read.
	UnpackedExePath string `mapstructure:"unpacked_exe_path"`
	// Full path to file to which logs will be written. Blank will write to stdout.
	LogFilePath string `mapstructure:"log_file_path"`
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	Roster struct {
		// Path to the SQLite database file in which created characters are stored.
		DatabasePath string `mapstructure:"database_path"`
	} `mapstructure:"roster"`

	Debugging struct {
		// Enable database-level query logging.
		DatabaseLoggingEnabled bool `mapstructure:"database_logging_enabled"`
	} `mapstructure:"debugging"`
}

const envVarPrefix = "ARENAFILE"

// LoadConfig initializes Viper with the contents of the config file under configPath.
func LoadConfig(configPath string) *Config {
	viper.AddConfigPath(configPath)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(envVarPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("game_data_path", "./")
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("error reading config file: %v\n", err)
		os.Exit(1)
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, roster.database_path can be set using:
	// <envVarPrefix>_ROSTER_DATABASE_PATH
	for _, k := range viper.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := viper.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			fmt.Printf("error binding %s to %s", k, envVarPrefix+"_"+envVar)
			os.Exit(1)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		fmt.Printf("error unmarshaling config object: %v", err)
		os.Exit(1)
	}
	return config
}

// RosterDatabasePath returns the configured character database path, falling
// back to a file alongside the game data.
func (c *Config) RosterDatabasePath() string {
	if c.Roster.DatabasePath != "" {
		return c.Roster.DatabasePath
	}
	return filepath.Join(c.GameDataPath, "characters.db")
}
