package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string  `yaml:"http-port" env:"HTTP_PORT" env-default:"3000"`
	StaticDir string  `yaml:"static-dir" env:"STATIC_DIR" env-default:"./web"`
	Storage   Storage `yaml:"storage"`
	Redis     Redis   `yaml:"redis"`
	Tree      Tree    `yaml:"tree"`
	Replay    Replay  `yaml:"replay"`
	CLI       CLI     `yaml:"cli"`
}

type Storage struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	HistoryPath string `yaml:"history-path" env:"HISTORY_PATH" env-default:"historico_jogos.json"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Tree bounds the search tree rendered for the browser.
type Tree struct {
	MaxDepth int `yaml:"max-depth" env:"TREE_MAX_DEPTH" env-default:"4"`
}

type Replay struct {
	MoveDelay time.Duration `yaml:"move-delay" env:"REPLAY_MOVE_DELAY" env-default:"1s"`
}

type CLI struct {
	LogPath string `yaml:"log-path" env:"CLI_LOG_PATH" env-default:"tictactoe.log"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case StorageFile, StorageRedis:
	default:
		return fmt.Errorf("unknown storage driver %q", that.Storage.Driver)
	}

	if that.Tree.MaxDepth < 0 {
		return fmt.Errorf("tree max-depth must not be negative, got %d", that.Tree.MaxDepth)
	}

	if that.Replay.MoveDelay < 0 {
		return fmt.Errorf("replay move-delay must not be negative, got %s", that.Replay.MoveDelay)
	}

	return nil
}

// SlogLevel maps log-level onto slog; unknown values fall back to info.
func (that *Config) SlogLevel() slog.Level {
	switch strings.ToLower(that.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
