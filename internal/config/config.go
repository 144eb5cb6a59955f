package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	ModePlay  = "play"
	ModeServe = "serve"
)

var ErrUnknownMode = errors.New("unknown mode")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode      string `yaml:"mode" env:"MODE" env-default:"play"`
	XAuto     bool   `yaml:"x-auto" env:"X_AUTO" env-default:"false"`
	OAuto     bool   `yaml:"o-auto" env:"O_AUTO" env-default:"false"`
	Objective string `yaml:"objective" env:"OBJECTIVE" env-default:"win"`
	HTTPPort  string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis     Redis  `yaml:"redis" env-prefix:"REDIS_"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"TTL" env-default:"24h"`
}

// Load reads path when it exists and the environment in any case; the
// environment wins over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// ApplyArgs overrides the file and environment with the positional arguments
// <x-auto> <o-auto> <objective>, where "1" marks a side as automated. Any
// prefix of the list may be given.
func (that *Config) ApplyArgs(args []string) {
	if len(args) > 0 {
		that.XAuto = args[0] == "1"
	}

	if len(args) > 1 {
		that.OAuto = args[1] == "1"
	}

	if len(args) > 2 {
		that.Objective = args[2]
	}
}

func (that *Config) Validate() error {
	if that.Mode != ModePlay && that.Mode != ModeServe {
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if _, err := that.ParseObjective(); err != nil {
		return err
	}

	return nil
}

func (that *Config) ParseObjective() (entity.Objective, error) {
	objective, err := entity.ParseObjective(that.Objective)
	if err != nil {
		return objective, fmt.Errorf("invalid objective: %w", err)
	}

	return objective, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
