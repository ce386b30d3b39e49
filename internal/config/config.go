package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat  string  `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	LogFile    string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	HTTPPort   string  `yaml:"http-port" env:"TICTACTOE_HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"TICTACTOE_SOCKET_PORT" env-default:"9091"`
	Socket     Socket  `yaml:"socket"`
	Redis      Redis   `yaml:"redis"`
	Players    Players `yaml:"players"`
}

type Socket struct {
	PingInterval time.Duration `yaml:"ping-interval" env-default:"54s"`
	WriteWait    time.Duration `yaml:"write-wait" env-default:"10s"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env-default:"tictactoe:events"`
}

type Players struct {
	Player1 PlayerDefaults `yaml:"player1" env-prefix:"TICTACTOE_PLAYER1_"`
	Player2 PlayerDefaults `yaml:"player2" env-prefix:"TICTACTOE_PLAYER2_"`
}

type PlayerDefaults struct {
	Name  string `yaml:"name" env:"NAME"`
	Color string `yaml:"color" env:"COLOR"`
}

// Load - reads path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		config.applyPlayerDefaults()

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	config.applyPlayerDefaults()

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

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// applyPlayerDefaults - defaults of nested prefixed structs are filled here, cleanenv
// cannot tell player1 from player2 defaults.
func (that *Config) applyPlayerDefaults() {
	if that.Players.Player1.Name == "" {
		that.Players.Player1.Name = "Player 1"
	}
	if that.Players.Player1.Color == "" {
		that.Players.Player1.Color = "blue"
	}
	if that.Players.Player2.Name == "" {
		that.Players.Player2.Name = "Player 2"
	}
	if that.Players.Player2.Color == "" {
		that.Players.Player2.Color = "red"
	}
}
