package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DictionarySourceAPI     = "api"
	DictionarySourceLexicon = "lexicon"
)

type Config struct {
	LogLevel          string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	BoardSize         int        `yaml:"board-size" env:"BOARD_SIZE" env-default:"15"`
	RackSize          int        `yaml:"rack-size" env:"RACK_SIZE" env-default:"5"`
	Dictionary        Dictionary `yaml:"dictionary"`
	Redis             Redis      `yaml:"redis"`
	SQLiteStoragePath string     `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./wordboard.db"`
}

type Dictionary struct {
	Source       string        `yaml:"source" env:"DICTIONARY_SOURCE" env-default:"api"`
	APIURL       string        `yaml:"api-url" env:"DICTIONARY_API_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en/"`
	Timeout      time.Duration `yaml:"timeout" env:"DICTIONARY_TIMEOUT" env-default:"5s"`
	WordListPath string        `yaml:"word-list-path" env:"DICTIONARY_WORD_LIST_PATH"`
	CacheTTL     time.Duration `yaml:"cache-ttl" env:"DICTIONARY_CACHE_TTL" env-default:"24h"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("board-size must be positive, got %d", that.BoardSize)
	}

	if that.RackSize < 1 {
		return fmt.Errorf("rack-size must be positive, got %d", that.RackSize)
	}

	switch that.Dictionary.Source {
	case DictionarySourceAPI:
	case DictionarySourceLexicon:
		if that.Dictionary.WordListPath == "" {
			return fmt.Errorf("dictionary source %q needs a word-list-path", that.Dictionary.Source)
		}
	default:
		return fmt.Errorf("unknown dictionary source %q", that.Dictionary.Source)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
