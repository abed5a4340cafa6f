// Package config loads runtime settings from an optional YAML file, an
// optional .env file and the environment, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"openform/internal/corrector"
	"openform/pkg/options"
)

type RedisConfig struct {
	// Addr enables the custom dictionary when set.
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type Config struct {
	Corpora      []string `yaml:"corpora"`
	CountFiles   []string `yaml:"count_files"`
	WordList     string   `yaml:"word_list"`
	StopwordList string   `yaml:"stopword_list"`

	Defaults options.ProcessOptions `yaml:"defaults"`

	ShortWordLength int `yaml:"short_word_length"`
	CacheSize       int `yaml:"correction_cache_size"`

	Redis    RedisConfig `yaml:"redis"`
	HTTPAddr string      `yaml:"http_addr"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func Default() Config {
	cc := corrector.DefaultConfig()
	return Config{
		Corpora:         []string{"big.txt"},
		Defaults:        options.DefaultOptions,
		ShortWordLength: cc.ShortWordLength,
		CacheSize:       cc.CacheSize,
		HTTPAddr:        ":8080",
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// Load reads .env from the working directory if present, then path (may be
// empty), then the environment.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CORPORA"); v != "" {
		c.Corpora = splitList(v)
	}
	c.WordList = getenv("WORD_LIST", c.WordList)
	c.StopwordList = getenv("STOPWORD_LIST", c.StopwordList)
	c.CacheSize = getEnvInt("CORRECTION_CACHE_SIZE", c.CacheSize)
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getenv("LOG_FORMAT", c.LogFormat)
}

func (c Config) Validate() error {
	if len(c.Corpora) == 0 {
		return errors.New("config: at least one corpus is required")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: correction_cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.ShortWordLength < 0 {
		return fmt.Errorf("config: short_word_length must not be negative, got %d", c.ShortWordLength)
	}
	return nil
}

// Corrector returns the spell corrector settings.
func (c Config) Corrector() corrector.CorrectorConfig {
	return corrector.CorrectorConfig{
		ShortWordLength: c.ShortWordLength,
		CacheSize:       c.CacheSize,
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
