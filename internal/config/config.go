package config

import (
	"errors"
	"flag"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "3000"
	DefaultExerciseFile   = "wizexercise.txt"
	DefaultConnectTimeout = 10 * time.Second
	DefaultServerURL      = "http://localhost:3000"
)

type Config struct {
	// Server-side settings
	Port           string        `env:"PORT"`
	DatabaseURI    string        `env:"MONGODB_URI"` // обязательна, значения по умолчанию нет
	DatabaseName   string        `env:"DB_NAME"`
	ExerciseFile   string        `env:"EXERCISE_FILE"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"` // 0 — без ограничения
	LogFormat      string        `env:"LOG_FORMAT"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
}

// ErrMissingURI строка подключения к БД не задана.
var ErrMissingURI = errors.New("database connection URI is not set (MONGODB_URI)")

var portRe = regexp.MustCompile(`^\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.Port, "p", cfg.Port, "порт HTTP-сервера")
	flag.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "строка подключения к БД (mongodb://, postgres://, sqlite://)")
	flag.StringVar(&cfg.DatabaseName, "db-name", cfg.DatabaseName, "имя базы данных (по умолчанию из строки подключения)")
	flag.StringVar(&cfg.ExerciseFile, "exercise-file", cfg.ExerciseFile, "path to the static verification file")
	flag.DurationVar(&cfg.ConnectTimeout, "connect-timeout", cfg.ConnectTimeout, "timeout of the single startup connection attempt")
	flag.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "per-request timeout, 0 disables it")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console | json")
	// Client flags
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "base URL of the server for the client")

	flag.Parse()

	// Defaults
	if !portRe.MatchString(cfg.Port) {
		cfg.Port = DefaultPort
	}
	if cfg.ExerciseFile == "" {
		cfg.ExerciseFile = DefaultExerciseFile
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.RequestTimeout < 0 {
		cfg.RequestTimeout = 0
	}
	if cfg.LogFormat != "json" {
		cfg.LogFormat = "console"
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	return cfg
}

// Addr адрес для net/http: слушаем все интерфейсы контейнера.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate проверяет обязательные серверные настройки.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURI) == "" {
		return ErrMissingURI
	}
	return nil
}
