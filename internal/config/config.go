// Package config собирает настройки бота из значений по умолчанию,
// флагов командной строки, файла .env и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Значения по умолчанию
const (
	DefaultRunAddr        = ":10000"
	DefaultLogLevel       = "info"
	DefaultWorkers        = 4
	DefaultRequestTimeout = 30 * time.Second
)

// Config содержит настройки приложения
type Config struct {
	BotToken       string
	WebhookURL     string
	RunAddr        string
	GRPCAddr       string
	DatabaseDSN    string
	TrustedSubnet  string
	LogLevel       string
	Workers        int
	RequestTimeout time.Duration
}

// NewConfig загружает .env (если есть), разбирает флаги и переменные окружения
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return newConfig(os.Args[1:], os.LookupEnv)
}

func newConfig(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		RunAddr:        DefaultRunAddr,
		LogLevel:       DefaultLogLevel,
		Workers:        DefaultWorkers,
		RequestTimeout: DefaultRequestTimeout,
	}

	fset := flag.NewFlagSet("fakebot", flag.ContinueOnError)
	fset.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "address and port to run HTTP server")
	fset.StringVar(&cfg.GRPCAddr, "g", cfg.GRPCAddr, "address and port to run gRPC server (disabled if empty)")
	fset.StringVar(&cfg.WebhookURL, "w", cfg.WebhookURL, "public base URL of the service for the Telegram webhook")
	fset.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN for PostgreSQL usage stats")
	fset.StringVar(&cfg.TrustedSubnet, "t", cfg.TrustedSubnet, "trusted subnet in CIDR notation for internal endpoints")
	fset.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fset.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of webhook update workers")
	fset.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "timeout for handling a single update")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// переменные окружения важнее флагов
	if v, ok := lookupEnv("BOT_TOKEN"); ok {
		cfg.BotToken = v
	}
	if v, ok := lookupEnv("WEBHOOK_URL"); ok && v != "" {
		cfg.WebhookURL = v
	}
	if v, ok := lookupEnv("PORT"); ok && v != "" {
		cfg.RunAddr = ":" + v
	}
	if v, ok := lookupEnv("SERVER_ADDRESS"); ok && v != "" {
		cfg.RunAddr = v
	}
	if v, ok := lookupEnv("GRPC_ADDRESS"); ok && v != "" {
		cfg.GRPCAddr = v
	}
	if v, ok := lookupEnv("DATABASE_DSN"); ok && v != "" {
		cfg.DatabaseDSN = v
	}
	if v, ok := lookupEnv("TRUSTED_SUBNET"); ok && v != "" {
		cfg.TrustedSubnet = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookupEnv("WEBHOOK_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: WEBHOOK_WORKERS must be an integer, got %q", v)
		}
		cfg.Workers = n
	}
	if v, ok := lookupEnv("REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	cfg.RunAddr = validateAddress(cfg.RunAddr)
	if cfg.GRPCAddr != "" {
		cfg.GRPCAddr = validateAddress(cfg.GRPCAddr)
	}
	cfg.WebhookURL = strings.TrimRight(strings.TrimSpace(cfg.WebhookURL), "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate проверяет обязательные и взаимозависимые значения
func (c *Config) validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return errors.New("config: BOT_TOKEN is required")
	}
	if c.WebhookURL == "" {
		return errors.New("config: WEBHOOK_URL is required")
	}
	u, err := url.Parse(c.WebhookURL)
	if err != nil {
		return fmt.Errorf("config: invalid WEBHOOK_URL %q: %w", c.WebhookURL, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("config: invalid WEBHOOK_URL %q: scheme or host missing", c.WebhookURL)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: WEBHOOK_WORKERS must be positive, got %d", c.Workers)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}
	if c.TrustedSubnet != "" {
		if _, _, err := net.ParseCIDR(c.TrustedSubnet); err != nil {
			return fmt.Errorf("config: invalid TRUSTED_SUBNET: %w", err)
		}
	}
	return nil
}

// validateAddress дополняет голый номер порта двоеточием
func validateAddress(addr string) string {
	if !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
