package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	MailjetPublicKey string
	MailjetSecretKey string
	EmailReceiver    string
	EmailSender      string
	EmailSenderName  string
	NotifierDisabled bool
	ShutdownTimeout  time.Duration
}

const (
	defaultPort            = "10000"
	defaultEmailSender     = "mikimas.business@gmail.com"
	defaultEmailSenderName = "Truster"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from a .env file (when present), environment
// variables, and flags. Flags take precedence over the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", ""),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		MailjetPublicKey: getString(lookup, "MJ_APIKEY_PUBLIC", ""),
		MailjetSecretKey: getString(lookup, "MJ_APIKEY_PRIVATE", ""),
		EmailReceiver:    getString(lookup, "EMAIL_RECEIVER", ""),
		EmailSender:      getString(lookup, "EMAIL_SENDER", defaultEmailSender),
		EmailSenderName:  getString(lookup, "EMAIL_SENDER_NAME", defaultEmailSenderName),
		NotifierDisabled: getBool(lookup, "NOTIFIER_DISABLED", false),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	// Hosting platforms hand out the port alone.
	if cfg.RunAddress == "" {
		cfg.RunAddress = ":" + getString(lookup, "PORT", defaultPort)
	}

	fs := flag.NewFlagSet("truster", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN (empty keeps orders in memory)")
	fs.StringVar(&cfg.EmailReceiver, "receiver", cfg.EmailReceiver, "Address that receives order notifications")
	fs.StringVar(&cfg.EmailSender, "sender", cfg.EmailSender, "Address notifications are sent from")
	fs.BoolVar(&cfg.NotifierDisabled, "disable-notifier", cfg.NotifierDisabled, "Log notifications instead of emailing them")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if !cfg.NotifierDisabled {
		if cfg.MailjetPublicKey == "" || cfg.MailjetSecretKey == "" {
			return nil, fmt.Errorf("mailjet API keys must be provided (or set NOTIFIER_DISABLED=true)")
		}
		if cfg.EmailReceiver == "" {
			return nil, fmt.Errorf("notification receiver address must be provided")
		}
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
