package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the bot.
type Config struct {
	Token       string
	AdminChatID int64

	LogPath  string
	LogLevel string

	DatabasePath string
	FAQPath      string

	ReminderInterval time.Duration
	ReminderMax      int
	CheckInterval    time.Duration
}

// Load reads configuration from environment variables with sane defaults.
// Token and admin chat id have no defaults and are required.
func Load() (Config, error) {
	cfg := Config{
		Token:            strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		LogPath:          strings.TrimSpace(os.Getenv("BOT_LOG_PATH")),
		LogLevel:         strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		DatabasePath:     strings.TrimSpace(os.Getenv("ANALYTICS_DB_PATH")),
		FAQPath:          strings.TrimSpace(os.Getenv("FAQ_PATH")),
		ReminderInterval: parseSeconds(os.Getenv("SUPPORT_REMINDER_SECONDS")),
		ReminderMax:      parseCount(os.Getenv("SUPPORT_REMINDER_MAX")),
		CheckInterval:    parseSeconds(os.Getenv("REMINDER_CHECK_SECONDS")),
	}

	if cfg.LogPath == "" {
		cfg.LogPath = "bot.log"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "analytics.db"
	}
	if cfg.ReminderInterval == 0 {
		cfg.ReminderInterval = 10 * time.Minute
	}
	if cfg.ReminderMax == 0 {
		cfg.ReminderMax = 3
	}
	if cfg.CheckInterval == 0 {
		cfg.CheckInterval = time.Minute
	}

	if cfg.Token == "" {
		return cfg, fmt.Errorf("BOT_TOKEN is required")
	}

	rawAdmin := strings.TrimSpace(os.Getenv("ADMIN_CHAT_ID"))
	if rawAdmin == "" {
		return cfg, fmt.Errorf("ADMIN_CHAT_ID is required")
	}
	adminID, err := strconv.ParseInt(rawAdmin, 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("ADMIN_CHAT_ID must be an integer: %w", err)
	}
	cfg.AdminChatID = adminID

	return cfg, nil
}

func parseSeconds(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func parseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0
	}
	return value
}
