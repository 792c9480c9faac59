package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config - настройки запуска
type Config struct {
	InboxDir      string
	OutboxDir     string
	Parallel      bool
	StrictPadding bool
	Verbose       bool
}

// LoadConfig читает настройки из переменных окружения
func LoadConfig() *Config {
	return &Config{
		InboxDir:      getEnv("AES_INBOX_DIR", "data/inbox"),
		OutboxDir:     getEnv("AES_OUTBOX_DIR", "data/outbox"),
		Parallel:      getEnvBool("AES_PARALLEL", false),
		StrictPadding: getEnvBool("AES_STRICT_PADDING", false),
		Verbose:       getEnvBool("AES_VERBOSE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func (c *Config) String() string {
	return fmt.Sprintf("inbox=%s outbox=%s parallel=%v strict=%v",
		c.InboxDir, c.OutboxDir, c.Parallel, c.StrictPadding)
}
