package models

import (
	"errors"
	"time"
)

const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "assetcrawler/1.0"
	DefaultMaxBodySize    = 10 * 1024 * 1024
)

var (
	ErrNoStartURL         = errors.New("start url is empty")
	ErrInvalidTimeout     = errors.New("incorrect timeout value, should be > 0")
	ErrInvalidMaxBodySize = errors.New("incorrect max body size, should be > 0")
)

//Config - структура для конфигурации
type Config struct {
	StartURL       string
	RequestTimeout time.Duration
	UserAgent      string
	MaxBodySize    int64
	LegacyFormat   bool
	Verbose        bool
}

// NewConfig returns a Config filled with defaults.
func NewConfig() Config {
	return Config{
		RequestTimeout: DefaultRequestTimeout,
		UserAgent:      DefaultUserAgent,
		MaxBodySize:    DefaultMaxBodySize,
	}
}

func (c Config) Validate() error {
	if c.StartURL == "" {
		return ErrNoStartURL
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}
