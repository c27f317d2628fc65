package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env              string                  `env:"ENV,default=local"`
	Logger           LoggerConfig            `env:",prefix=LOGGER_"`
	Observability    ObservabilityHTTPConfig `env:",prefix=OBSERVABILITY_"`
	ShutdownDuration time.Duration           `env:"SHUTDOWN_DURATION,default=30s"`
	DB               SQLiteConfig            `env:",prefix=DB_"`
	Telegram         TelegramConfig          `env:",prefix=TELEGRAM_"`
	Solana           SolanaConfig            `env:",prefix=SOLANA_"`
}

type TelegramConfig struct {
	BotToken string        `env:"BOT_TOKEN,required"`
	Timeout  time.Duration `env:"TIMEOUT,default=30s"`
	// Single privileged identity allowed to approve and complete orders.
	AdminID int64 `env:"ADMIN_ID,required"`
}

type SolanaConfig struct {
	WalletAddress string `env:"WALLET_ADDRESS,required"`
}

type LoggerConfig struct {
	Level string `env:"LEVEL,default=debug"`
}

type ObservabilityHTTPConfig struct {
	Host         string        `env:"HOST,default=127.0.0.1"`
	Port         uint16        `env:"PORT,default=8383"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=1m"`
}

func (a ObservabilityHTTPConfig) ADDR() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

type SQLiteConfig struct {
	Path         string `env:"PATH,default=./data/orders.db"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS,default=25"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS,default=5"`
	MaxLifetime  string `env:"MAX_LIFETIME,default=5m"`
}

// Validate catches values envconfig cannot reject on its own. The process
// must not start with a malformed admin identity or payment address.
func (c *Config) Validate() error {
	if c.Telegram.AdminID <= 0 {
		return fmt.Errorf("TELEGRAM_ADMIN_ID must be a positive telegram user id, got %d", c.Telegram.AdminID)
	}
	if c.Solana.WalletAddress == "" {
		return fmt.Errorf("SOLANA_WALLET_ADDRESS must not be empty")
	}
	return nil
}
