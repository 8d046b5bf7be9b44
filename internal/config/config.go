package config

import (
	"encoding/hex"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
}

type ReminderConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Vault struct {
		// 32-byte secretbox key, hex encoded
		Key string `yaml:"key"`
	} `yaml:"vault"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	Reminder ReminderConfig `yaml:"reminder"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.JWTSecret == "" {
		panic("config: auth.jwt_secret is required")
	}
	if cfg.Reminder.Interval == 0 {
		cfg.Reminder.Interval = time.Minute
	}
	return &cfg
}

// VaultKey decodes the hex-encoded secretbox key. Accounts with stored
// secrets become unreadable if this key changes, so a bad key is fatal.
func (c *Config) VaultKey() [32]byte {
	var key [32]byte
	raw, err := hex.DecodeString(c.Vault.Key)
	if err != nil {
		panic("config: vault.key is not valid hex: " + err.Error())
	}
	if len(raw) != 32 {
		panic("config: vault.key must be 32 bytes of hex")
	}
	copy(key[:], raw)
	return key
}
