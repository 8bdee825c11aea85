package config

import (
	"fmt"
	"time"

	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

type Config struct {
	Practicum Practicum
	Telegram  Telegram
	Log       Log
}

// RetryPeriod пауза между опросами, выдерживается после каждого цикла.
// FromDate 0 означает "с момента запуска".
type Practicum struct {
	Token       string        `env:"PRACTICUM_TOKEN" env-required:"true"`
	Endpoint    string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	Timeout     time.Duration `env:"PRACTICUM_TIMEOUT" env-default:"0s"`
	RetryPeriod time.Duration `env:"RETRY_PERIOD" env-default:"600s"`
	FromDate    int64         `env:"FROM_DATE" env-default:"0"`
}

type Telegram struct {
	BotToken             string        `env:"TELEGRAM_TOKEN" env-required:"true"`
	ChatID               int64         `env:"TELEGRAM_CHAT_ID" env-required:"true"`
	NotificationDedupTTL time.Duration `env:"NOTIFICATION_DEDUP_TTL" env-default:"0s"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"debug"`
	File  string `env:"LOG_FILE" env-default:"logs/homework_bot.log"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, ierrors.Configuration(fmt.Errorf("cleanenv.ReadEnv: %w", err))
	}

	return cfg, nil
}

// Description lists the environment variables the bot reads.
func Description() string {
	help, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return help
}
