package configs

import "time"

const (
	AlertChannelNone     = "none"
	AlertChannelEmail    = "email"
	AlertChannelTelegram = "telegram"
)

type Alert struct {
	Channel        string        `env:"ALERT_CHANNEL" envDefault:"none"`
	Email          string        `env:"ALERT_EMAIL"`
	TelegramToken  string        `env:"TELEGRAM_ALERT_BOT_TOKEN"`
	TelegramChatID int64         `env:"TELEGRAM_ALERT_CHAT_ID"`
	Timeout        time.Duration `env:"ALERT_TIMEOUT" envDefault:"10s"`
}
