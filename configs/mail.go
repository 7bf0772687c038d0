package configs

import "time"

type SMTP struct {
	Host     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Username string        `env:"SMTP_USER"`
	Password string        `env:"SMTP_PASS"`
	From     string        `env:"MAIL_FROM" envDefault:"Cabinet de podologie <no-reply@example.com>"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
}

func (c SMTP) IsConfigured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}
