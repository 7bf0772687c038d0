package configs

import "time"

type Calendar struct {
	Enabled         bool          `env:"CALENDAR_ENABLED" envDefault:"false"`
	CredentialsPath string        `env:"GOOGLE_CREDENTIALS_PATH" envDefault:"./credentials.json"`
	TokenPath       string        `env:"GOOGLE_TOKEN_PATH" envDefault:"./token.json"`
	CalendarID      string        `env:"GOOGLE_CALENDAR_ID" envDefault:"primary"`
	PollMinutes     int           `env:"CALENDAR_POLL_MINUTES" envDefault:"15"`
	Lookback        time.Duration `env:"CALENDAR_LOOKBACK" envDefault:"24h"`
	Timeout         time.Duration `env:"CALENDAR_TIMEOUT" envDefault:"30s"`
}
