package configs

type App struct {
	Environment  string `env:"ENVIRONMENT" envDefault:"dev"`
	PracticeName string `env:"PRACTICE_NAME" envDefault:"Cabinet de podologie"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}

type Logger struct {
	URL     string `env:"LOKI_URL"`
	AppName string `env:"APP_NAME" envDefault:"patient-feedback-service"`
}
