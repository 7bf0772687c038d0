package di

import (
	"context"
	"time"

	"patient_feedback_service/configs"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(config configs.Logger, environment string) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if environment == "dev" {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "env": environment},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}
