package configs

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type FeedbackServiceConfig struct {
	App      App
	Logger   Logger
	DB       DB
	HTTP     HTTP
	Rating   Rating
	Token    Token
	SMTP     SMTP
	Calendar Calendar
	Alert    Alert
}

// LoadFeedbackServiceConfig reads an optional .env file and then the process environment.
func LoadFeedbackServiceConfig() (FeedbackServiceConfig, error) {
	_ = godotenv.Load()

	var config FeedbackServiceConfig

	if err := env.Parse(&config); err != nil {
		return FeedbackServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return FeedbackServiceConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c FeedbackServiceConfig) Validate() error {
	if c.Rating.MinRating > c.Rating.MaxRating {
		return errors.New("MIN_RATING must not exceed MAX_RATING")
	}
	if c.Rating.PositiveThreshold < c.Rating.MinRating || c.Rating.PositiveThreshold > c.Rating.MaxRating {
		return errors.New("POSITIVE_RATING_THRESHOLD must lie within the rating range")
	}
	if c.Rating.MaxCommentLength <= 0 {
		return errors.New("MAX_COMMENT_LENGTH must be positive")
	}
	if c.Token.Length < 32 || c.Token.Length%2 != 0 {
		return errors.New("TOKEN_LENGTH must be an even number of at least 32 hex characters")
	}

	switch c.DB.StorageBackend {
	case StorageBackendPostgres:
		if c.DB.URL == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.DB.StorageBackend)
	}

	switch c.Alert.Channel {
	case AlertChannelNone:
	case AlertChannelEmail:
		if c.Alert.Email == "" {
			return errors.New("ALERT_EMAIL is required for the email alert channel")
		}
	case AlertChannelTelegram:
		if c.Alert.TelegramToken == "" || c.Alert.TelegramChatID == 0 {
			return errors.New("TELEGRAM_ALERT_BOT_TOKEN and TELEGRAM_ALERT_CHAT_ID are required for the telegram alert channel")
		}
	default:
		return fmt.Errorf("unknown ALERT_CHANNEL %q", c.Alert.Channel)
	}

	if c.HTTP.RateLimitWindow <= 0 || c.HTTP.RateLimitMaxRequests <= 0 {
		return errors.New("RATE_LIMIT_WINDOW and RATE_LIMIT_MAX_REQUESTS must be positive")
	}

	if c.Calendar.Enabled && c.Calendar.PollMinutes <= 0 {
		return errors.New("CALENDAR_POLL_MINUTES must be positive")
	}

	return nil
}
