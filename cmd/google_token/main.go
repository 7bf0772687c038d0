package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"patient_feedback_service/configs"
	"patient_feedback_service/internal/calendar"
	"patient_feedback_service/internal/di"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

// google_token runs the one-off OAuth consent for the practice calendar and
// stores the resulting token where the feedback service reads it.
func main() {
	_ = godotenv.Load()

	var config struct {
		App      configs.App
		Logger   configs.Logger
		Calendar configs.Calendar
	}
	parseErr := env.Parse(&config)

	logger := di.NewLogger(config.Logger, config.App.Environment)
	if parseErr != nil {
		logger.Fatalw("failed to load config", "error", parseErr)
	}

	oauthConfig, err := calendar.LoadOAuthConfig(config.Calendar.CredentialsPath)
	if err != nil {
		logger.Fatalw("failed to load oauth config", "error", err)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Printf("Open this link, authorize access and paste the code here:\n%s\n> ", authURL)

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		logger.Fatalw("failed to read authorization code", "error", err)
	}

	token, err := oauthConfig.Exchange(context.Background(), strings.TrimSpace(code))
	if err != nil {
		logger.Fatalw("failed to exchange authorization code", "error", err)
	}

	if err := calendar.SaveToken(config.Calendar.TokenPath, token); err != nil {
		logger.Fatalw("failed to save token", "error", err)
	}
	logger.Infow("token saved", "path", config.Calendar.TokenPath)
}
