// Command calendar-check verifies that the configured Google Calendar OAuth
// credentials can reach the Calendar API and prints a JSON report.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	calendarclient "media-portal/infrastructure/clients/calendar"
	"media-portal/infrastructure/configuration"
	"media-portal/infrastructure/logger"
	"media-portal/usecase"
)

func main() {
	// stdout carries the report
	logger.SetOutput(os.Stderr)

	if loaded := configuration.LoadEnvFromFile("config.env", ".env"); len(loaded) > 0 {
		configuration.Reload()
	}
	cfg := configuration.C.Calendar

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientConfig := &calendarclient.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		AccessToken:  cfg.AccessToken,
		RefreshToken: cfg.RefreshToken,
	}
	client, err := calendarclient.NewCalendarClient(ctx, clientConfig)
	uc := usecase.NewCalendarUseCase(client, usecase.CalendarCredentials{
		HasAccessToken: cfg.AccessToken != "",
		CanRefresh:     clientConfig.CanRefresh(),
		CalendarID:     cfg.CalendarID,
	}, err)

	diagnosis := uc.Diagnose(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(diagnosis); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to write report")
		os.Exit(1)
	}
	if !diagnosis.Healthy() {
		os.Exit(1)
	}
}
