package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"media-portal/domain/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrMissingToken = errors.New("calendar: no access or refresh token configured")

// Config represents the Google Calendar OAuth credentials
type Config struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
}

// CanRefresh reports whether an expired access token can be renewed
func (c *Config) CanRefresh() bool {
	return c.RefreshToken != "" && c.ClientID != "" && c.ClientSecret != ""
}

// OAuthConfig builds the oauth2 config for the read-only calendar scope
func (c *Config) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Scopes:       []string{gcal.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}
}

// Token returns the configured token; without a refresh path it never expires locally
func (c *Config) Token() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    "Bearer",
	}
	if c.CanRefresh() && c.AccessToken == "" {
		// Force refresh on first use
		token.Expiry = time.Now().Add(-1 * time.Minute)
	}
	return token
}

// Client represents the Google Calendar API client
type Client struct {
	service *gcal.Service
}

// NewCalendarClient creates a client authenticated with the configured OAuth token.
// Extra options are appended last and take precedence.
func NewCalendarClient(ctx context.Context, config *Config, opts ...option.ClientOption) (repository.ICalendar, error) {
	if config == nil || (config.AccessToken == "" && config.RefreshToken == "") {
		return nil, ErrMissingToken
	}
	httpClient := config.OAuthConfig().Client(ctx, config.Token())
	clientOpts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	service, err := gcal.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &Client{service: service}, nil
}

// CountCalendars lists the calendars visible to the token
func (c *Client) CountCalendars(ctx context.Context) (int, error) {
	list, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to list calendars: %w", err)
	}
	return len(list.Items), nil
}

// CountUpcomingEvents counts single events starting after from
func (c *Client) CountUpcomingEvents(ctx context.Context, calendarID string, from time.Time, limit int64) (int, error) {
	events, err := c.service.Events.List(calendarID).
		TimeMin(from.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to list events for %s: %w", calendarID, err)
	}
	return len(events.Items), nil
}
