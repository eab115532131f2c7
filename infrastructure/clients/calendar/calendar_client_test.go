package calendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"media-portal/infrastructure/clients/calendar"
)

func newCalendarServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"code": 401, "message": "invalid credentials"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/calendarList"):
			_, _ = w.Write([]byte(`{"items": [{"id": "primary"}, {"id": "team@example.com"}]}`))
		case strings.HasSuffix(r.URL.Path, "/events"):
			assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
			assert.Equal(t, "startTime", r.URL.Query().Get("orderBy"))
			assert.Equal(t, "5", r.URL.Query().Get("maxResults"))
			assert.NotEmpty(t, r.URL.Query().Get("timeMin"))
			_, _ = w.Write([]byte(`{"items": [{"id": "e1"}, {"id": "e2"}, {"id": "e3"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewCalendarClient_MissingToken(t *testing.T) {
	client, err := calendar.NewCalendarClient(context.Background(), &calendar.Config{ClientID: "id"})
	assert.ErrorIs(t, err, calendar.ErrMissingToken)
	assert.Nil(t, client)
}

func TestClient_Counts(t *testing.T) {
	srv := newCalendarServer(t)
	client, err := calendar.NewCalendarClient(
		context.Background(),
		&calendar.Config{AccessToken: "access-token"},
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)

	calendars, err := client.CountCalendars(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calendars)

	events, err := client.CountUpcomingEvents(context.Background(), "primary", time.Now(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, events)
}

func TestClient_Unauthorized(t *testing.T) {
	srv := newCalendarServer(t)
	client, err := calendar.NewCalendarClient(
		context.Background(),
		&calendar.Config{AccessToken: "stale"},
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)

	_, err = client.CountCalendars(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list calendars")
}

func TestConfig_Token(t *testing.T) {
	cfg := &calendar.Config{AccessToken: "a"}
	assert.False(t, cfg.CanRefresh())
	assert.True(t, cfg.Token().Expiry.IsZero())

	cfg = &calendar.Config{RefreshToken: "r", ClientID: "id", ClientSecret: "secret"}
	assert.True(t, cfg.CanRefresh())
	assert.True(t, cfg.Token().Expiry.Before(time.Now()), "refresh-only token is expired to force a refresh")
	assert.Contains(t, cfg.OAuthConfig().Scopes, "https://www.googleapis.com/auth/calendar.readonly")
}
