package usecase

import (
	"context"
	"fmt"
	"time"

	"media-portal/domain/dto"
	"media-portal/domain/repository"
	"media-portal/infrastructure/logger"
)

const upcomingEventsLimit = 5

// ICalendarUseCase defines the Google Calendar OAuth diagnostic
type ICalendarUseCase interface {
	Diagnose(ctx context.Context) *dto.CalendarDiagnosis
}

// CalendarCredentials describes what is configured, without exposing secrets
type CalendarCredentials struct {
	HasAccessToken bool
	CanRefresh     bool
	CalendarID     string
}

type CalendarUseCase struct {
	calendarRepo repository.ICalendar // nil when the client could not be built
	creds        CalendarCredentials
	clientErr    error
	now          func() time.Time
}

// NewCalendarUseCase creates the diagnostic; clientErr is the error from building calendarRepo, if any
func NewCalendarUseCase(calendarRepo repository.ICalendar, creds CalendarCredentials, clientErr error) *CalendarUseCase {
	if creds.CalendarID == "" {
		creds.CalendarID = "primary"
	}
	return &CalendarUseCase{
		calendarRepo: calendarRepo,
		creds:        creds,
		clientErr:    clientErr,
		now:          time.Now,
	}
}

// Diagnose runs the checks in order and stops at the first one the rest depend on
func (u *CalendarUseCase) Diagnose(ctx context.Context) *dto.CalendarDiagnosis {
	now := u.now()
	d := &dto.CalendarDiagnosis{
		Timestamp:      now.UTC().Format(time.RFC3339),
		HasAccessToken: u.creds.HasAccessToken,
		CanRefresh:     u.creds.CanRefresh,
	}
	log := logger.GetLogger().WithField("calendarId", u.creds.CalendarID)

	tokenCheck := dto.CalendarCheck{Name: "token", OK: u.creds.HasAccessToken || u.creds.CanRefresh}
	switch {
	case u.creds.HasAccessToken && u.creds.CanRefresh:
		tokenCheck.Detail = "access token present, refresh available"
	case u.creds.HasAccessToken:
		tokenCheck.Detail = "access token present, no refresh credentials"
	case u.creds.CanRefresh:
		tokenCheck.Detail = "refresh token only, access token will be minted"
	default:
		tokenCheck.Detail = "no access token or refresh credentials configured"
	}
	d.Checks = append(d.Checks, tokenCheck)
	log.WithField("ok", tokenCheck.OK).Info(tokenCheck.Detail)
	if !tokenCheck.OK {
		return d
	}

	clientCheck := dto.CalendarCheck{Name: "client", OK: u.calendarRepo != nil && u.clientErr == nil}
	if !clientCheck.OK {
		clientCheck.Detail = "calendar client unavailable"
		if u.clientErr != nil {
			clientCheck.Detail = u.clientErr.Error()
		}
		d.Checks = append(d.Checks, clientCheck)
		log.WithField("error", clientCheck.Detail).Error("Calendar client initialization failed")
		return d
	}
	d.Checks = append(d.Checks, clientCheck)

	count, err := u.calendarRepo.CountCalendars(ctx)
	listCheck := dto.CalendarCheck{Name: "calendarList", OK: err == nil}
	if err != nil {
		listCheck.Detail = err.Error()
		d.Checks = append(d.Checks, listCheck)
		log.WithField("error", err).Error("Calendar list request failed")
		return d
	}
	d.CalendarCount = count
	listCheck.Detail = fmt.Sprintf("%d calendars visible", count)
	d.Checks = append(d.Checks, listCheck)
	log.WithField("calendars", count).Info("Calendar list reachable")

	events, err := u.calendarRepo.CountUpcomingEvents(ctx, u.creds.CalendarID, now, upcomingEventsLimit)
	eventsCheck := dto.CalendarCheck{Name: "upcomingEvents", OK: err == nil}
	if err != nil {
		eventsCheck.Detail = err.Error()
		log.WithField("error", err).Error("Upcoming events request failed")
	} else {
		d.UpcomingEvents = events
		eventsCheck.Detail = fmt.Sprintf("%d upcoming events (limit %d)", events, upcomingEventsLimit)
		log.WithField("events", events).Info("Upcoming events reachable")
	}
	d.Checks = append(d.Checks, eventsCheck)
	return d
}
