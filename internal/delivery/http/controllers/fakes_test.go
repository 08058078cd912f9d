package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"interviewpass/internal/delivery/http/middleware"
	"interviewpass/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeAdapter implements domain.InterviewAdapter for handler tests.
type fakeAdapter struct {
	interviews []domain.Interview
	listErr    error
	lastLimit  int

	details    *domain.Interview
	detailsErr error
	lastID     string

	user    *domain.User
	userErr error

	ref       domain.CalendarEventRef
	createErr error
	created   *domain.Interview
}

func (f *fakeAdapter) GetUpcomingInterviews(_ context.Context, limit int) ([]domain.Interview, error) {
	f.lastLimit = limit
	return f.interviews, f.listErr
}

func (f *fakeAdapter) GetInterviewDetails(_ context.Context, id string) (*domain.Interview, error) {
	f.lastID = id
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.details, nil
}

func (f *fakeAdapter) GetCurrentUser(_ context.Context) (*domain.User, error) {
	return f.user, f.userErr
}

func (f *fakeAdapter) CreateCalendarEvent(_ context.Context, interview domain.Interview) (domain.CalendarEventRef, error) {
	f.created = &interview
	if f.createErr != nil {
		return domain.CalendarEventRef{}, f.createErr
	}
	return f.ref, nil
}

// fakeProvider implements domain.AdapterProvider and records what it was asked for.
type fakeProvider struct {
	adapter      *fakeAdapter
	lastCreds    domain.Credentials
	lastIdentity *domain.Identity
}

func (p *fakeProvider) For(creds domain.Credentials, identity *domain.Identity) domain.InterviewAdapter {
	p.lastCreds = creds
	p.lastIdentity = identity
	return p.adapter
}

// fakeVerifier implements domain.SessionVerifier.
type fakeVerifier struct {
	session *domain.Session
	err     error
}

func (f *fakeVerifier) Verify(_ string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

var testSession = &domain.Session{
	Name:              "Ana Recruiter",
	Email:             "ana@seainfogroup.com",
	AccessToken:       "ya29.access",
	RefreshToken:      "1//refresh",
	AccessTokenExpiry: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
}

func withSession(r *http.Request, s *domain.Session) *http.Request {
	if s == nil {
		return r
	}
	return r.WithContext(middleware.SetSession(r.Context(), s))
}
