package calendar

import (
	"log/slog"
	"strings"
	"time"

	"interviewpass/internal/domain"
)

// CalendarConstructor binds a calendar client to the user's credentials. It must not perform I/O.
type CalendarConstructor func(creds domain.Credentials) domain.CalendarService

// Factory selects the adapter for a request. It holds no per-request state; every call to
// For builds a fresh adapter.
type Factory struct {
	newCalendar CalendarConstructor
	brand       domain.BrandID
	logger      *slog.Logger
	now         func() time.Time
}

// NewFactory returns a Factory. A nil newCalendar makes every request use the deterministic provider.
func NewFactory(newCalendar CalendarConstructor, brand domain.BrandID, logger *slog.Logger, now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{
		newCalendar: newCalendar,
		brand:       brand,
		logger:      logger,
		now:         now,
	}
}

// For returns a LiveProvider when both an access token and an identity with an email are
// present, and a DeterministicProvider otherwise.
func (f *Factory) For(creds domain.Credentials, identity *domain.Identity) domain.InterviewAdapter {
	deterministic := NewDeterministicProvider(f.now)
	creds.AccessToken = strings.TrimSpace(creds.AccessToken)
	if creds.AccessToken == "" || !identity.Present() || f.newCalendar == nil {
		return deterministic
	}
	return NewLiveProvider(f.newCalendar(creds), *identity, f.brand, deterministic, f.logger, f.now)
}
