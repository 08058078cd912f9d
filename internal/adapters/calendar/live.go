package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewpass/internal/domain"
)

// LiveProvider reads interviews from an external calendar bound to one user's access token.
//
// Reads degrade: a failed upcoming-interviews query is logged and answered by the fallback
// provider, and a failed detail lookup is reported as not found. Writes do not degrade:
// CreateCalendarEvent surfaces *domain.RemoteCreateFailure.
type LiveProvider struct {
	calendar domain.CalendarService
	identity domain.Identity
	brand    domain.BrandID
	fallback *DeterministicProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewLiveProvider returns a LiveProvider for identity. Interviews it normalizes are attributed to brand.
func NewLiveProvider(cal domain.CalendarService, identity domain.Identity, brand domain.BrandID, fallback *DeterministicProvider, logger *slog.Logger, now func() time.Time) *LiveProvider {
	if now == nil {
		now = time.Now
	}
	if fallback == nil {
		fallback = NewDeterministicProvider(now)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveProvider{
		calendar: cal,
		identity: identity,
		brand:    brand,
		fallback: fallback,
		logger:   logger,
		now:      now,
	}
}

func (p *LiveProvider) GetUpcomingInterviews(ctx context.Context, limit int) ([]domain.Interview, error) {
	limit = domain.NormalizeLimit(limit)
	interviews, err := p.fetchUpcoming(ctx, limit)
	if err != nil {
		p.logger.WarnContext(ctx, "calendar query failed, serving placeholder interviews",
			"email", p.identity.Email, "limit", limit, "err", err)
		return p.fallback.GetUpcomingInterviews(ctx, limit)
	}
	return interviews, nil
}

// fetchUpcoming turns a panic in the calendar client or in normalization into an error so
// the caller can fall back.
func (p *LiveProvider) fetchUpcoming(ctx context.Context, limit int) (interviews []domain.Interview, err error) {
	defer func() {
		if r := recover(); r != nil {
			interviews = nil
			err = fmt.Errorf("calendar query panicked: %v", r)
		}
	}()

	events, err := p.calendar.ListUpcoming(ctx, p.now(), limit)
	if err != nil {
		return nil, err
	}

	interviews = make([]domain.Interview, 0, len(events))
	seen := make(map[string]struct{}, len(events))
	for _, event := range events {
		if !IsInterviewEvent(event.Title) || event.Start.AllDay() {
			continue
		}
		interview, err := normalizeEvent(event, &p.identity, p.brand)
		if err != nil {
			return nil, fmt.Errorf("normalize event %q: %w", event.ID, err)
		}
		if _, dup := seen[interview.ID]; dup {
			continue
		}
		seen[interview.ID] = struct{}{}
		interviews = append(interviews, interview)
	}

	sort.SliceStable(interviews, func(i, j int) bool {
		return interviews[i].ScheduledTime.Before(interviews[j].ScheduledTime)
	})
	if len(interviews) > limit {
		interviews = interviews[:limit]
	}
	return interviews, nil
}

// GetInterviewDetails looks the event up by its calendar ID. Placeholder IDs live in a
// different ID space, so failures are not answered from the fallback set.
func (p *LiveProvider) GetInterviewDetails(ctx context.Context, id string) (*domain.Interview, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInterviewNotFound
	}
	event, err := p.calendar.GetEvent(ctx, id)
	if err != nil {
		p.logger.WarnContext(ctx, "calendar event lookup failed", "event_id", id, "err", err)
		return nil, domain.ErrInterviewNotFound
	}
	if !IsInterviewEvent(event.Title) || event.Start.AllDay() {
		return nil, domain.ErrInterviewNotFound
	}
	interview, err := normalizeEvent(event, &p.identity, p.brand)
	if err != nil {
		p.logger.WarnContext(ctx, "calendar event could not be normalized", "event_id", id, "err", err)
		return nil, domain.ErrInterviewNotFound
	}
	return &interview, nil
}

func (p *LiveProvider) GetCurrentUser(_ context.Context) (*domain.User, error) {
	return p.identity.User(p.brand), nil
}

func (p *LiveProvider) CreateCalendarEvent(ctx context.Context, interview domain.Interview) (domain.CalendarEventRef, error) {
	if interview.Duration <= 0 {
		return domain.CalendarEventRef{}, &domain.RemoteCreateFailure{
			InterviewID: interview.ID,
			Err:         fmt.Errorf("duration must be positive, got %d", interview.Duration),
		}
	}

	var attendees []string
	if email := strings.TrimSpace(interview.CandidateEmail); email != "" {
		attendees = []string{email}
	}
	created, err := p.calendar.InsertEvent(ctx, domain.NewCalendarEvent{
		Title:               TitlePrefix + interview.Position,
		Description:         interview.CandidateName + "\n" + interview.CandidateEmail,
		Start:               interview.ScheduledTime,
		End:                 interview.EndTime(),
		Attendees:           attendees,
		ConferenceRequestID: uuid.NewString(),
	})
	if err != nil {
		return domain.CalendarEventRef{}, &domain.RemoteCreateFailure{InterviewID: interview.ID, Err: err}
	}
	if created.ID == "" {
		return domain.CalendarEventRef{}, &domain.RemoteCreateFailure{
			InterviewID: interview.ID,
			Err:         errors.New("calendar response carried no event id"),
		}
	}

	p.logger.InfoContext(ctx, "calendar event created", "event_id", created.ID, "email", p.identity.Email)
	return domain.CalendarEventRef{EventID: created.ID, Link: meetLink(created)}, nil
}
