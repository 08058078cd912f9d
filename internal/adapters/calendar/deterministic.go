package calendar

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"interviewpass/internal/domain"
)

const eventEditURL = "https://calendar.google.com/calendar/u/0/r/eventedit"

// DeterministicProvider serves a fixed set of placeholder interviews scheduled relative to
// the instant it was constructed. It never fails and is the fallback for LiveProvider.
type DeterministicProvider struct {
	interviews []domain.Interview
	user       domain.User
	now        func() time.Time
}

// NewDeterministicProvider builds the placeholder set from now(). A nil now uses time.Now.
func NewDeterministicProvider(now func() time.Time) *DeterministicProvider {
	if now == nil {
		now = time.Now
	}
	return &DeterministicProvider{
		interviews: placeholderInterviews(now()),
		user: domain.User{
			ID:    "user-001",
			Name:  "John Smith",
			Email: "john@seainfogroup.com",
			Role:  domain.RoleRecruiter,
			Brand: domain.BrandSeaChefs,
		},
		now: now,
	}
}

func placeholderInterviews(now time.Time) []domain.Interview {
	return []domain.Interview{
		{
			ID:             "int-001",
			CandidateName:  "Jane Doe",
			CandidateEmail: "jane@example.com",
			Position:       "Executive Chef",
			Brand:          domain.BrandSeaChefs,
			ScheduledTime:  now.Add(2 * time.Hour),
			Duration:       30,
			RecruiterName:  "John Smith",
			RecruiterEmail: "john@seainfogroup.com",
			Status:         domain.InterviewScheduled,
			MeetLink:       "https://meet.google.com/abc-defg-hij",
			Notes:          "Follow up on Italian cuisine expertise",
		},
		{
			ID:             "int-002",
			CandidateName:  "Carlos Rodriguez",
			CandidateEmail: "carlos@example.com",
			Position:       "Sous Chef",
			Brand:          domain.BrandCosta,
			ScheduledTime:  now.Add(4 * time.Hour),
			Duration:       45,
			RecruiterName:  "Sarah Johnson",
			RecruiterEmail: "sarah@seainfogroup.com",
			Status:         domain.InterviewScheduled,
			MeetLink:       "https://meet.google.com/xyz-uvwx-yz",
			Notes:          "Check service excellence standards",
		},
		{
			ID:             "int-003",
			CandidateName:  "Maria Santos",
			CandidateEmail: "maria@example.com",
			Position:       "Chef de Partie",
			Brand:          domain.BrandRCG,
			ScheduledTime:  now.Add(6 * time.Hour),
			Duration:       30,
			RecruiterName:  "John Smith",
			RecruiterEmail: "john@seainfogroup.com",
			Status:         domain.InterviewScheduled,
			MeetLink:       "https://meet.google.com/pqr-stuv-wx",
			Notes:          "Verify teamwork and safety awareness",
		},
	}
}

func (p *DeterministicProvider) GetUpcomingInterviews(_ context.Context, limit int) ([]domain.Interview, error) {
	limit = domain.NormalizeLimit(limit)
	n := min(limit, len(p.interviews))
	out := make([]domain.Interview, n)
	copy(out, p.interviews[:n])
	return out, nil
}

func (p *DeterministicProvider) GetInterviewDetails(_ context.Context, id string) (*domain.Interview, error) {
	for _, interview := range p.interviews {
		if interview.ID == id {
			found := interview
			return &found, nil
		}
	}
	return nil, domain.ErrInterviewNotFound
}

func (p *DeterministicProvider) GetCurrentUser(_ context.Context) (*domain.User, error) {
	user := p.user
	return &user, nil
}

// CreateCalendarEvent returns a synthetic event ID and a calendar deep link that does not
// point at any real event.
func (p *DeterministicProvider) CreateCalendarEvent(_ context.Context, interview domain.Interview) (domain.CalendarEventRef, error) {
	q := url.Values{}
	q.Set("text", fmt.Sprintf("Interview: %s - %s", interview.CandidateName, interview.Position))
	return domain.CalendarEventRef{
		EventID: fmt.Sprintf("event-%d", p.now().UnixMilli()),
		Link:    eventEditURL + "?" + q.Encode(),
	}, nil
}
