package domain

import (
	"context"
	"time"
)

// DefaultInterviewLimit is the number of interviews returned when no usable limit is given.
const DefaultInterviewLimit = 10

// BrandID identifies one of the organizational brands an interview or user belongs to.
type BrandID string

const (
	BrandSeaChefs BrandID = "SEACHEFS"
	BrandCosta    BrandID = "COSTA"
	BrandRCG      BrandID = "RCG"
)

// Valid reports whether b is one of the known brands.
func (b BrandID) Valid() bool {
	switch b {
	case BrandSeaChefs, BrandCosta, BrandRCG:
		return true
	}
	return false
}

// InterviewStatus is the lifecycle state of an interview.
type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
	InterviewNoShow    InterviewStatus = "no-show"
)

// Valid reports whether s is one of the known statuses.
func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled, InterviewNoShow:
		return true
	}
	return false
}

// ChecklistItem is a single step a recruiter ticks off during an interview.
type ChecklistItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Required  bool   `json:"required"`
	Completed bool   `json:"completed,omitempty"`
}

// Interview is the canonical scheduling record returned by every adapter.
// swagger:model Interview
type Interview struct {
	ID             string          `json:"id"`
	CandidateName  string          `json:"candidateName"`
	CandidateEmail string          `json:"candidateEmail"`
	Position       string          `json:"position"`
	Brand          BrandID         `json:"brand"`
	ScheduledTime  time.Time       `json:"scheduledTime"`
	Duration       int             `json:"duration"` // minutes
	RecruiterName  string          `json:"recruiterName"`
	RecruiterEmail string          `json:"recruiterEmail"`
	Status         InterviewStatus `json:"status"`
	MeetLink       string          `json:"meetLink,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Checklist      []ChecklistItem `json:"checklist,omitempty"`
}

// EndTime returns the instant the interview is scheduled to finish.
func (i Interview) EndTime() time.Time {
	return i.ScheduledTime.Add(time.Duration(i.Duration) * time.Minute)
}

// CalendarEventRef identifies an event created in the underlying calendar.
// Link is empty when the calendar did not provide a joinable meeting link.
type CalendarEventRef struct {
	EventID string `json:"eventId"`
	Link    string `json:"link,omitempty"`
}

// NormalizeLimit coerces a requested interview limit to a positive number.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultInterviewLimit
	}
	return limit
}

// InterviewAdapter is the capability every interview data source implements.
//
// GetUpcomingInterviews never reports an empty result as an error.
// GetInterviewDetails returns ErrInterviewNotFound when id is not known to the adapter.
// GetCurrentUser returns a nil user when the adapter has no bound identity.
// CreateCalendarEvent fails with *RemoteCreateFailure and is never retried internally.
type InterviewAdapter interface {
	GetUpcomingInterviews(ctx context.Context, limit int) ([]Interview, error)
	GetInterviewDetails(ctx context.Context, id string) (*Interview, error)
	GetCurrentUser(ctx context.Context) (*User, error)
	CreateCalendarEvent(ctx context.Context, interview Interview) (CalendarEventRef, error)
}

// AdapterProvider selects the adapter serving a request from the caller's credentials and identity.
type AdapterProvider interface {
	For(creds Credentials, identity *Identity) InterviewAdapter
}
