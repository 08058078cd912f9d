package domain

import (
	"context"
	"time"
)

// CalendarService is the port to an external calendar, bound to one bearer token.
type CalendarService interface {
	// ListUpcoming returns single (expanded) events starting after from, ordered by start time.
	ListUpcoming(ctx context.Context, from time.Time, maxResults int) ([]CalendarEvent, error)
	GetEvent(ctx context.Context, eventID string) (CalendarEvent, error)
	InsertEvent(ctx context.Context, event NewCalendarEvent) (CalendarEvent, error)
}

// CalendarEvent is the subset of an external calendar event the portal reads.
// Times are kept as the raw strings the calendar returned.
type CalendarEvent struct {
	ID             string
	Title          string
	Description    string
	Start          EventTime
	End            EventTime
	AttendeeEmails []string
	EntryPointURIs []string
	HangoutLink    string
}

// EventTime is either a timed instant (DateTime, RFC 3339) or an all-day date (Date, yyyy-mm-dd).
type EventTime struct {
	DateTime string
	Date     string
}

// AllDay reports whether the time carries a date but no instant.
func (t EventTime) AllDay() bool {
	return t.DateTime == "" && t.Date != ""
}

// NewCalendarEvent is the payload for creating a calendar event.
type NewCalendarEvent struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
	// ConferenceRequestID, when set, asks the calendar to provision a video meeting.
	ConferenceRequestID string
}
