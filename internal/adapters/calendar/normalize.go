package calendar

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"interviewpass/internal/domain"
)

const (
	// interviewMarker is the case-insensitive title substring that identifies interview events.
	interviewMarker = "interview"
	// TitlePrefix is prepended to the position when the portal creates an event.
	TitlePrefix = "Interview: "

	unknownCandidate = "Unknown"
)

var errMalformedEvent = errors.New("malformed calendar event")

// IsInterviewEvent reports whether a calendar event title carries the interview marker.
func IsInterviewEvent(title string) bool {
	return strings.Contains(strings.ToLower(title), interviewMarker)
}

// PositionFromTitle strips the leading interview marker and its separator from an event title.
func PositionFromTitle(title string) string {
	t := strings.TrimSpace(title)
	if len(t) < len(interviewMarker) || !strings.EqualFold(t[:len(interviewMarker)], interviewMarker) {
		return t
	}
	rest := t[len(interviewMarker):]
	// "Interviewer sync" keeps its title; only a whole-word marker is a prefix.
	if rest != "" && !strings.ContainsRune(" :-", rune(rest[0])) {
		return t
	}
	return strings.TrimSpace(strings.TrimLeft(rest, " :-"))
}

// CandidateNameFromDescription returns the first line of the description, or "Unknown" when empty.
func CandidateNameFromDescription(description string) string {
	first, _, _ := strings.Cut(description, "\n")
	first = strings.TrimSpace(first)
	if first == "" {
		return unknownCandidate
	}
	return first
}

// normalizeEvent maps a timed calendar event onto an Interview owned by recruiter.
func normalizeEvent(event domain.CalendarEvent, recruiter *domain.Identity, brand domain.BrandID) (domain.Interview, error) {
	if strings.TrimSpace(event.ID) == "" {
		return domain.Interview{}, fmt.Errorf("%w: missing id", errMalformedEvent)
	}
	start, err := time.Parse(time.RFC3339, event.Start.DateTime)
	if err != nil {
		return domain.Interview{}, fmt.Errorf("%w: start time: %v", errMalformedEvent, err)
	}
	end, err := time.Parse(time.RFC3339, event.End.DateTime)
	if err != nil {
		return domain.Interview{}, fmt.Errorf("%w: end time: %v", errMalformedEvent, err)
	}
	duration := int(math.Round(end.Sub(start).Minutes()))
	if duration <= 0 {
		return domain.Interview{}, fmt.Errorf("%w: non-positive duration %d", errMalformedEvent, duration)
	}

	var candidateEmail string
	if len(event.AttendeeEmails) > 0 {
		candidateEmail = event.AttendeeEmails[0]
	}

	return domain.Interview{
		ID:             event.ID,
		CandidateName:  CandidateNameFromDescription(event.Description),
		CandidateEmail: candidateEmail,
		Position:       PositionFromTitle(event.Title),
		Brand:          brand,
		ScheduledTime:  start,
		Duration:       duration,
		RecruiterName:  recruiter.Name,
		RecruiterEmail: recruiter.Email,
		Status:         domain.InterviewScheduled,
		MeetLink:       meetLink(event),
	}, nil
}

func meetLink(event domain.CalendarEvent) string {
	if len(event.EntryPointURIs) > 0 {
		return event.EntryPointURIs[0]
	}
	return event.HangoutLink
}
