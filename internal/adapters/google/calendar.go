package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"interviewpass/internal/domain"
)

const (
	defaultCalendarID = "primary"
	meetSolutionType  = "hangoutsMeet"

	// maxEventsPerPage is the Calendar API's upper bound for maxResults.
	maxEventsPerPage = 2500
)

// CalendarOptions configures calendar clients built for each request.
type CalendarOptions struct {
	CalendarID string
	// Endpoint overrides the Calendar API base URL, e.g. for a local stub.
	Endpoint string
	// Timeout bounds every calendar call; zero means no client-side timeout.
	Timeout time.Duration
	// Transport is the base transport under the bearer-token transport; nil uses http.DefaultTransport.
	Transport http.RoundTripper
	// OAuth refreshes expired access tokens when the credentials carry a refresh token.
	// Nil sends the access token as-is.
	OAuth *oauth2.Config
}

// CalendarClient implements domain.CalendarService against the Google Calendar API on
// behalf of a single user.
type CalendarClient struct {
	httpClient *http.Client
	calendarID string
	endpoint   string
}

// NewCalendarClient binds a client to creds. It performs no network I/O; a refresh, when
// needed, happens on the first call.
func NewCalendarClient(creds domain.Credentials, opts CalendarOptions) *CalendarClient {
	calendarID := opts.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	return &CalendarClient{
		httpClient: tokenClient(credentialSource(creds, opts), opts.Transport, opts.Timeout),
		calendarID: calendarID,
		endpoint:   opts.Endpoint,
	}
}

// NewCalendarConstructor returns a constructor suitable for the adapter factory.
func NewCalendarConstructor(opts CalendarOptions) func(creds domain.Credentials) domain.CalendarService {
	return func(creds domain.Credentials) domain.CalendarService {
		return NewCalendarClient(creds, opts)
	}
}

func credentialSource(creds domain.Credentials, opts CalendarOptions) oauth2.TokenSource {
	tok := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: creds.RefreshToken,
		Expiry:       creds.Expiry,
	}
	if opts.OAuth == nil || creds.RefreshToken == "" {
		return oauth2.StaticTokenSource(tok)
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Transport: opts.Transport,
		Timeout:   opts.Timeout,
	})
	return opts.OAuth.TokenSource(ctx, tok)
}

func bearerClient(accessToken string, base http.RoundTripper, timeout time.Duration) *http.Client {
	return tokenClient(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}), base, timeout)
}

func tokenClient(src oauth2.TokenSource, base http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: base},
		Timeout:   timeout,
	}
}

func (c *CalendarClient) service(ctx context.Context) (*calendar.Service, error) {
	opts := []option.ClientOption{option.WithHTTPClient(c.httpClient)}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// ListUpcoming fetches single-instance events starting after from, ordered by start time.
func (c *CalendarClient) ListUpcoming(ctx context.Context, from time.Time, maxResults int) ([]domain.CalendarEvent, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}
	events, err := svc.Events.List(c.calendarID).
		Context(ctx).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(from.UTC().Format(time.RFC3339)).
		MaxResults(int64(min(maxResults, maxEventsPerPage))).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list events: %v", domain.ErrRemoteUnavailable, err)
	}

	out := make([]domain.CalendarEvent, 0, len(events.Items))
	for _, item := range events.Items {
		if item == nil {
			continue
		}
		out = append(out, toDomainEvent(item))
	}
	return out, nil
}

func (c *CalendarClient) GetEvent(ctx context.Context, eventID string) (domain.CalendarEvent, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return domain.CalendarEvent{}, err
	}
	item, err := svc.Events.Get(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("%w: failed to get event: %v", domain.ErrRemoteUnavailable, err)
	}
	return toDomainEvent(item), nil
}

// InsertEvent creates the event and, when a conference request ID is given, asks Google to
// attach a Meet link.
func (c *CalendarClient) InsertEvent(ctx context.Context, event domain.NewCalendarEvent) (domain.CalendarEvent, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	googleEvent := &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start:       &calendar.EventDateTime{DateTime: event.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: event.End.Format(time.RFC3339)},
	}
	for _, email := range event.Attendees {
		googleEvent.Attendees = append(googleEvent.Attendees, &calendar.EventAttendee{Email: email})
	}
	call := svc.Events.Insert(c.calendarID, googleEvent).Context(ctx)
	if event.ConferenceRequestID != "" {
		googleEvent.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             event.ConferenceRequestID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: meetSolutionType},
			},
		}
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("%w: failed to create event: %v", domain.ErrRemoteUnavailable, err)
	}
	return toDomainEvent(created), nil
}

// toDomainEvent converts a Google Calendar event to the portal's calendar event model.
func toDomainEvent(item *calendar.Event) domain.CalendarEvent {
	event := domain.CalendarEvent{
		ID:          item.Id,
		Title:       item.Summary,
		Description: item.Description,
		HangoutLink: item.HangoutLink,
	}
	if item.Start != nil {
		event.Start = domain.EventTime{DateTime: item.Start.DateTime, Date: item.Start.Date}
	}
	if item.End != nil {
		event.End = domain.EventTime{DateTime: item.End.DateTime, Date: item.End.Date}
	}
	for _, a := range item.Attendees {
		if a != nil && a.Email != "" {
			event.AttendeeEmails = append(event.AttendeeEmails, a.Email)
		}
	}
	if item.ConferenceData != nil {
		for _, ep := range item.ConferenceData.EntryPoints {
			if ep != nil && ep.Uri != "" {
				event.EntryPointURIs = append(event.EntryPointURIs, ep.Uri)
			}
		}
	}
	return event
}
