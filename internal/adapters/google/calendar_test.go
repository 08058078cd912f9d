package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interviewpass/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const listResponse = `{
  "items": [
    {
      "id": "ev-1",
      "summary": "Interview: Executive Chef",
      "description": "Jane Doe\nreferral",
      "start": {"dateTime": "2026-03-02T10:00:00Z"},
      "end": {"dateTime": "2026-03-02T10:30:00Z"},
      "attendees": [{"email": "jane@example.com"}, {"email": "ana@seainfogroup.com"}],
      "conferenceData": {"entryPoints": [{"entryPointType": "video", "uri": "https://meet.google.com/abc-defg-hij"}]}
    },
    {
      "id": "ev-2",
      "summary": "Offsite",
      "start": {"date": "2026-03-03"},
      "end": {"date": "2026-03-04"}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *CalendarClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCalendarClient(domain.Credentials{AccessToken: "access-123"}, CalendarOptions{Endpoint: srv.URL + "/", Timeout: 5 * time.Second})
}

func TestCalendarClient_ListUpcoming(t *testing.T) {
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		gotQuery = map[string]string{
			"singleEvents": r.URL.Query().Get("singleEvents"),
			"orderBy":      r.URL.Query().Get("orderBy"),
			"maxResults":   r.URL.Query().Get("maxResults"),
			"timeMin":      r.URL.Query().Get("timeMin"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listResponse))
	})

	events, err := client.ListUpcoming(context.Background(), from, 5)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"singleEvents": "true",
		"orderBy":      "startTime",
		"maxResults":   "5",
		"timeMin":      "2026-03-02T09:00:00Z",
	}, gotQuery)

	require.Len(t, events, 2)
	assert.Equal(t, domain.CalendarEvent{
		ID:             "ev-1",
		Title:          "Interview: Executive Chef",
		Description:    "Jane Doe\nreferral",
		Start:          domain.EventTime{DateTime: "2026-03-02T10:00:00Z"},
		End:            domain.EventTime{DateTime: "2026-03-02T10:30:00Z"},
		AttendeeEmails: []string{"jane@example.com", "ana@seainfogroup.com"},
		EntryPointURIs: []string{"https://meet.google.com/abc-defg-hij"},
	}, events[0])
	assert.True(t, events[1].Start.AllDay())
}

func TestCalendarClient_ListUpcomingCapsPageSize(t *testing.T) {
	var gotMax string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("maxResults")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, err := client.ListUpcoming(context.Background(), time.Now(), 100000)
	require.NoError(t, err)
	assert.Equal(t, "2500", gotMax)
}

func TestCalendarClient_AccessTokenRefresh(t *testing.T) {
	tests := []struct {
		name        string
		creds       domain.Credentials
		withOAuth   bool
		wantBearer  string
		wantRefresh bool
	}{
		{
			name:        "expired token is refreshed",
			creds:       domain.Credentials{AccessToken: "ya29.stale", RefreshToken: "1//refresh", Expiry: time.Now().Add(-time.Hour)},
			withOAuth:   true,
			wantBearer:  "ya29.fresh",
			wantRefresh: true,
		},
		{
			name:       "valid token is used as is",
			creds:      domain.Credentials{AccessToken: "ya29.current", RefreshToken: "1//refresh", Expiry: time.Now().Add(time.Hour)},
			withOAuth:  true,
			wantBearer: "ya29.current",
		},
		{
			name:       "no refresh token",
			creds:      domain.Credentials{AccessToken: "ya29.stale", Expiry: time.Now().Add(-time.Hour)},
			withOAuth:  true,
			wantBearer: "ya29.stale",
		},
		{
			name:       "no oauth config",
			creds:      domain.Credentials{AccessToken: "ya29.stale", RefreshToken: "1//refresh", Expiry: time.Now().Add(-time.Hour)},
			wantBearer: "ya29.stale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var refreshed bool
			var gotBearer string
			mux := http.NewServeMux()
			mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
				refreshed = true
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
				assert.Equal(t, "1//refresh", r.PostForm.Get("refresh_token"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"ya29.fresh","token_type":"Bearer","expires_in":3600}`))
			})
			mux.HandleFunc("/calendars/primary/events", func(w http.ResponseWriter, r *http.Request) {
				gotBearer = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"items": []}`))
			})
			srv := httptest.NewServer(mux)
			defer srv.Close()

			opts := CalendarOptions{Endpoint: srv.URL + "/", Timeout: 5 * time.Second}
			if tt.withOAuth {
				opts.OAuth = &oauth2.Config{
					ClientID:     "client",
					ClientSecret: "secret",
					Endpoint:     oauth2.Endpoint{TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams},
				}
			}

			_, err := NewCalendarConstructor(opts)(tt.creds).ListUpcoming(context.Background(), time.Now(), 5)
			require.NoError(t, err)
			assert.Equal(t, "Bearer "+tt.wantBearer, gotBearer)
			assert.Equal(t, tt.wantRefresh, refreshed)
		})
	}
}

func TestCalendarClient_ListUpcomingNonSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":503,"message":"backend unavailable"}}`, http.StatusServiceUnavailable)
	})

	_, err := client.ListUpcoming(context.Background(), time.Now(), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestCalendarClient_ListUpcomingMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [`))
	})

	_, err := client.ListUpcoming(context.Background(), time.Now(), 10)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestCalendarClient_GetEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendars/primary/events/ev-1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ev-1","summary":"Interview: Chef","hangoutLink":"https://meet.google.com/h"}`))
	})

	event, err := client.GetEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "ev-1", event.ID)
	assert.Equal(t, "https://meet.google.com/h", event.HangoutLink)

	_, err = client.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestCalendarClient_InsertEvent(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	var body map[string]any
	var conferenceVersion string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		conferenceVersion = r.URL.Query().Get("conferenceDataVersion")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"created-1","conferenceData":{"entryPoints":[{"entryPointType":"video","uri":"https://meet.google.com/new-link"}]}}`))
	})

	created, err := client.InsertEvent(context.Background(), domain.NewCalendarEvent{
		Title:               "Interview: Executive Chef",
		Description:         "Jane Doe\njane@example.com",
		Start:               start,
		End:                 start.Add(30 * time.Minute),
		Attendees:           []string{"jane@example.com"},
		ConferenceRequestID: "req-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "created-1", created.ID)
	assert.Equal(t, []string{"https://meet.google.com/new-link"}, created.EntryPointURIs)

	assert.Equal(t, "1", conferenceVersion)
	assert.Equal(t, "Interview: Executive Chef", body["summary"])
	assert.Equal(t, map[string]any{"dateTime": "2026-03-02T10:30:00Z"}, body["end"])
	assert.Equal(t, []any{map[string]any{"email": "jane@example.com"}}, body["attendees"])
	conference, ok := body["conferenceData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"requestId":             "req-1",
		"conferenceSolutionKey": map[string]any{"type": "hangoutsMeet"},
	}, conference["createRequest"])
}

func TestCalendarClient_InsertEventFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	})

	_, err := client.InsertEvent(context.Background(), domain.NewCalendarEvent{Title: "Interview: X", Start: time.Now(), End: time.Now().Add(time.Hour)})
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestProfileFetcher_FetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/v2/userinfo", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good" {
			http.Error(w, `{"error":{"code":401,"message":"bad token"}}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"ana@seainfogroup.com","name":"Ana Recruiter","picture":"https://lh3.example/a.png"}`))
	}))
	defer srv.Close()

	fetcher := NewProfileFetcher(srv.URL+"/", time.Second, nil)

	profile, err := fetcher.FetchProfile(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Name: "Ana Recruiter", Email: "ana@seainfogroup.com", Avatar: "https://lh3.example/a.png"}, profile)

	_, err = fetcher.FetchProfile(context.Background(), "bad")
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestNewOAuthConfig(t *testing.T) {
	cfg := NewOAuthConfig("client", "secret", "http://localhost:3001/auth/callback/google")
	assert.Equal(t, "client", cfg.ClientID)
	assert.Contains(t, cfg.Scopes, "https://www.googleapis.com/auth/calendar.events")
	assert.Contains(t, cfg.AuthCodeURL("state"), "accounts.google.com")
}
