package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"interviewpass/internal/domain"
)

// SignInScopes are requested at sign-in: the profile claims plus write access to calendar events.
var SignInScopes = []string{
	"openid",
	goauth2.UserinfoEmailScope,
	goauth2.UserinfoProfileScope,
	calendar.CalendarEventsScope,
}

// NewOAuthConfig returns the authorization-code flow config for the portal's Google client.
func NewOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       SignInScopes,
		Endpoint:     google.Endpoint,
	}
}

// ProfileFetcher reads the signed-in account's profile from the Google userinfo endpoint.
type ProfileFetcher struct {
	endpoint  string
	timeout   time.Duration
	transport http.RoundTripper
}

// NewProfileFetcher returns a ProfileFetcher. An empty endpoint uses Google's default.
func NewProfileFetcher(endpoint string, timeout time.Duration, transport http.RoundTripper) *ProfileFetcher {
	return &ProfileFetcher{endpoint: endpoint, timeout: timeout, transport: transport}
}

func (f *ProfileFetcher) FetchProfile(ctx context.Context, accessToken string) (domain.Profile, error) {
	opts := []option.ClientOption{option.WithHTTPClient(bearerClient(accessToken, f.transport, f.timeout))}
	if f.endpoint != "" {
		opts = append(opts, option.WithEndpoint(f.endpoint))
	}
	svc, err := goauth2.NewService(ctx, opts...)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to create userinfo service: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: failed to fetch profile: %v", domain.ErrRemoteUnavailable, err)
	}
	if info.Email == "" {
		return domain.Profile{}, fmt.Errorf("profile carried no email")
	}
	return domain.Profile{Name: info.Name, Email: info.Email, Avatar: info.Picture}, nil
}
