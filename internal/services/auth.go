package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"interviewpass/internal/domain"
)

type signInService struct {
	oauth      *oauth2.Config
	profiles   domain.ProfileFetcher
	issuer     domain.SessionIssuer
	sessionTTL time.Duration
	httpClient *http.Client
	now        func() time.Time
}

// NewSignInService creates a SignInService for the Google authorization-code flow.
// httpClient, when non-nil, is used for the token exchange.
func NewSignInService(oauth *oauth2.Config, profiles domain.ProfileFetcher, issuer domain.SessionIssuer, sessionTTL time.Duration, httpClient *http.Client) domain.SignInService {
	return &signInService{
		oauth:      oauth,
		profiles:   profiles,
		issuer:     issuer,
		sessionTTL: sessionTTL,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// AuthCodeURL asks for offline access so the session also carries a refresh token.
func (s *signInService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func (s *signInService) CompleteSignIn(ctx context.Context, code string) (string, *domain.Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil, fmt.Errorf("%w: missing authorization code", domain.ErrUnauthorized)
	}
	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to exchange authorization code: %v", domain.ErrUnauthorized, err)
	}
	profile, err := s.profiles.FetchProfile(ctx, tok.AccessToken)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	session := &domain.Session{
		Name:              profile.Name,
		Email:             strings.TrimSpace(strings.ToLower(profile.Email)),
		Avatar:            profile.Avatar,
		AccessToken:       tok.AccessToken,
		RefreshToken:      tok.RefreshToken,
		AccessTokenExpiry: tok.Expiry,
		ExpiresAt:         s.now().Add(s.sessionTTL),
	}
	token, err := s.issuer.Issue(*session, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return token, session, nil
}
