package domain

import (
	"context"
	"time"
)

// Session is the signed-in state carried by the opaque session token.
type Session struct {
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Avatar            string    `json:"avatar,omitempty"`
	AccessToken       string    `json:"-"`
	RefreshToken      string    `json:"-"`
	AccessTokenExpiry time.Time `json:"-"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

// Identity returns the identity claims of the session, or nil when the session carries no email.
func (s *Session) Identity() *Identity {
	if s == nil || s.Email == "" {
		return nil
	}
	return NewIdentity(s.Name, s.Email, s.Avatar)
}

// Credentials is what a calendar client needs to act for the signed-in user. An empty
// RefreshToken means the access token is used as-is until it expires.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Credentials returns the provider tokens carried by the session.
func (s *Session) Credentials() Credentials {
	if s == nil {
		return Credentials{}
	}
	return Credentials{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken, Expiry: s.AccessTokenExpiry}
}

// SessionIssuer turns a signed-in session into an opaque token.
type SessionIssuer interface {
	Issue(session Session, ttl time.Duration) (token string, err error)
}

// SessionVerifier checks a token's authenticity and expiry and returns the session it carries.
// Implementations return an error wrapping ErrUnauthorized for any rejected token.
type SessionVerifier interface {
	Verify(token string) (*Session, error)
}

// Profile is what the identity provider reports about the signed-in account.
type Profile struct {
	Name   string
	Email  string
	Avatar string
}

// ProfileFetcher loads the account profile for a freshly issued access token.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (Profile, error)
}

// SignInService drives the third-party sign-in flow and issues session tokens.
type SignInService interface {
	AuthCodeURL(state string) string
	CompleteSignIn(ctx context.Context, code string) (token string, session *Session, err error)
}
