package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"interviewpass/internal/delivery/http/helpers"
	"interviewpass/internal/delivery/http/middleware"
	"interviewpass/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSignInService implements domain.SignInService for handler tests.
type fakeSignInService struct {
	token    string
	session  *domain.Session
	err      error
	lastCode string
}

func (f *fakeSignInService) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + url.QueryEscape(state)
}

func (f *fakeSignInService) CompleteSignIn(_ context.Context, code string) (string, *domain.Session, error) {
	f.lastCode = code
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.session, nil
}

func cookieByName(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthController_SignIn(t *testing.T) {
	tests := []struct {
		name         string
		callbackURL  string
		wantCallback string
	}{
		{"relative callback kept", "/interview/int-002", "/interview/int-002"},
		{"missing callback defaults", "", DefaultCallbackPath},
		{"absolute callback rejected", "https://evil.example.com/", DefaultCallbackPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, &fakeSignInService{}, true)
			target := "http://test/auth/signin/google"
			if tt.callbackURL != "" {
				target += "?callbackUrl=" + url.QueryEscape(tt.callbackURL)
			}
			rr := httptest.NewRecorder()

			ctrl.SignIn(rr, httptest.NewRequest(http.MethodGet, target, nil))

			require.Equal(t, http.StatusFound, rr.Code)
			state := cookieByName(rr, stateCookieName)
			require.NotNil(t, state)
			assert.NotEmpty(t, state.Value)
			assert.True(t, state.HttpOnly)
			assert.True(t, state.Secure)
			loc, err := url.Parse(rr.Header().Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, state.Value, loc.Query().Get("state"))
			cb := cookieByName(rr, callbackCookieName)
			require.NotNil(t, cb)
			assert.Equal(t, tt.wantCallback, cb.Value)
		})
	}
}

func TestAuthController_Callback(t *testing.T) {
	expires := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	session := &domain.Session{Name: "Ana", Email: "ana@seainfogroup.com", AccessToken: "ya29.access", ExpiresAt: expires}

	tests := []struct {
		name         string
		query        string
		stateCookie  string
		callback     string
		svc          *fakeSignInService
		wantStatus   int
		wantCode     string
		wantLocation string
		wantSession  bool
	}{
		{
			name:         "success redirects to saved callback",
			query:        "?state=s1&code=good",
			stateCookie:  "s1",
			callback:     "/interview/int-001",
			svc:          &fakeSignInService{token: "sealed", session: session},
			wantStatus:   http.StatusFound,
			wantLocation: "/interview/int-001",
			wantSession:  true,
		},
		{
			name:         "success without callback cookie goes to dashboard",
			query:        "?state=s1&code=good",
			stateCookie:  "s1",
			svc:          &fakeSignInService{token: "sealed", session: session},
			wantStatus:   http.StatusFound,
			wantLocation: DefaultCallbackPath,
			wantSession:  true,
		},
		{
			name:         "tampered callback cookie is ignored",
			query:        "?state=s1&code=good",
			stateCookie:  "s1",
			callback:     "//evil.example.com",
			svc:          &fakeSignInService{token: "sealed", session: session},
			wantStatus:   http.StatusFound,
			wantLocation: DefaultCallbackPath,
			wantSession:  true,
		},
		{
			name:        "state mismatch",
			query:       "?state=other&code=good",
			stateCookie: "s1",
			svc:         &fakeSignInService{token: "sealed", session: session},
			wantStatus:  http.StatusBadRequest,
			wantCode:    helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing state cookie",
			query:      "?state=s1&code=good",
			svc:        &fakeSignInService{token: "sealed", session: session},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:        "exchange rejected",
			query:       "?state=s1&code=bad",
			stateCookie: "s1",
			svc:         &fakeSignInService{err: fmt.Errorf("%w: exchange failed", domain.ErrUnauthorized)},
			wantStatus:  http.StatusUnauthorized,
			wantCode:    helpers.ErrCodeUnauthorized,
		},
		{
			name:        "profile lookup failed",
			query:       "?state=s1&code=good",
			stateCookie: "s1",
			svc:         &fakeSignInService{err: domain.ErrRemoteUnavailable},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    helpers.ErrCodeInternalError,
		},
		{
			name:         "consent denied",
			query:        "?error=access_denied",
			svc:          &fakeSignInService{},
			wantStatus:   http.StatusFound,
			wantLocation: "/login?error=access_denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, tt.svc, false)
			req := httptest.NewRequest(http.MethodGet, "http://test/auth/callback/google"+tt.query, nil)
			if tt.stateCookie != "" {
				req.AddCookie(&http.Cookie{Name: stateCookieName, Value: tt.stateCookie})
			}
			if tt.callback != "" {
				req.AddCookie(&http.Cookie{Name: callbackCookieName, Value: tt.callback})
			}
			rr := httptest.NewRecorder()

			ctrl.Callback(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				assert.Nil(t, cookieByName(rr, middleware.SessionCookieName))
				return
			}
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			sc := cookieByName(rr, middleware.SessionCookieName)
			if !tt.wantSession {
				assert.Nil(t, sc)
				return
			}
			require.NotNil(t, sc)
			assert.Equal(t, "sealed", sc.Value)
			assert.True(t, sc.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, sc.SameSite)
			assert.True(t, expires.Equal(sc.Expires))
			assert.Equal(t, "good", tt.svc.lastCode)
		})
	}
}

func TestAuthController_SignOut(t *testing.T) {
	ctrl := NewAuthController(testLogger, &fakeSignInService{}, false)
	req := httptest.NewRequest(http.MethodPost, "http://test/auth/signout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "sealed"})
	rr := httptest.NewRecorder()

	ctrl.SignOut(rr, req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, SignInPagePath, rr.Header().Get("Location"))
	sc := cookieByName(rr, middleware.SessionCookieName)
	require.NotNil(t, sc)
	assert.Empty(t, sc.Value)
	assert.Less(t, sc.MaxAge, 0)
}

func TestAuthController_Session(t *testing.T) {
	ctrl := NewAuthController(testLogger, &fakeSignInService{}, false)

	t.Run("with session", func(t *testing.T) {
		req := withSession(httptest.NewRequest(http.MethodGet, "http://test/auth/session", nil), testSession)
		rr := httptest.NewRecorder()
		ctrl.Session(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope SessionSuccessResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		assert.Equal(t, testSession.Email, envelope.Data.Email)
		assert.NotContains(t, rr.Body.String(), testSession.AccessToken)
		assert.NotContains(t, rr.Body.String(), testSession.RefreshToken)
	})

	t.Run("without session", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.Session(rr, httptest.NewRequest(http.MethodGet, "http://test/auth/session", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
