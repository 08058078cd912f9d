package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"interviewpass/internal/delivery/http/helpers"
	"interviewpass/internal/delivery/http/middleware"
	"interviewpass/internal/domain"
)

const (
	stateCookieName    = "oauth_state"
	callbackCookieName = "oauth_callback"
	signInCookieMaxAge = 10 * 60

	// DefaultCallbackPath is where sign-in lands when no callbackUrl was given.
	DefaultCallbackPath = "/dashboard"
	// SignInPagePath is the public sign-in page.
	SignInPagePath = "/login"
)

// SessionResponse is the body of GET /auth/session.
type SessionResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionSuccessResponse is the success envelope for GET /auth/session (200).
type SessionSuccessResponse struct {
	Success bool            `json:"success"`
	Data    SessionResponse `json:"data"`
}

// AuthController runs the Google sign-in flow and manages the session cookie.
type AuthController struct {
	Logger        *slog.Logger
	Service       domain.SignInService
	SecureCookies bool
}

// NewAuthController creates an AuthController. secureCookies marks cookies Secure (HTTPS deployments).
func NewAuthController(logger *slog.Logger, svc domain.SignInService, secureCookies bool) *AuthController {
	return &AuthController{
		Logger:        logger,
		Service:       svc,
		SecureCookies: secureCookies,
	}
}

// SignIn godoc
// @Summary Start Google sign-in
// @Description Redirects to Google's consent screen. callbackUrl (a same-site path) is where the browser returns after sign-in.
// @Tags auth
// @Param callbackUrl query string false "Path to return to after sign-in" default(/dashboard)
// @Success 302 "Redirect to Google"
// @Router /auth/signin/google [get]
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	callback := helpers.SafeCallbackPath(r.URL.Query().Get("callbackUrl"), DefaultCallbackPath)
	c.setCookie(w, stateCookieName, state, signInCookieMaxAge)
	c.setCookie(w, callbackCookieName, callback, signInCookieMaxAge)
	http.Redirect(w, r, c.Service.AuthCodeURL(state), http.StatusFound)
}

// Callback godoc
// @Summary Complete Google sign-in
// @Description OAuth redirect target. Exchanges the code, sets the session cookie and redirects to the saved callbackUrl.
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 302 "Redirect to callbackUrl"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/callback/google [get]
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if denied := q.Get("error"); denied != "" {
		c.clearSignInCookies(w)
		http.Redirect(w, r, SignInPagePath+"?"+url.Values{"error": {denied}}.Encode(), http.StatusFound)
		return
	}
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != q.Get("state") {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid oauth state")
		return
	}
	callback := DefaultCallbackPath
	if cb, err := r.Cookie(callbackCookieName); err == nil {
		callback = helpers.SafeCallbackPath(cb.Value, DefaultCallbackPath)
	}

	token, session, err := c.Service.CompleteSignIn(r.Context(), q.Get("code"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "sign-in failed")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "sign-in failed")
		return
	}

	c.clearSignInCookies(w)
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   c.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	c.Logger.InfoContext(r.Context(), "recruiter signed in", "email", session.Email)
	http.Redirect(w, r, callback, http.StatusFound)
}

// SignOut godoc
// @Summary Sign out
// @Description Clears the session cookie and redirects to the sign-in page.
// @Tags auth
// @Success 303 "Redirect to /login"
// @Router /auth/signout [post]
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	c.setCookie(w, middleware.SessionCookieName, "", -1)
	http.Redirect(w, r, SignInPagePath, http.StatusSeeOther)
}

// Session godoc
// @Summary Get the current session
// @Description Returns the signed-in recruiter's name, email and session expiry.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/session [get]
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SessionResponse{
		Name:      session.Name,
		Email:     session.Email,
		Avatar:    session.Avatar,
		ExpiresAt: session.ExpiresAt,
	})
}

func (c *AuthController) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *AuthController) clearSignInCookies(w http.ResponseWriter) {
	c.setCookie(w, stateCookieName, "", -1)
	c.setCookie(w, callbackCookieName, "", -1)
}
