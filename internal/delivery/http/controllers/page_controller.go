package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"interviewpass/internal/delivery/http/helpers"
	"interviewpass/internal/delivery/http/middleware"
	"interviewpass/internal/delivery/http/views"
	"interviewpass/internal/domain"
)

type pageData struct {
	Title       string
	User        *domain.User
	CallbackURL string
	Error       string
	Interviews  []domain.Interview
	Interview   *domain.Interview
}

// PageController serves the recruiter-facing HTML pages.
type PageController struct {
	Logger   *slog.Logger
	Adapters domain.AdapterProvider
	Verifier domain.SessionVerifier
	Views    *views.Renderer
}

// NewPageController creates a PageController.
func NewPageController(logger *slog.Logger, adapters domain.AdapterProvider, verifier domain.SessionVerifier, renderer *views.Renderer) *PageController {
	return &PageController{
		Logger:   logger,
		Adapters: adapters,
		Verifier: verifier,
		Views:    renderer,
	}
}

// Home redirects to the dashboard.
func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, DefaultCallbackPath, http.StatusFound)
}

// Login renders the sign-in page.
func (c *PageController) Login(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c.render(w, r, http.StatusOK, "login.html", pageData{
		Title:       "Sign in",
		CallbackURL: helpers.SafeCallbackPath(q.Get("callbackUrl"), DefaultCallbackPath),
		Error:       q.Get("error"),
	})
}

// Dashboard renders the upcoming interviews of the signed-in recruiter.
func (c *PageController) Dashboard(w http.ResponseWriter, r *http.Request) {
	adapter, ok := c.adapter(w, r)
	if !ok {
		return
	}
	interviews, err := adapter.GetUpcomingInterviews(r.Context(), helpers.ParseLimit(r))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, "failed to load interviews", http.StatusInternalServerError)
		return
	}
	c.render(w, r, http.StatusOK, "dashboard.html", pageData{
		Title:      "Dashboard",
		User:       c.currentUser(r, adapter),
		Interviews: interviews,
	})
}

// Interview renders one interview.
func (c *PageController) Interview(w http.ResponseWriter, r *http.Request) {
	adapter, ok := c.adapter(w, r)
	if !ok {
		return
	}
	data := pageData{Title: "Interview", User: c.currentUser(r, adapter)}
	interview, err := adapter.GetInterviewDetails(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, domain.ErrInterviewNotFound):
		c.render(w, r, http.StatusNotFound, "interview.html", data)
		return
	case err != nil:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, "failed to load interview", http.StatusInternalServerError)
		return
	}
	data.Title = interview.CandidateName
	data.Interview = interview
	c.render(w, r, http.StatusOK, "interview.html", data)
}

// adapter verifies the session cookie. Pages redirect to sign-in instead of answering 401.
func (c *PageController) adapter(w http.ResponseWriter, r *http.Request) (domain.InterviewAdapter, bool) {
	session, err := c.Verifier.Verify(middleware.TokenFromRequest(r))
	if err != nil || session.AccessToken == "" {
		q := url.Values{"callbackUrl": {r.URL.Path}}
		http.Redirect(w, r, SignInPagePath+"?"+q.Encode(), http.StatusTemporaryRedirect)
		return nil, false
	}
	return c.Adapters.For(session.Credentials(), session.Identity()), true
}

func (c *PageController) currentUser(r *http.Request, adapter domain.InterviewAdapter) *domain.User {
	user, err := adapter.GetCurrentUser(r.Context())
	if err != nil {
		c.Logger.WarnContext(r.Context(), "current user unavailable", "path", r.URL.Path, "err", err)
		return nil
	}
	return user
}

func (c *PageController) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if err := c.Views.Render(w, status, name, data); err != nil {
		c.Logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "template", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
