package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"interviewpass/internal/delivery/http/helpers"
	"interviewpass/internal/delivery/http/middleware"
	"interviewpass/internal/domain"
)

// CreateCalendarEventRequest is the request body for POST /api/interviews.
type CreateCalendarEventRequest struct {
	domain.Interview
}

// Validate implements Validator.
func (c CreateCalendarEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.CandidateName) == "" {
		errs = append(errs, "candidateName is required")
	}
	if email := strings.TrimSpace(c.CandidateEmail); email == "" {
		errs = append(errs, "candidateEmail is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, "invalid candidateEmail format")
	}
	if strings.TrimSpace(c.Position) == "" {
		errs = append(errs, "position is required")
	}
	if c.Brand != "" && !c.Brand.Valid() {
		errs = append(errs, "brand must be one of SEACHEFS, COSTA, RCG")
	}
	if c.ScheduledTime.IsZero() {
		errs = append(errs, "scheduledTime is required")
	}
	if c.Duration <= 0 {
		errs = append(errs, "duration must be a positive number of minutes")
	}
	if c.Status != "" && !c.Status.Valid() {
		errs = append(errs, "status must be one of scheduled, completed, cancelled, no-show")
	}
	return errs
}

// InterviewListResponse is the success envelope for GET /api/interviews (200).
type InterviewListResponse struct {
	Success bool               `json:"success"`
	Data    []domain.Interview `json:"data"`
	Count   int                `json:"count"`
}

// InterviewResponse is the success envelope for GET /api/interviews/{id} (200).
type InterviewResponse struct {
	Success bool             `json:"success"`
	Data    domain.Interview `json:"data"`
}

// CalendarEventResponse is the success envelope for POST /api/interviews (201).
type CalendarEventResponse struct {
	Success bool                    `json:"success"`
	Data    domain.CalendarEventRef `json:"data"`
}

// InterviewController serves interview data through the adapter bound to the caller's session.
type InterviewController struct {
	Logger   *slog.Logger
	Adapters domain.AdapterProvider
}

// NewInterviewController creates an InterviewController with the given logger and adapter provider.
func NewInterviewController(logger *slog.Logger, adapters domain.AdapterProvider) *InterviewController {
	return &InterviewController{
		Logger:   logger,
		Adapters: adapters,
	}
}

// adapterFor returns the adapter for the session in the request context.
// It writes a 401 and returns nil when the request carries no session.
func adapterFor(w http.ResponseWriter, r *http.Request, adapters domain.AdapterProvider) domain.InterviewAdapter {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok || session.AccessToken == "" {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil
	}
	return adapters.For(session.Credentials(), session.Identity())
}

// List godoc
// @Summary List upcoming interviews
// @Description Returns the signed-in recruiter's upcoming interviews in ascending start order. limit defaults to 10; non-numeric or non-positive values are treated as 10.
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of interviews" default(10)
// @Success 200 {object} controllers.InterviewListResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/interviews [get]
func (c *InterviewController) List(w http.ResponseWriter, r *http.Request) {
	adapter := adapterFor(w, r, c.Adapters)
	if adapter == nil {
		return
	}
	interviews, err := adapter.GetUpcomingInterviews(r.Context(), helpers.ParseLimit(r))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to fetch interviews")
		return
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}
	helpers.WriteJSONList(w, http.StatusOK, interviews, len(interviews))
}

// Get godoc
// @Summary Get interview details
// @Description Returns one interview by id.
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interview ID"
// @Success 200 {object} controllers.InterviewResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/interviews/{id} [get]
func (c *InterviewController) Get(w http.ResponseWriter, r *http.Request) {
	adapter := adapterFor(w, r, c.Adapters)
	if adapter == nil {
		return
	}
	interview, err := adapter.GetInterviewDetails(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInterviewNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "interview not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to fetch interview")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, interview)
}

// CreateEvent godoc
// @Summary Create a calendar event for an interview
// @Description Creates a calendar event (with a Meet link when the calendar provides one) for the given interview.
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCalendarEventRequest true "Interview to schedule"
// @Success 201 {object} controllers.CalendarEventResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: remote_create_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/interviews [post]
func (c *InterviewController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	adapter := adapterFor(w, r, c.Adapters)
	if adapter == nil {
		return
	}
	var req CreateCalendarEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	interview := req.Interview
	if interview.Status == "" {
		interview.Status = domain.InterviewScheduled
	}
	ref, err := adapter.CreateCalendarEvent(r.Context(), interview)
	if err != nil {
		var createErr *domain.RemoteCreateFailure
		if errors.As(err, &createErr) {
			c.Logger.WarnContext(r.Context(), "calendar event not created", "path", r.URL.Path, "interview_id", createErr.InterviewID, "err", err)
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeRemoteCreateFailed, "calendar rejected the event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to create calendar event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ref)
}
