package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"interviewpass/internal/delivery/http/controllers"
	"interviewpass/internal/delivery/http/helpers"
	"interviewpass/internal/delivery/http/middleware"
	"interviewpass/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Interviews *controllers.InterviewController
	Users      *controllers.UserController
	Auth       *controllers.AuthController
	Pages      *controllers.PageController
}

// RouterOptions configures cross-cutting middleware.
type RouterOptions struct {
	Logger         *slog.Logger
	Verifier       domain.SessionVerifier
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes, wrapped in the
// access gate, CORS and request logging.
func NewRouter(c Controllers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()
	requireSession := middleware.RequireSession(opts.Verifier, opts.Logger)

	// API routes
	mux.HandleFunc("GET /api/interviews", requireSession(c.Interviews.List))
	mux.HandleFunc("POST /api/interviews", requireSession(c.Interviews.CreateEvent))
	mux.HandleFunc("GET /api/interviews/{id}", requireSession(c.Interviews.Get))
	mux.HandleFunc("GET /api/users/me", requireSession(c.Users.GetMe))

	// Auth
	mux.HandleFunc("GET /auth/signin/google", c.Auth.SignIn)
	mux.HandleFunc("GET /auth/callback/google", c.Auth.Callback)
	mux.HandleFunc("POST /auth/signout", c.Auth.SignOut)
	mux.HandleFunc("GET /auth/session", requireSession(c.Auth.Session))

	// Pages
	mux.HandleFunc("GET /{$}", c.Pages.Home)
	mux.HandleFunc("GET /login", c.Pages.Login)
	mux.HandleFunc("GET /dashboard", c.Pages.Dashboard)
	mux.HandleFunc("GET /interview/{id}", c.Pages.Interview)

	mux.HandleFunc("GET /healthz", Healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = middleware.Gate(middleware.DefaultProtectedPrefixes, controllers.SignInPagePath, mux)
	handler = middleware.CORS(opts.AllowedOrigins, handler)
	return middleware.LoggingMiddleware(opts.Logger, handler)
}

// Healthz godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /healthz [get]
func Healthz(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
