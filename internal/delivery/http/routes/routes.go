package routes

import (
	"github.com/gofiber/fiber/v3"

	"talent-sonar/internal/delivery/http/handler"
	"talent-sonar/internal/delivery/http/middleware"
	"talent-sonar/internal/ws"
)

// Registry holds the constructed handlers and wires them onto the app.
// Everything under /api/v1 except the token exchange requires a valid
// access token.
type Registry struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Jobs       *handler.JobHandler
	Candidates *handler.CandidateHandler
	Ranking    *handler.RankingHandler
	Feedback   *handler.FeedbackHandler
	Analysis   *handler.AnalysisHandler
	WS         *ws.Handler

	AuthMiddleware *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws/dashboard", r.WS.HandleDashboardWS)
	}

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}

	protected := v1
	if r.AuthMiddleware != nil {
		protected = v1.Group("", r.AuthMiddleware.Middleware())
	}

	jobs := protected.Group("/jobs")
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(jobs)
	}
	if r.Ranking != nil {
		r.Ranking.RegisterJobRoutes(jobs)
		r.Ranking.RegisterInsightRoutes(protected.Group("/insights"))
	}
	if r.Analysis != nil {
		r.Analysis.RegisterRoutes(jobs)
	}

	candidates := protected.Group("/candidates")
	if r.Candidates != nil {
		r.Candidates.RegisterRoutes(candidates)
	}
	if r.Feedback != nil {
		r.Feedback.RegisterRoutes(candidates)
	}
}
