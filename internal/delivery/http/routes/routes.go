package routes

import (
	"jobskills/internal/delivery/http/handler"
	"jobskills/internal/delivery/http/middleware"
	"jobskills/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Jobs   *handler.JobsHandler
	WS     *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.Auth.RegisterRoutes(api.Group("/auth"))

	requireAuth := r.AuthMW.Middleware()
	r.User.RegisterRoutes(api.Group("/user", requireAuth))
	r.Jobs.RegisterRoutes(api.Group("/jobs", requireAuth))

	api.Get("/ws", r.WS.HandleEventsWS)
}
