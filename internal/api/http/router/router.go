package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/glider_backend/config"
	"github.com/Alijeyrad/glider_backend/internal/api/http/handler"
	"github.com/Alijeyrad/glider_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/internal/service/contact"
	"github.com/Alijeyrad/glider_backend/internal/service/prices"
	"github.com/Alijeyrad/glider_backend/internal/service/responder"
	"github.com/Alijeyrad/glider_backend/pkg/observability"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client `optional:"true"`
	DB         *repo.Client
	ContactSvc contact.Service
	PriceSvc   prices.Service
	Responder  *responder.Responder
	Metrics    *observability.Metrics
	OTel       *observability.Provider `optional:"true"`
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	rl := r.p.Cfg.Server.RateLimit
	adminOnly := middleware.AdminToken(r.p.Cfg.Admin.Token)

	contactH := handler.NewContactHandler(r.p.ContactSvc)
	chatH := handler.NewChatHandler(r.p.Responder, r.p.Metrics)
	pricesH := handler.NewPricesHandler(r.p.PriceSvc)

	api := app.Group("/api")

	r.registerContactRoutes(api, contactH, middleware.NewLimiter("contact", rl, r.p.Redis), adminOnly)
	r.registerChatRoutes(api, chatH, middleware.NewLimiter("chat", rl, r.p.Redis))
	r.registerPriceRoutes(api, pricesH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.p.DB.Ping(c.Context()) == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.OTel != nil && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(r.p.OTel.Handler()))
	}
}
