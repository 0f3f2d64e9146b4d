package app

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/Alijeyrad/glider_backend/config"
	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/internal/service/contact"
	"github.com/Alijeyrad/glider_backend/internal/service/notification"
	"github.com/Alijeyrad/glider_backend/internal/service/prices"
	"github.com/Alijeyrad/glider_backend/internal/service/responder"
	"github.com/Alijeyrad/glider_backend/pkg/coingecko"
	"github.com/Alijeyrad/glider_backend/pkg/email"
	"github.com/Alijeyrad/glider_backend/pkg/observability"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideNotificationService,
		ProvideContactService,
		ProvideResponder,
		ProvidePriceService,
	),
)

func ProvideNotificationService(client *email.Client, metrics *observability.Metrics, log *slog.Logger) notification.Service {
	return notification.New(client, metrics, log)
}

func ProvideContactService(db *repo.Client, notifier notification.Service, metrics *observability.Metrics, log *slog.Logger) contact.Service {
	return contact.New(db, notifier, metrics, log)
}

func ProvideResponder() *responder.Responder {
	return responder.New()
}

func ProvidePriceService(client *coingecko.Client, cfg *config.Config, metrics *observability.Metrics, log *slog.Logger) prices.Service {
	interval := time.Duration(cfg.Prices.PollIntervalSeconds) * time.Second
	return prices.New(client, interval, metrics, log)
}
