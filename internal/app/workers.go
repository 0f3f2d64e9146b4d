package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Alijeyrad/glider_backend/config"
	"github.com/Alijeyrad/glider_backend/internal/service/contact"
	"github.com/Alijeyrad/glider_backend/internal/service/prices"
)

// WorkerModule runs background loops tied to the server lifecycle.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	PriceSvc   prices.Service
	ContactSvc contact.Service
}

func RegisterWorkers(p WorkerParams) {
	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	p.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if !p.Cfg.Prices.Enabled {
				slog.Info("price_poller: disabled")
				return nil
			}
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			done = make(chan struct{})
			go func() {
				defer close(done)
				p.PriceSvc.Run(ctx)
			}()
			slog.Info("price_poller: started", "interval_seconds", p.Cfg.Prices.PollIntervalSeconds)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
				select {
				case <-done:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			// Let queued signup emails finish within the stop timeout.
			drained := make(chan struct{})
			go func() {
				p.ContactSvc.Wait()
				close(drained)
			}()
			select {
			case <-drained:
				return nil
			case <-ctx.Done():
				slog.Warn("notifications still in flight at shutdown")
				return ctx.Err()
			}
		},
	})
}
