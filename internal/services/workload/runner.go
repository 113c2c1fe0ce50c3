package workload

import (
	"context"
	"errors"

	"go.uber.org/fx"
)

// Register runs the workload once the application has started and shuts the
// application down when it is done, with exit code 1 on failure.
func Register(lc fx.Lifecycle, sd fx.Shutdowner, svc *Service) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				_, err := svc.Run(ctx)
				if errors.Is(err, context.Canceled) {
					// stopped from outside
					return
				}
				if err != nil {
					logger.Errorf("workload failed: %v", err)
					_ = sd.Shutdown(fx.ExitCode(1))
					return
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
