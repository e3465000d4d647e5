package main

import (
	"context"
	"log/slog"
	"os"

	"govcourier/config"
	"govcourier/internal/delivery"
	"govcourier/internal/delivery/cli"
	"govcourier/internal/infra/egov"
	logs "govcourier/internal/infra/log"
	"govcourier/internal/usecase/impl"

	"go.uber.org/fx"
)

type runSessionParams struct {
	fx.In

	Shutdowner fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			runSession,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		egov.NewClient,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlacementService,
			impl.NewCourierService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newShell,
				fx.As(new(delivery.Delivery)),
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func newShell(params cli.Params) *cli.Shell {
	return cli.NewShell(params, os.Stdin, os.Stdout)
}

// runSession drives each delivery to completion and stops the process once
// every session has ended. The terminal shell is a finite session rather than
// a long-lived listener, so the app exits with it.
func runSession(ctx context.Context, params runSessionParams) {
	go func() {
		for _, d := range params.Deliveries {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Session ended with error", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

				return
			}
		}

		_ = params.Shutdowner.Shutdown()
	}()
}
