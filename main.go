package main

import (
	"github.com/eric2788/ordset/internal/modules/config"
	"github.com/eric2788/ordset/internal/services/workload"
	"go.uber.org/fx"
)

func main() {

	app := fx.New(
		config.Module,

		fx.Provide(workload.NewService),

		fx.Invoke(workload.Register),
	)

	app.Run()
}
