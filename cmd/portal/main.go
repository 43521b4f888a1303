package main

import (
	"CSEPortal/internal/bootstrap"
	"CSEPortal/internal/config"
	pkg "CSEPortal/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		fx.WithLogger(config.NewFxLogger),
		pkg.EchoModules,
	)

	app.Run()
}
