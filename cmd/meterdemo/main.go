package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/billing"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/clock"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/migration"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/observability"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/ratelimit"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/server"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Domains
		billing.Module,
		parking.Module,
		transaction.Module,
		compound.Module,
		license.Module,
		tax.Module,
		pegepay.Module,
		receipt.Module,
		ratelimit.Module,

		// HTTP surface
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
