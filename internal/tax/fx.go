package tax

import (
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/repository"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/service"
)

var Module = fx.Module("tax.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
