package compound

import (
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/repository"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/service"
)

var Module = fx.Module("compound.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
