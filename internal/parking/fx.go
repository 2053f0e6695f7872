package parking

import (
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/repository"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/service"
)

var Module = fx.Module("parking.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
