package license

import (
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/repository"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/service"
)

var Module = fx.Module("license.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
