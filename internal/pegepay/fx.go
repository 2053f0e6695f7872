package pegepay

import (
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/repository"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/service"
)

var Module = fx.Module("pegepay.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewClient),
	fx.Provide(service.New),
)
