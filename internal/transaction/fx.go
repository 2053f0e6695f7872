package transaction

import (
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/repository"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/service"
)

var Module = fx.Module("transaction.service",
	fx.Provide(repository.Provide),
	fx.Provide(func(r domain.Repository) domain.Ledger { return r }),
	fx.Provide(service.New),
)
