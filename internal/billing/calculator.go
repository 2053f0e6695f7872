package billing

import (
	"math"

	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
)

// Calculator converts purchased parking hours into an RM amount using the
// council's flat per-hour tariff. There is no time-of-day or tiered pricing.
type Calculator struct {
	RatePerHour float64
}

func New(cfg config.Config) Calculator {
	return Calculator{RatePerHour: cfg.RatePerHour}
}

// Amount returns hours * rate rounded half up to 2 decimal places. Callers
// are expected to reject non-positive hours before calling.
func (c Calculator) Amount(hours float64) float64 {
	return math.Round(hours*c.RatePerHour*100) / 100
}

var Module = fx.Module("billing",
	fx.Provide(New),
)
