package receipt

import (
	"go.uber.org/fx"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/blob"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/pdf"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/render"
)

var Module = fx.Module("receipt.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(pdf.NewGenerator),
	fx.Provide(blob.NewUploader),
	fx.Provide(New),
)
