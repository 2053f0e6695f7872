package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/render"
)

// Generator renders the printable counterpart of a receipt page. It takes
// the same input as the HTML renderer so the two never drift apart.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(input render.Input) ([]byte, error) {
	cfg := config.NewBuilder().Build()
	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, input.Title, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	for _, row := range input.Rows {
		m.AddRow(8,
			text.NewCol(12, row.Label+": "+row.Value, props.Text{Size: 11}),
		)
	}

	m.AddRow(14,
		text.NewCol(12, formatAmount(input.Amount), props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Top:   4,
		}),
	)
	m.AddRow(12,
		text.NewCol(12, "Thank you for your payment!", props.Text{
			Size:  11,
			Align: align.Center,
			Top:   2,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, input.Footer, props.Text{
			Size:  8,
			Align: align.Center,
			Top:   4,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("Amount: RM %.2f", amount)
}
