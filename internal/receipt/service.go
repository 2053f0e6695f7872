package receipt

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"

	compounddomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
	licensedomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
	parkingdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/blob"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/pdf"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/qr"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt/render"
	txdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Service turns domain records into receipt artifacts: HTML pages, PDFs, QR
// codes and uploaded blob links. It holds no state of its own.
type Service struct {
	renderer render.Renderer
	pdf      *pdf.Generator
	uploader blob.Uploader
	baseURL  string
}

type Params struct {
	fx.In

	Cfg      config.Config
	Renderer render.Renderer
	PDF      *pdf.Generator
	Uploader blob.Uploader
}

func New(p Params) *Service {
	return &Service{
		renderer: p.Renderer,
		pdf:      p.PDF,
		uploader: p.Uploader,
		baseURL:  strings.TrimRight(p.Cfg.BaseURL, "/"),
	}
}

// Parking builds the receipt input for a ledger entry. The session supplies
// the window times and may be nil when the row predates the ticket.
func (s *Service) Parking(entry txdomain.Entry, session *parkingdomain.Session) render.Input {
	timeIn, timeOut := "N/A", "N/A"
	if session != nil {
		timeIn = session.TimeIn.Format(timeLayout)
		timeOut = session.TimeOut.Format(timeLayout)
	}
	return render.Input{
		Title: "Parking E-Receipt",
		Rows: []render.Row{
			{Label: "Ticket ID", Value: entry.TicketID},
			{Label: "Plate", Value: entry.Plate},
			{Label: "Time Purchased (Hours)", Value: fmt.Sprintf("%g", entry.Hours)},
			{Label: "Time In", Value: timeIn},
			{Label: "Time Out", Value: timeOut},
			{Label: "Transaction Type", Value: string(entry.Type)},
		},
		Amount:   entry.Amount,
		ThankYou: "Thank you! Drive safely",
		PDFPath:  "/transactions/receipt/pdf/" + entry.TicketID,
		Footer:   "Generated by Parking System",
	}
}

func (s *Service) Compound(c compounddomain.Compound) render.Input {
	return render.Input{
		Title: "Compound E-Receipt",
		Rows: []render.Row{
			{Label: "Compound No", Value: c.CompoundNum},
			{Label: "Plate", Value: c.Plate},
			{Label: "Date", Value: c.IssuedDate.Format("2006-01-02")},
			{Label: "Time", Value: c.IssuedTime},
			{Label: "Offense", Value: c.Offense},
			{Label: "Status", Value: string(c.Status)},
		},
		Amount:  c.Amount,
		PDFPath: "/compound/receipt/pdf/" + c.CompoundNum,
		Footer:  "Generated by Compound System",
	}
}

func (s *Service) License(l licensedomain.License) render.Input {
	start, end := "N/A", "N/A"
	if l.StartDate != nil {
		start = l.StartDate.Format("2006-01-02")
	}
	if l.EndDate != nil {
		end = l.EndDate.Format("2006-01-02")
	}
	return render.Input{
		Title: "License E-Receipt",
		Rows: []render.Row{
			{Label: "License No", Value: l.LicenseNum},
			{Label: "Type", Value: l.LicenseType},
			{Label: "Year", Value: fmt.Sprintf("%d", l.Year)},
			{Label: "Owner ID", Value: fmt.Sprintf("%d", l.OwnerID)},
			{Label: "Status", Value: string(l.Status)},
			{Label: "Start Date", Value: start},
			{Label: "End Date", Value: end},
		},
		Amount:  l.Amount,
		PDFPath: "/license/receipt/pdf/" + l.LicenseNum,
		Footer:  "Generated by License System",
	}
}

func (s *Service) HTML(input render.Input) (string, error) {
	return s.renderer.RenderHTML(input)
}

func (s *Service) PDF(input render.Input) ([]byte, error) {
	return s.pdf.Generate(input)
}

// QRPNG encodes the hosted receipt page URL as a scannable PNG.
func (s *Service) QRPNG(url string) ([]byte, error) {
	return qr.PNG(url, qr.DefaultSize)
}

// Upload stores a rendered artifact and returns its time-limited URL. A
// failure here never affects the committed payment rows.
func (s *Service) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	return s.uploader.Upload(ctx, name, data, contentType)
}

func (s *Service) ParkingViewURL(ticketID string) string {
	return s.baseURL + "/transactions/receipt/view/" + ticketID
}

func (s *Service) CompoundViewURL(compoundNum string) string {
	return s.baseURL + "/compound/receipt/view/" + compoundNum
}

func (s *Service) LicenseViewURL(licenseNum string) string {
	return s.baseURL + "/license/receipt/view/" + licenseNum
}
