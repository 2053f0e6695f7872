package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	parkingdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	txdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

func (s *Server) registerTransactionRoutes() {
	tx := s.engine.Group("/transactions")

	tx.GET("/", s.ListTransactions)
	tx.GET("/latest", s.LatestTransaction)
	tx.GET("/latest/qr", s.LatestTransactionQR)
	tx.GET("/latest/:plate", s.LatestTransactionByPlate)
	tx.GET("/:ticket_id", s.GetTransaction)
	tx.GET("/receipt/view/:ticket_id", s.ViewParkingReceipt)
	tx.GET("/receipt/pdf/:ticket_id", s.DownloadParkingReceiptPDF)
	tx.GET("/receipt/qr/:ticket_id", s.ParkingReceiptQR)
}

func (s *Server) ListTransactions(c *gin.Context) {
	entries, err := s.txSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) LatestTransaction(c *gin.Context) {
	entry, err := s.txSvc.Latest(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) LatestTransactionByPlate(c *gin.Context) {
	entry, err := s.txSvc.FindLatestByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) GetTransaction(c *gin.Context) {
	entry, err := s.txSvc.FindByTicket(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// sessionFor fetches the parking window behind a ledger entry. Receipts
// survive without it, so lookup failures degrade to N/A times.
func (s *Server) sessionFor(c *gin.Context, entry txdomain.Entry) *parkingdomain.Session {
	session, err := s.parkingSvc.LatestSession(c.Request.Context(), entry.Plate)
	if err != nil {
		return nil
	}
	return &session
}

func (s *Server) ViewParkingReceipt(c *gin.Context) {
	entry, err := s.txSvc.FindByTicket(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	html, err := s.receipts.HTML(s.receipts.Parking(entry, s.sessionFor(c, entry)))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) DownloadParkingReceiptPDF(c *gin.Context) {
	entry, err := s.txSvc.FindByTicket(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data, err := s.receipts.PDF(s.receipts.Parking(entry, s.sessionFor(c, entry)))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=receipt_"+entry.TicketID+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *Server) ParkingReceiptQR(c *gin.Context) {
	entry, err := s.txSvc.FindByTicket(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.respondQR(c, s.receipts.ParkingViewURL(entry.TicketID))
}

func (s *Server) LatestTransactionQR(c *gin.Context) {
	entry, err := s.txSvc.Latest(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.respondQR(c, s.receipts.ParkingViewURL(entry.TicketID))
}

func (s *Server) respondQR(c *gin.Context, url string) {
	data, err := s.receipts.QRPNG(url)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
