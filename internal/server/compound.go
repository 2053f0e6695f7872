package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	compounddomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
)

func (s *Server) registerCompoundRoutes() {
	compound := s.engine.Group("/compound")

	compound.POST("/", s.CreateCompound)
	compound.POST("/pay/:compoundnum", s.payGuard(), s.PayCompound)
	compound.GET("/", s.ListCompounds)
	compound.GET("/latest/qr", s.LatestCompoundQR)
	compound.GET("/:compoundnum", s.GetCompound)
	compound.GET("/receipt/view/:compoundnum", s.ViewCompoundReceipt)
	compound.GET("/receipt/pdf/:compoundnum", s.DownloadCompoundReceiptPDF)
	compound.GET("/receipt/qr/:compoundnum", s.CompoundReceiptQR)
}

func (s *Server) CreateCompound(c *gin.Context) {
	var req compounddomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	compound, err := s.compoundSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, compound)
}

type payCompoundResponse struct {
	Compound      compounddomain.Compound `json:"compound"`
	ReceiptURL    string                  `json:"receipt_url,omitempty"`
	ReceiptUpload string                  `json:"receipt_upload,omitempty"`
}

// PayCompound settles the compound and then uploads the printable receipt.
// The payment is committed either way; an upload problem is reported in the
// response instead of failing the request.
func (s *Server) PayCompound(c *gin.Context) {
	compound, err := s.compoundSvc.Pay(c.Request.Context(), c.Param("compoundnum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := payCompoundResponse{Compound: compound}
	data, err := s.receipts.PDF(s.receipts.Compound(compound))
	if err == nil {
		resp.ReceiptURL, err = s.receipts.Upload(
			c.Request.Context(),
			"compound_"+compound.CompoundNum+".pdf",
			data,
			"application/pdf",
		)
	}
	if err != nil {
		s.log.Warn("compound receipt upload failed",
			zap.String("compound_num", compound.CompoundNum),
			zap.Error(err),
		)
		resp.ReceiptUpload = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListCompounds(c *gin.Context) {
	compounds, err := s.compoundSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, compounds)
}

func (s *Server) GetCompound(c *gin.Context) {
	compound, err := s.compoundSvc.GetByNum(c.Request.Context(), c.Param("compoundnum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, compound)
}

func (s *Server) ViewCompoundReceipt(c *gin.Context) {
	compound, err := s.compoundSvc.GetByNum(c.Request.Context(), c.Param("compoundnum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	html, err := s.receipts.HTML(s.receipts.Compound(compound))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) DownloadCompoundReceiptPDF(c *gin.Context) {
	compound, err := s.compoundSvc.GetByNum(c.Request.Context(), c.Param("compoundnum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data, err := s.receipts.PDF(s.receipts.Compound(compound))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=compound_"+compound.CompoundNum+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *Server) CompoundReceiptQR(c *gin.Context) {
	compound, err := s.compoundSvc.GetByNum(c.Request.Context(), c.Param("compoundnum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.respondQR(c, s.receipts.CompoundViewURL(compound.CompoundNum))
}

func (s *Server) LatestCompoundQR(c *gin.Context) {
	compound, err := s.compoundSvc.Latest(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.respondQR(c, s.receipts.CompoundViewURL(compound.CompoundNum))
}
