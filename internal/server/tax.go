package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	taxdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/domain"
)

func (s *Server) registerTaxRoutes() {
	tax := s.engine.Group("/tax")

	tax.POST("/", s.CreateTaxBill)
	tax.POST("/owners", s.CreateTaxOwner)
	tax.GET("/", s.ListTaxBills)
	tax.GET("/by-ic/:ic", s.ListTaxBillsByIC)
	tax.GET("/:bill_no", s.GetTaxBill)
	tax.POST("/pay", s.payGuard(), s.PayTaxBills)
}

func (s *Server) CreateTaxOwner(c *gin.Context) {
	var req taxdomain.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	owner, err := s.taxSvc.CreateOwner(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (s *Server) CreateTaxBill(c *gin.Context) {
	var req taxdomain.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	bill, err := s.taxSvc.CreateBill(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (s *Server) ListTaxBills(c *gin.Context) {
	bills, err := s.taxSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (s *Server) ListTaxBillsByIC(c *gin.Context) {
	bills, err := s.taxSvc.ListByOwnerIC(c.Request.Context(), c.Param("ic"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (s *Server) GetTaxBill(c *gin.Context) {
	bill, err := s.taxSvc.GetByBillNo(c.Request.Context(), c.Param("bill_no"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (s *Server) PayTaxBills(c *gin.Context) {
	var req taxdomain.PayBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	bills, err := s.taxSvc.PayBatch(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}
