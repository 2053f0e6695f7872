package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	licensedomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
)

func (s *Server) registerLicenseRoutes() {
	license := s.engine.Group("/license")

	license.POST("/", s.CreateLicense)
	license.POST("/pay/:licensenum", s.payGuard(), s.PayLicense)
	license.GET("/", s.ListLicenses)
	license.GET("/:licensenum", s.GetLicense)
	license.GET("/receipt/view/:licensenum", s.ViewLicenseReceipt)
	license.GET("/receipt/pdf/:licensenum", s.DownloadLicenseReceiptPDF)
	license.GET("/receipt/qr/:licensenum", s.LicenseReceiptQR)
}

func (s *Server) CreateLicense(c *gin.Context) {
	var req licensedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	license, err := s.licenseSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, license)
}

func (s *Server) PayLicense(c *gin.Context) {
	license, err := s.licenseSvc.Pay(c.Request.Context(), c.Param("licensenum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, license)
}

func (s *Server) ListLicenses(c *gin.Context) {
	licenses, err := s.licenseSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, licenses)
}

func (s *Server) GetLicense(c *gin.Context) {
	license, err := s.licenseSvc.Get(c.Request.Context(), c.Param("licensenum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, license)
}

func (s *Server) ViewLicenseReceipt(c *gin.Context) {
	license, err := s.licenseSvc.Get(c.Request.Context(), c.Param("licensenum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	html, err := s.receipts.HTML(s.receipts.License(license))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) DownloadLicenseReceiptPDF(c *gin.Context) {
	license, err := s.licenseSvc.Get(c.Request.Context(), c.Param("licensenum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data, err := s.receipts.PDF(s.receipts.License(license))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=license_"+license.LicenseNum+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *Server) LicenseReceiptQR(c *gin.Context) {
	license, err := s.licenseSvc.Get(c.Request.Context(), c.Param("licensenum"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.respondQR(c, s.receipts.LicenseViewURL(license.LicenseNum))
}
