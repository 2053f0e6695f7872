package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	pegepaydomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
)

func (s *Server) registerPegepayRoutes() {
	pegepay := s.engine.Group("/pegepay")

	pegepay.POST("/create-order", s.payGuard(), s.CreatePegepayOrder)
	pegepay.POST("/check-status", s.CheckPegepayStatus)
	pegepay.GET("/get-all-orders", s.ListPegepayOrders)
	pegepay.GET("/iframe-wrapper", s.PegepayIframeWrapper)
}

func (s *Server) CreatePegepayOrder(c *gin.Context) {
	var req pegepaydomain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.pegepaySvc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) CheckPegepayStatus(c *gin.Context) {
	var req pegepaydomain.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.pegepaySvc.CheckStatus(c.Request.Context(), req.OrderNo)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListPegepayOrders(c *gin.Context) {
	orders, err := s.pegepaySvc.ListOrders(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

var iframeWrapperTpl = template.Must(template.New("iframe").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>PegePay QR Payment</title>
  <style>
    body {
      margin: 0;
      background: #ffffff;
      font-family: Arial, sans-serif;
      display: flex;
      flex-direction: column;
      align-items: center;
    }
    iframe {
      width: 1080px;
      height: 1400px;
      border: none;
      transform: scale(1.5);
      transform-origin: top left;
    }
    .button-container {
      margin-top: 30px;
      margin-bottom: 30px;
    }
    button {
      width: 400px;
      height: 80px;
      font-size: 28px;
      font-weight: bold;
      color: white;
      background-color: red;
      border: none;
      border-radius: 10px;
      cursor: pointer;
    }
    button:active { background-color: darkred; }
  </style>
</head>
<body>
  <iframe src="{{.IframeURL}}" allowfullscreen></iframe>
  <div class="button-container">
    <button onclick="window.close()">CANCEL</button>
  </div>
</body>
</html>
`))

// PegepayIframeWrapper embeds the gateway's QR iframe in a kiosk-sized page.
// The kiosk browser cannot style the gateway page, so the zoom happens here.
func (s *Server) PegepayIframeWrapper(c *gin.Context) {
	iframeURL := c.Query("iframe_url")
	if iframeURL == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = iframeWrapperTpl.Execute(c.Writer, gin.H{"IframeURL": iframeURL})
}
