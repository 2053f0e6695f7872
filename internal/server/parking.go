package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	parkingdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
)

func (s *Server) registerParkingRoutes() {
	parking := s.engine.Group("/parking")

	parking.POST("/check", s.CheckParking)
	parking.GET("/check/:plate", s.CheckParkingByPlate)
	parking.POST("/pay", s.payGuard(), s.PayParking)
	parking.PUT("/:plate/:terminal/extend", s.payGuard(), s.ExtendParking)
	parking.GET("/", s.ListParking)
}

type parkingCheckRequest struct {
	Plate string `json:"plate"`
}

type parkingPayRequest struct {
	Plate    string  `json:"plate"`
	TimeUsed float64 `json:"time_used"`
	Terminal string  `json:"terminal"`
}

type parkingExtendRequest struct {
	Hours float64 `json:"hours"`
}

func (s *Server) CheckParking(c *gin.Context) {
	var req parkingCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	s.respondActiveSession(c, req.Plate)
}

func (s *Server) CheckParkingByPlate(c *gin.Context) {
	s.respondActiveSession(c, c.Param("plate"))
}

// respondActiveSession answers both check variants. An expired or missing
// session is a plain 404 here, not a conflict.
func (s *Server) respondActiveSession(c *gin.Context, plate string) {
	session, err := s.parkingSvc.LookupActive(c.Request.Context(), plate)
	if err != nil {
		if errors.Is(err, parkingdomain.ErrNoActiveSession) {
			AbortWithError(c, ErrNotFound)
			return
		}
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) PayParking(c *gin.Context) {
	var req parkingPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	session, err := s.parkingSvc.Start(c.Request.Context(), parkingdomain.StartRequest{
		Plate:    req.Plate,
		Hours:    req.TimeUsed,
		Terminal: req.Terminal,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) ExtendParking(c *gin.Context) {
	var req parkingExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	session, err := s.parkingSvc.Extend(c.Request.Context(), parkingdomain.ExtendRequest{
		Plate:      c.Param("plate"),
		ExtraHours: req.Hours,
		Terminal:   c.Param("terminal"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) ListParking(c *gin.Context) {
	sessions, err := s.parkingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}
