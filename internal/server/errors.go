package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	compounddomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
	licensedomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
	parkingdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	pegepaydomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
	taxdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/domain"
	txdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	// Until carries the existing session expiry on an already-active
	// conflict so the kiosk can offer an extension instead.
	Until *time.Time `json:"until,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

// ErrorHandlingMiddleware converts errors collected on the context into the
// single JSON error shape. Handlers never write error bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var alreadyActive *parkingdomain.AlreadyActiveError
	if errors.As(err, &alreadyActive) {
		return http.StatusConflict, errorPayload{
			Type:    "already_active",
			Message: err.Error(),
			Until:   &alreadyActive.Until,
		}
	}

	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case errors.Is(err, pegepaydomain.ErrGateway):
		return http.StatusBadGateway, errorPayload{
			Type:    "gateway_error",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, parkingdomain.ErrInvalidPlate),
		errors.Is(err, parkingdomain.ErrInvalidHours),
		errors.Is(err, compounddomain.ErrInvalid),
		errors.Is(err, licensedomain.ErrInvalid),
		errors.Is(err, taxdomain.ErrInvalid),
		errors.Is(err, pegepaydomain.ErrInvalid):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, parkingdomain.ErrNoActiveSession),
		errors.Is(err, compounddomain.ErrAlreadyPaid),
		errors.Is(err, compounddomain.ErrDuplicate),
		errors.Is(err, licensedomain.ErrAlreadyActive),
		errors.Is(err, licensedomain.ErrDuplicate),
		errors.Is(err, taxdomain.ErrDuplicate):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, txdomain.ErrNotFound),
		errors.Is(err, compounddomain.ErrNotFound),
		errors.Is(err, licensedomain.ErrNotFound),
		errors.Is(err, taxdomain.ErrBillNotFound),
		errors.Is(err, taxdomain.ErrOwnerNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
