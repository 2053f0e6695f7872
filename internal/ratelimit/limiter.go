package ratelimit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// paymentRate caps payment calls per second per client. Kiosks submit
	// at human speed; anything faster is a stuck touchscreen or a script.
	paymentRate  = 2.0
	paymentBurst = 5
)

// PaymentLimiter throttles the payment endpoints. Without redis it allows
// everything, and any redis error fails open: a broken limiter must never
// block a paying customer.
type PaymentLimiter struct {
	bucket *TokenBucket
	log    *zap.Logger
}

func NewPaymentLimiter(bucket *TokenBucket, log *zap.Logger) *PaymentLimiter {
	return &PaymentLimiter{bucket: bucket, log: log}
}

func (l *PaymentLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.bucket == nil {
			c.Next()
			return
		}

		key := "ratelimit:pay:" + c.ClientIP()
		result, err := l.bucket.Allow(c.Request.Context(), key, paymentRate, paymentBurst)
		if err != nil {
			l.log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !result.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"type":    "rate_limited",
					"message": "too many requests",
				},
			})
			return
		}
		c.Next()
	}
}
