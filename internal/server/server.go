package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	compounddomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
	licensedomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/observability"
	obslogger "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/observability/logger"
	obsmetrics "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/observability/metrics"
	parkingdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	pegepaydomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/ratelimit"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/receipt"
	taxdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/domain"
	txdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Log:   log,
		Debug: obsCfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	parkingSvc  parkingdomain.Service
	txSvc       txdomain.Service
	compoundSvc compounddomain.Service
	licenseSvc  licensedomain.Service
	taxSvc      taxdomain.Service
	pegepaySvc  pegepaydomain.Service
	receipts    *receipt.Service
	payLimiter  *ratelimit.PaymentLimiter
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	ParkingSvc  parkingdomain.Service
	TxSvc       txdomain.Service
	CompoundSvc compounddomain.Service
	LicenseSvc  licensedomain.Service
	TaxSvc      taxdomain.Service
	PegepaySvc  pegepaydomain.Service
	Receipts    *receipt.Service
	PayLimiter  *ratelimit.PaymentLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log,
		parkingSvc:  p.ParkingSvc,
		txSvc:       p.TxSvc,
		compoundSvc: p.CompoundSvc,
		licenseSvc:  p.LicenseSvc,
		taxSvc:      p.TaxSvc,
		pegepaySvc:  p.PegepaySvc,
		receipts:    p.Receipts,
		payLimiter:  p.PayLimiter,
	}

	s.registerParkingRoutes()
	s.registerTransactionRoutes()
	s.registerCompoundRoutes()
	s.registerLicenseRoutes()
	s.registerTaxRoutes()
	s.registerPegepayRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// payGuard applies the payment rate limit where configured.
func (s *Server) payGuard() gin.HandlerFunc {
	if s.payLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return s.payLimiter.Middleware()
}
