package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	compounddomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/compound/domain"
	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
	licensedomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/license/domain"
	parkingdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/parking/domain"
	pegepaydomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/pegepay/domain"
	taxdomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/tax/domain"
	transactiondomain "github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/transaction/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// Dev and embedded deployments (sqlite/mysql) take the gorm schema.
		return conn.AutoMigrate(
			&parkingdomain.Session{},
			&transactiondomain.Entry{},
			&compounddomain.Compound{},
			&licensedomain.License{},
			&taxdomain.Owner{},
			&taxdomain.Bill{},
			&pegepaydomain.Token{},
			&pegepaydomain.Order{},
		)
	}),
)
