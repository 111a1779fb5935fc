package migration

import (
	"github.com/smallbiznis/smartdairy/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		if err := RunMigrations(sqlDB, cfg.DBType); err != nil {
			return err
		}
		log.Named("migration").Info("schema up to date", zap.String("dialect", cfg.DBType))
		return nil
	}),
)
