package persistence

import (
	"fmt"
	"strings"

	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/config"
	customerpersistence "github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/customer"
	orderpersistence "github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/order"
	productpersistence "github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/product"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open 依配置建立 GORM 連線
//
// 支援的驅動：sqlite（預設，DSN 為檔案路徑或 ":memory:"）、postgres。
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBDSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(parseLogLevel(cfg.DBLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	// SQLite 的 in-memory 資料庫每條連線各自獨立
	if cfg.DBDriver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Models 所有需要遷移的 GORM 模型
func Models() []interface{} {
	return []interface{}{
		&customerpersistence.CustomerGORM{},
		&productpersistence.ProductGORM{},
		&orderpersistence.OrderGORM{},
		&orderpersistence.OrderItemGORM{},
	}
}

// AutoMigrate 建立或更新資料表結構
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close 關閉底層連線池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
