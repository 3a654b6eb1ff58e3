package persistence

import (
	"testing"

	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/config"
	"gorm.io/gorm"
)

// ===========================
// 測試輔助函數
// ===========================

// NewTestDB 創建測試用的 SQLite in-memory 資料庫並完成遷移
// 使用場景：整合測試（Repository、Application Service）
//
// 設計原則：
// 1. 隔離性：每個測試使用獨立的 in-memory DB
// 2. 速度：SQLite in-memory 快速，適合測試
// 3. 真實性：使用真實 SQL 引擎，而非 Mock
//
// 測試結束時自動關閉連線。
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := Open(&config.Config{
		DBDriver:   config.DriverSQLite,
		DBDSN:      ":memory:",
		DBLogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}
