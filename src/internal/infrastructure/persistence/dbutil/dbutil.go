// Package dbutil 提供各 Repository 共用的 GORM 輔助函數
package dbutil

import (
	"strings"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"gorm.io/gorm"
)

// txContext GORM 事務上下文（由 persistence.NewGORMTransactionContext 建立）
type txContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// DB 獲取 GORM DB 實例
//
// 行為：
//   - ctx 為 GORM 事務上下文: 使用事務中的 DB
//   - ctx == nil: 使用預設 DB（auto-commit 模式）
func DB(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(txContext); ok {
			return txCtx.GetDB()
		}
	}
	return fallback
}

// IsUniqueConstraintError 判斷是否為唯一約束錯誤
//
// 支持的資料庫：
// - PostgreSQL: "duplicate key value violates unique constraint"
// - SQLite: "UNIQUE constraint failed"
// - MySQL: "Duplicate entry"
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	// PostgreSQL
	if strings.Contains(errMsg, "duplicate key value violates unique constraint") {
		return true
	}

	// SQLite
	if strings.Contains(errMsg, "unique constraint failed") {
		return true
	}

	// MySQL
	if strings.Contains(errMsg, "duplicate entry") {
		return true
	}

	return false
}
