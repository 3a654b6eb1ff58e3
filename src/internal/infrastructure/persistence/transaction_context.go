package persistence

import (
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext 由 GORMTransactionManager 建立，包著開啟中的 *gorm.DB 事務。
//
// Repository 透過 dbutil.DB 取出 GetDB()；Domain 與 Application 層只看到
// shared.TransactionContext，接觸不到 GORM。
type gormTransactionContext struct {
	tx *gorm.DB
}

// NewGORMTransactionContext 將 *gorm.DB 包成事務上下文
//
// 通常只由 InTransaction 呼叫；測試若要讓多個 Repository 共用同一連線也可直接使用。
func NewGORMTransactionContext(tx *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{tx: tx}
}

// GetDB 返回事務中的 *gorm.DB
func (c *gormTransactionContext) GetDB() *gorm.DB {
	return c.tx
}
