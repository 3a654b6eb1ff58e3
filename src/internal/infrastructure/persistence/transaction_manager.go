package persistence

import (
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"gorm.io/gorm"
)

// GORMTransactionManager 以 GORM 實作 shared.TransactionManager
//
// 行為：
// - fn 返回 nil → Commit
// - fn 返回錯誤 → Rollback，原樣返回錯誤
// - fn panic → Rollback 後重新 panic
type GORMTransactionManager struct {
	db *gorm.DB
}

var _ shared.TransactionManager = (*GORMTransactionManager)(nil)

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在事務中執行 fn
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	tx := m.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := fn(NewGORMTransactionContext(tx)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	committed = true
	return nil
}
