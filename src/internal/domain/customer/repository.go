package customer

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

// CustomerRepository 客戶倉儲介面
//
// Domain Layer 定義介面，Infrastructure Layer 實作。
// 讀操作可傳入 nil ctx（auto-commit）。
type CustomerRepository interface {
	// Create 保存新客戶
	// 錯誤：ErrCustomerAlreadyExists
	Create(ctx shared.TransactionContext, c *Customer) error

	// Update 更新既有客戶
	// 錯誤：ErrCustomerNotFound
	Update(ctx shared.TransactionContext, c *Customer) error

	// Find 根據 ID 查找客戶
	// 錯誤：ErrCustomerNotFound
	Find(ctx shared.TransactionContext, id CustomerID) (*Customer, error)

	// FindAll 返回所有客戶
	FindAll(ctx shared.TransactionContext) ([]*Customer, error)
}
