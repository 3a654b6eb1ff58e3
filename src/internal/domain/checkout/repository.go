package checkout

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

// OrderRepository 訂單倉儲介面
type OrderRepository interface {
	// Create 保存新訂單（含項目）
	// 錯誤：ErrOrderAlreadyExists
	Create(ctx shared.TransactionContext, o *Order) error

	// Update 更新訂單，以目前項目整組取代已保存的項目
	// 錯誤：ErrOrderNotFound
	Update(ctx shared.TransactionContext, o *Order) error

	// Find 根據 ID 查找訂單
	// 錯誤：ErrOrderNotFound
	Find(ctx shared.TransactionContext, id OrderID) (*Order, error)

	// FindAll 返回所有訂單
	FindAll(ctx shared.TransactionContext) ([]*Order, error)
}
