package product

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

// ProductRepository 商品倉儲介面
type ProductRepository interface {
	// Create 保存新商品
	// 錯誤：ErrProductAlreadyExists
	Create(ctx shared.TransactionContext, p *Product) error

	// Update 更新既有商品
	// 錯誤：ErrProductNotFound
	Update(ctx shared.TransactionContext, p *Product) error

	// Find 根據 ID 查找商品
	// 錯誤：ErrProductNotFound
	Find(ctx shared.TransactionContext, id ProductID) (*Product, error)

	// FindAll 返回所有商品
	FindAll(ctx shared.TransactionContext) ([]*Product, error)
}
