package product

import (
	"errors"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/dbutil"
	"gorm.io/gorm"
)

// ProductRepositoryImpl 商品倉儲實現（GORM）
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 創建新的商品倉儲實例
func NewProductRepository(db *gorm.DB) product.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create 保存新商品
func (r *ProductRepositoryImpl) Create(ctx shared.TransactionContext, p *product.Product) error {
	db := dbutil.DB(ctx, r.db)

	result := db.Create(toGORM(p))
	if result.Error != nil {
		if dbutil.IsUniqueConstraintError(result.Error) {
			return product.ErrProductAlreadyExists.WithContext("product_id", p.ID().String())
		}
		return result.Error
	}
	return nil
}

// Update 更新商品名稱與價格
func (r *ProductRepositoryImpl) Update(ctx shared.TransactionContext, p *product.Product) error {
	db := dbutil.DB(ctx, r.db)

	model := toGORM(p)
	result := db.Model(&ProductGORM{}).
		Where("id = ?", model.ID).
		Select("name", "price").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound.WithContext("product_id", p.ID().String())
	}
	return nil
}

// Find 根據 ID 查找商品
func (r *ProductRepositoryImpl) Find(ctx shared.TransactionContext, id product.ProductID) (*product.Product, error) {
	db := dbutil.DB(ctx, r.db)

	var gormModel ProductGORM
	result := db.Where("id = ?", id.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound.WithContext("product_id", id.String())
		}
		return nil, result.Error
	}
	return gormModel.toDomain()
}

// FindAll 返回所有商品
func (r *ProductRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*product.Product, error) {
	db := dbutil.DB(ctx, r.db)

	var gormModels []ProductGORM
	if err := db.Order("created_at, id").Find(&gormModels).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(gormModels))
	for i := range gormModels {
		p, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
