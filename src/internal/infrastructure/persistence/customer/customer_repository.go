package customer

import (
	"errors"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/dbutil"
	"gorm.io/gorm"
)

// ===========================
// CustomerRepositoryImpl
// ===========================

// CustomerRepositoryImpl 客戶倉儲實現（GORM）
//
// 設計原則：
// - 實作 customer.CustomerRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 創建新的客戶倉儲實例
func NewCustomerRepository(db *gorm.DB) customer.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Create 保存新客戶
//
// 錯誤處理：
// - 主鍵重複 → ErrCustomerAlreadyExists
// - 其他資料庫錯誤 → 原始錯誤
func (r *CustomerRepositoryImpl) Create(ctx shared.TransactionContext, c *customer.Customer) error {
	db := dbutil.DB(ctx, r.db)

	result := db.Create(toGORM(c))
	if result.Error != nil {
		if dbutil.IsUniqueConstraintError(result.Error) {
			return customer.ErrCustomerAlreadyExists.WithContext(
				"customer_id", c.ID().String(),
			)
		}
		return result.Error
	}

	return nil
}

// Update 更新既有客戶的所有欄位
//
// 使用 Select("*") 讓零值（例如 active=false、reward_points=0）也會被寫入。
// 沒有任何資料列被更新時返回 ErrCustomerNotFound。
func (r *CustomerRepositoryImpl) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	db := dbutil.DB(ctx, r.db)

	result := db.Model(&CustomerGORM{}).
		Where("id = ?", c.ID().String()).
		Select("*").
		Updates(toGORM(c))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound.WithContext(
			"customer_id", c.ID().String(),
		)
	}

	return nil
}

// Find 根據 ID 查找客戶
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → customer.ErrCustomerNotFound
func (r *CustomerRepositoryImpl) Find(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	db := dbutil.DB(ctx, r.db)

	var gormModel CustomerGORM
	result := db.Where("id = ?", id.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound.WithContext(
				"customer_id", id.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindAll 返回所有客戶（依建立時間排序）
func (r *CustomerRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*customer.Customer, error) {
	db := dbutil.DB(ctx, r.db)

	var gormModels []CustomerGORM
	if err := db.Order("created_at, id").Find(&gormModels).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(gormModels))
	for i := range gormModels {
		c, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}
