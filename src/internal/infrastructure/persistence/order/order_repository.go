package order

import (
	"errors"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/checkout"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/dbutil"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================
// OrderRepositoryImpl
// ===========================

// OrderRepositoryImpl 訂單倉儲實現（GORM）
//
// 訂單與項目分兩張表保存；寫入操作在同一個（巢狀）事務中完成，
// 呼叫端已開啟事務時以 SAVEPOINT 參與。
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 創建新的訂單倉儲實例
func NewOrderRepository(db *gorm.DB) checkout.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 保存新訂單與所有項目
//
// 錯誤處理：
// - 訂單或項目主鍵重複 → ErrOrderAlreadyExists
func (r *OrderRepositoryImpl) Create(ctx shared.TransactionContext, o *checkout.Order) error {
	model := toGORM(o)

	err := dbutil.DB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		return createItems(tx, model.Items)
	})
	if err != nil {
		if dbutil.IsUniqueConstraintError(err) {
			return checkout.ErrOrderAlreadyExists.WithContext("order_id", model.ID)
		}
		return err
	}
	return nil
}

// Update 更新訂單，並以目前的項目整組取代已保存的項目
//
// 錯誤處理：
// - 訂單不存在 → ErrOrderNotFound
func (r *OrderRepositoryImpl) Update(ctx shared.TransactionContext, o *checkout.Order) error {
	model := toGORM(o)

	return dbutil.DB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderGORM{}).
			Where("id = ?", model.ID).
			Select("customer_id", "total").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return checkout.ErrOrderNotFound.WithContext("order_id", model.ID)
		}

		if err := tx.Where("order_id = ?", model.ID).Delete(&OrderItemGORM{}).Error; err != nil {
			return err
		}
		return createItems(tx, model.Items)
	})
}

// Find 根據 ID 查找訂單（含項目）
func (r *OrderRepositoryImpl) Find(ctx shared.TransactionContext, id checkout.OrderID) (*checkout.Order, error) {
	var gormModel OrderGORM
	result := withItems(dbutil.DB(ctx, r.db)).
		Where("id = ?", id.String()).
		First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrOrderNotFound.WithContext("order_id", id.String())
		}
		return nil, result.Error
	}
	return gormModel.toDomain()
}

// FindAll 返回所有訂單（含項目）
func (r *OrderRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*checkout.Order, error) {
	var gormModels []OrderGORM
	if err := withItems(dbutil.DB(ctx, r.db)).Order("created_at, id").Find(&gormModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*checkout.Order, 0, len(gormModels))
	for i := range gormModels {
		o, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// ===========================
// Helper Functions
// ===========================

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func createItems(tx *gorm.DB, items []OrderItemGORM) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}
