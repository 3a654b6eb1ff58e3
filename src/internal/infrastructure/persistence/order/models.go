package order

import (
	"time"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/checkout"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// OrderGORM 訂單資料表模型
//
// 資料庫約束：
// - id: 主鍵
// - customer_id: 索引（不建立外鍵，訂單以 ID 引用客戶）
// - order_items.order_id: has-many，刪除訂單時連帶刪除項目
type OrderGORM struct {
	ID         string          `gorm:"column:id;type:varchar(64);primaryKey"`
	CustomerID string          `gorm:"column:customer_id;type:varchar(64);index;not null"`
	Total      decimal.Decimal `gorm:"column:total;type:decimal(12,2);not null"`
	Items      []OrderItemGORM `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (OrderGORM) TableName() string {
	return "orders"
}

// OrderItemGORM 訂單項目資料表模型
//
// position 保存項目在訂單中的順序。
type OrderItemGORM struct {
	ID        string          `gorm:"column:id;type:varchar(64);primaryKey"`
	OrderID   string          `gorm:"column:order_id;type:varchar(64);index;not null"`
	ProductID string          `gorm:"column:product_id;type:varchar(64);not null"`
	Name      string          `gorm:"column:name;type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`
	Quantity  int             `gorm:"column:quantity;not null;check:quantity > 0"`
	Position  int             `gorm:"column:position;not null;default:0"`
}

// TableName 指定資料表名稱
func (OrderItemGORM) TableName() string {
	return "order_items"
}

// ===========================
// Mapper Functions
// ===========================

func (g *OrderGORM) toDomain() (*checkout.Order, error) {
	id, err := checkout.OrderIDFromString(g.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := customer.CustomerIDFromString(g.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]checkout.OrderItem, 0, len(g.Items))
	for i := range g.Items {
		item, err := g.Items[i].toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return checkout.ReconstructOrder(id, customerID, items)
}

func (g *OrderItemGORM) toDomain() (checkout.OrderItem, error) {
	id, err := checkout.OrderItemIDFromString(g.ID)
	if err != nil {
		return checkout.OrderItem{}, err
	}
	productID, err := product.ProductIDFromString(g.ProductID)
	if err != nil {
		return checkout.OrderItem{}, err
	}
	return checkout.NewOrderItem(id, g.Name, g.Price, productID, g.Quantity)
}

// toGORM 將訂單轉換為 GORM 模型（含項目）
func toGORM(o *checkout.Order) *OrderGORM {
	model := &OrderGORM{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Total:      o.Total(),
	}
	model.Items = itemsToGORM(model.ID, o.Items())
	return model
}

func itemsToGORM(orderID string, items []checkout.OrderItem) []OrderItemGORM {
	models := make([]OrderItemGORM, 0, len(items))
	for i, item := range items {
		models = append(models, OrderItemGORM{
			ID:        item.ID().String(),
			OrderID:   orderID,
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Position:  i,
		})
	}
	return models
}
