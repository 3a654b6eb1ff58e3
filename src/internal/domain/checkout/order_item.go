package checkout

import (
	"strings"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/shopspring/decimal"
)

// OrderItem 訂單項目（Order 聚合內部實體）
//
// 名稱與單價是下單當下的商品快照，之後商品調價不影響既有訂單。
type OrderItem struct {
	id        OrderItemID
	name      string
	price     decimal.Decimal
	productID product.ProductID
	quantity  int
}

// NewOrderItem 建立訂單項目
//
// 錯誤：ErrInvalidOrderItemID、ErrInvalidOrderItem、ErrInvalidQuantity
func NewOrderItem(
	id OrderItemID,
	name string,
	price decimal.Decimal,
	productID product.ProductID,
	quantity int,
) (OrderItem, error) {
	name = strings.TrimSpace(name)

	switch {
	case id.IsEmpty():
		return OrderItem{}, ErrInvalidOrderItemID
	case name == "":
		return OrderItem{}, ErrInvalidOrderItem.WithContext("item_id", id.String(), "reason", "name is required")
	case productID.IsEmpty():
		return OrderItem{}, ErrInvalidOrderItem.WithContext("item_id", id.String(), "reason", "product id is required")
	case price.IsNegative():
		return OrderItem{}, ErrInvalidOrderItem.WithContext("item_id", id.String(), "reason", "price cannot be negative")
	case quantity <= 0:
		return OrderItem{}, ErrInvalidQuantity.WithContext("item_id", id.String(), "quantity", quantity)
	}

	return OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
	}, nil
}

// NewOrderItemFromProduct 以商品目前的名稱與價格建立訂單項目
func NewOrderItemFromProduct(id OrderItemID, p *product.Product, quantity int) (OrderItem, error) {
	return NewOrderItem(id, p.Name(), p.Price(), p.ID(), quantity)
}

func (i OrderItem) ID() OrderItemID {
	return i.id
}

func (i OrderItem) Name() string {
	return i.name
}

// Price 單價
func (i OrderItem) Price() decimal.Decimal {
	return i.price
}

func (i OrderItem) ProductID() product.ProductID {
	return i.productID
}

func (i OrderItem) Quantity() int {
	return i.quantity
}

// Total 小計 = 單價 * 數量
func (i OrderItem) Total() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i OrderItem) isZero() bool {
	return i.id.IsEmpty()
}
