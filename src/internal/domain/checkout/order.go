package checkout

import (
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Order 聚合根
// ===========================

// Order 訂單聚合根
//
// 不變條件：
// - id、customerID 不可為空
// - 建立時至少一個項目（RemoveItems 之後允許暫時為空，等待 AddItem）
// - 每個項目數量 > 0（由 OrderItem 保證）
//
// 客戶以 ID 引用，不持有 Customer 聚合。
type Order struct {
	shared.AggregateRoot

	id         OrderID
	customerID customer.CustomerID
	items      []OrderItem
}

// NewOrder 建立訂單（不發布事件）
//
// 錯誤：ErrInvalidOrderID、ErrCustomerIDRequired、ErrItemsRequired
func NewOrder(id OrderID, customerID customer.CustomerID, items []OrderItem) (*Order, error) {
	o := &Order{
		id:         id,
		customerID: customerID,
		items:      append([]OrderItem(nil), items...),
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// PlaceOrder 工廠方法：建立訂單並發布 OrderPlaced 事件
func PlaceOrder(id OrderID, customerID customer.CustomerID, items []OrderItem) (*Order, error) {
	o, err := NewOrder(id, customerID, items)
	if err != nil {
		return nil, err
	}
	o.AddEvent(NewOrderPlaced(o.id, o.customerID, o.Total(), len(o.items)))
	return o, nil
}

// ReconstructOrder 從持久化存儲重建訂單（僅供 Repository 使用）
//
// 允許空項目列表：RemoveItems 後保存的訂單也必須能載入。
func ReconstructOrder(id OrderID, customerID customer.CustomerID, items []OrderItem) (*Order, error) {
	if id.IsEmpty() {
		return nil, ErrInvalidOrderID
	}
	if customerID.IsEmpty() {
		return nil, ErrCustomerIDRequired
	}
	return &Order{
		id:         id,
		customerID: customerID,
		items:      append([]OrderItem(nil), items...),
	}, nil
}

func (o *Order) validate() error {
	if o.id.IsEmpty() {
		return ErrInvalidOrderID
	}
	if o.customerID.IsEmpty() {
		return ErrCustomerIDRequired
	}
	if len(o.items) == 0 {
		return ErrItemsRequired.WithContext("order_id", o.id.String())
	}
	for _, item := range o.items {
		if item.isZero() {
			return ErrInvalidOrderItem.WithContext("order_id", o.id.String(), "reason", "uninitialized item")
		}
	}
	return nil
}

func (o *Order) ID() OrderID {
	return o.id
}

func (o *Order) CustomerID() customer.CustomerID {
	return o.customerID
}

// Items 返回項目副本
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total 訂單總額 = 所有項目小計之和
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// AddItem 添加項目
func (o *Order) AddItem(item OrderItem) error {
	if item.isZero() {
		return ErrInvalidOrderItem.WithContext("order_id", o.id.String(), "reason", "uninitialized item")
	}
	o.items = append(o.items, item)
	return nil
}

// RemoveItems 移除所有項目
func (o *Order) RemoveItems() {
	o.items = nil
}
