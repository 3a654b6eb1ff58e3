package checkout

import (
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderPlacedData 下單事件的 payload
type OrderPlacedData struct {
	OrderID    OrderID
	CustomerID customer.CustomerID
	Total      decimal.Decimal
	ItemCount  int
}

// OrderPlaced 訂單已成立事件
type OrderPlaced struct {
	shared.BaseEvent
	data OrderPlacedData
}

// NewOrderPlaced 創建下單事件
func NewOrderPlaced(id OrderID, customerID customer.CustomerID, total decimal.Decimal, itemCount int) OrderPlaced {
	return OrderPlaced{
		BaseEvent: shared.NewBaseEvent(id.String()),
		data: OrderPlacedData{
			OrderID:    id,
			CustomerID: customerID,
			Total:      total,
			ItemCount:  itemCount,
		},
	}
}

// Kind 實現 DomainEvent 介面
func (OrderPlaced) Kind() shared.EventKind {
	return shared.KindOrderPlaced
}

// Data 獲取事件 payload
func (e OrderPlaced) Data() OrderPlacedData {
	return e.data
}
