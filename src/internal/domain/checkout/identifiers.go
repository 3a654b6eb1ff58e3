package checkout

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

// OrderMarker 是 OrderID 的標記類型
type OrderMarker struct{}

// OrderID 訂單的唯一標識符
type OrderID = shared.EntityID[OrderMarker]

// NewOrderID 生成新的訂單 ID
func NewOrderID() OrderID {
	return shared.NewEntityID[OrderMarker]()
}

// OrderIDFromString 從字串解析訂單 ID
func OrderIDFromString(s string) (OrderID, error) {
	return shared.EntityIDFromString[OrderMarker](s, ErrInvalidOrderID)
}

// OrderItemMarker 是 OrderItemID 的標記類型
type OrderItemMarker struct{}

// OrderItemID 訂單項目的標識符
type OrderItemID = shared.EntityID[OrderItemMarker]

// NewOrderItemID 生成新的訂單項目 ID
func NewOrderItemID() OrderItemID {
	return shared.NewEntityID[OrderItemMarker]()
}

// OrderItemIDFromString 從字串解析訂單項目 ID
func OrderItemIDFromString(s string) (OrderItemID, error) {
	return shared.EntityIDFromString[OrderItemMarker](s, ErrInvalidOrderItemID)
}
