package customer

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

// CustomerMarker 是 CustomerID 的標記類型
type CustomerMarker struct{}

// CustomerID 客戶的唯一標識符
type CustomerID = shared.EntityID[CustomerMarker]

// NewCustomerID 生成新的客戶 ID
func NewCustomerID() CustomerID {
	return shared.NewEntityID[CustomerMarker]()
}

// CustomerIDFromString 從字串解析客戶 ID
//
// 錯誤：ErrInvalidCustomerID（空白字串）
func CustomerIDFromString(s string) (CustomerID, error) {
	return shared.EntityIDFromString[CustomerMarker](s, ErrInvalidCustomerID)
}
