package shared

import (
	"strings"

	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 是一個泛型實體 ID 值對象
//
// 設計原則：
// 1. 類型安全：不同聚合的 ID 不能混用（CustomerID ≠ OrderID）
// 2. 不可變性（unexported field）
// 3. 自我驗證：不接受空白字串
//
// 新建的 ID 使用 UUID v4 字串；從外部載入的 ID 只要求非空白，
// 因為既有資料（例如 "123"、"Id Pedido 1"）不一定是 UUID 格式。
//
// 使用範例：
//
//	type CustomerMarker struct{}
//	type CustomerID = shared.EntityID[CustomerMarker]
//
//	id := shared.NewEntityID[CustomerMarker]()
//	id, err := shared.EntityIDFromString[CustomerMarker]("123", ErrInvalidCustomerID)
type EntityID[T any] struct {
	value string
}

// NewEntityID 生成新的實體 ID（UUID v4）
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.NewString()}
}

// EntityIDFromString 從字串解析實體 ID
//
// 參數：
//
//	s - 識別字串（前後空白會被去除）
//	errTemplate - 解析失敗時返回的錯誤（由調用者提供，保持錯誤類型一致性）
//
// 如果 errTemplate 支援 WithContext，會附上輸入值作為上下文。
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"reason", "id cannot be blank",
			)
		}
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: trimmed}, nil
}

// String 轉換為字串表示
func (e EntityID[T]) String() string {
	return e.value
}

// Equals 比較兩個 EntityID 是否相等
//
// 注意：只能比較相同類型的 ID，跨類型比較是編譯錯誤
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值）
func (e EntityID[T]) IsEmpty() bool {
	return e.value == ""
}
