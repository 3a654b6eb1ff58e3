package checkout

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

const (
	ErrCodeInvalidOrderID     shared.ErrorCode = "ORDER_ID_INVALID"
	ErrCodeInvalidOrderItemID shared.ErrorCode = "ORDER_ITEM_ID_INVALID"
	ErrCodeCustomerIDRequired shared.ErrorCode = "ORDER_CUSTOMER_ID_REQUIRED"
	ErrCodeItemsRequired      shared.ErrorCode = "ORDER_ITEMS_REQUIRED"
	ErrCodeInvalidOrderItem   shared.ErrorCode = "ORDER_ITEM_INVALID"
	ErrCodeInvalidQuantity    shared.ErrorCode = "ORDER_ITEM_QUANTITY_INVALID"
	ErrCodeOrderNotFound      shared.ErrorCode = "ORDER_NOT_FOUND"
	ErrCodeOrderAlreadyExists shared.ErrorCode = "ORDER_ALREADY_EXISTS"
	ErrCodeInvalidRewardRate  shared.ErrorCode = "REWARD_RATE_INVALID"
)

var (
	ErrInvalidOrderID = &shared.DomainError{
		Code:    ErrCodeInvalidOrderID,
		Message: "id is required",
	}

	ErrInvalidOrderItemID = &shared.DomainError{
		Code:    ErrCodeInvalidOrderItemID,
		Message: "item id is required",
	}

	ErrCustomerIDRequired = &shared.DomainError{
		Code:    ErrCodeCustomerIDRequired,
		Message: "customer id is required",
	}

	// ErrItemsRequired 訂單至少需要一個項目
	ErrItemsRequired = &shared.DomainError{
		Code:    ErrCodeItemsRequired,
		Message: "order must have at least one item",
	}

	// ErrInvalidOrderItem 項目名稱、商品 ID 缺失或價格為負
	ErrInvalidOrderItem = &shared.DomainError{
		Code:    ErrCodeInvalidOrderItem,
		Message: "invalid order item",
	}

	ErrInvalidQuantity = &shared.DomainError{
		Code:    ErrCodeInvalidQuantity,
		Message: "quantity must be greater than zero",
	}

	// ErrOrderNotFound 訂單不存在
	ErrOrderNotFound = &shared.DomainError{
		Code:    ErrCodeOrderNotFound,
		Message: "order not found",
	}

	ErrOrderAlreadyExists = &shared.DomainError{
		Code:    ErrCodeOrderAlreadyExists,
		Message: "order already exists",
	}

	ErrInvalidRewardRate = &shared.DomainError{
		Code:    ErrCodeInvalidRewardRate,
		Message: "reward rate must be greater than zero",
	}
)
