package customer

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

// Customer 錯誤代碼
const (
	ErrCodeInvalidCustomerID     shared.ErrorCode = "CUSTOMER_ID_INVALID"
	ErrCodeCustomerNameRequired  shared.ErrorCode = "CUSTOMER_NAME_REQUIRED"
	ErrCodeInvalidAddress        shared.ErrorCode = "ADDRESS_INVALID"
	ErrCodeAddressRequired       shared.ErrorCode = "ADDRESS_REQUIRED"
	ErrCodeInvalidRewardPoints   shared.ErrorCode = "REWARD_POINTS_INVALID"
	ErrCodeCustomerNotFound      shared.ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeCustomerAlreadyExists shared.ErrorCode = "CUSTOMER_ALREADY_EXISTS"
)

var (
	// ErrInvalidCustomerID 客戶 ID 為空
	ErrInvalidCustomerID = &shared.DomainError{
		Code:    ErrCodeInvalidCustomerID,
		Message: "id is required",
	}

	// ErrCustomerNameRequired 客戶名稱為空
	ErrCustomerNameRequired = &shared.DomainError{
		Code:    ErrCodeCustomerNameRequired,
		Message: "name is required",
	}

	// ErrInvalidAddress 地址欄位缺失或門牌號碼 <= 0
	ErrInvalidAddress = &shared.DomainError{
		Code:    ErrCodeInvalidAddress,
		Message: "invalid address",
	}

	// ErrAddressRequired 啟用客戶前必須設定地址
	ErrAddressRequired = &shared.DomainError{
		Code:    ErrCodeAddressRequired,
		Message: "address is mandatory to activate a customer",
	}

	// ErrInvalidRewardPoints 獎勵積分不能為負數
	ErrInvalidRewardPoints = &shared.DomainError{
		Code:    ErrCodeInvalidRewardPoints,
		Message: "reward points cannot be negative",
	}

	// ErrCustomerNotFound 客戶不存在
	ErrCustomerNotFound = &shared.DomainError{
		Code:    ErrCodeCustomerNotFound,
		Message: "customer not found",
	}

	// ErrCustomerAlreadyExists 客戶已存在
	ErrCustomerAlreadyExists = &shared.DomainError{
		Code:    ErrCodeCustomerAlreadyExists,
		Message: "customer already exists",
	}
)
