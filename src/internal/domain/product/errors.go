package product

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

const (
	ErrCodeInvalidProductID       shared.ErrorCode = "PRODUCT_ID_INVALID"
	ErrCodeProductNameRequired    shared.ErrorCode = "PRODUCT_NAME_REQUIRED"
	ErrCodeInvalidPrice           shared.ErrorCode = "PRODUCT_PRICE_INVALID"
	ErrCodeProductNotFound        shared.ErrorCode = "PRODUCT_NOT_FOUND"
	ErrCodeProductAlreadyExists   shared.ErrorCode = "PRODUCT_ALREADY_EXISTS"
	ErrCodeInvalidPricePercentage shared.ErrorCode = "PRICE_PERCENTAGE_INVALID"
)

var (
	ErrInvalidProductID = &shared.DomainError{
		Code:    ErrCodeInvalidProductID,
		Message: "id is required",
	}

	ErrProductNameRequired = &shared.DomainError{
		Code:    ErrCodeProductNameRequired,
		Message: "name is required",
	}

	// ErrInvalidPrice 價格不能為負數
	ErrInvalidPrice = &shared.DomainError{
		Code:    ErrCodeInvalidPrice,
		Message: "price must be greater than or equal to zero",
	}

	ErrProductNotFound = &shared.DomainError{
		Code:    ErrCodeProductNotFound,
		Message: "product not found",
	}

	ErrProductAlreadyExists = &shared.DomainError{
		Code:    ErrCodeProductAlreadyExists,
		Message: "product already exists",
	}

	// ErrInvalidPricePercentage 調價百分比會讓價格變成負數
	ErrInvalidPricePercentage = &shared.DomainError{
		Code:    ErrCodeInvalidPricePercentage,
		Message: "percentage must be greater than -100",
	}
)
