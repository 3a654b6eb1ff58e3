package customer

import (
	"fmt"
	"strings"
)

// Address 地址值對象
//
// 不變條件：street、zip、city 不可為空，number > 0
type Address struct {
	street string
	number int
	zip    string
	city   string
}

// NewAddress 建構函數（checked 版本）
func NewAddress(street string, number int, zip string, city string) (Address, error) {
	street = strings.TrimSpace(street)
	zip = strings.TrimSpace(zip)
	city = strings.TrimSpace(city)

	switch {
	case street == "":
		return Address{}, ErrInvalidAddress.WithContext("reason", "street is required")
	case number <= 0:
		return Address{}, ErrInvalidAddress.WithContext("reason", "number must be greater than zero", "number", number)
	case zip == "":
		return Address{}, ErrInvalidAddress.WithContext("reason", "zip is required")
	case city == "":
		return Address{}, ErrInvalidAddress.WithContext("reason", "city is required")
	}

	return Address{street: street, number: number, zip: zip, city: city}, nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int { return a.number }
func (a Address) Zip() string { return a.zip }
func (a Address) City() string { return a.city }

// IsZero 判斷是否為未設定的地址
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equals 值比較
func (a Address) Equals(other Address) bool {
	return a == other
}

// String 格式："Rua, 5, 1234 Fortaleza"
func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}
