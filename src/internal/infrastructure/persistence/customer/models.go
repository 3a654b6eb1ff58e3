package customer

import (
	"time"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
)

// ===========================
// GORM Models
// ===========================

// CustomerGORM 客戶資料表模型
//
// 地址以四個欄位攤平保存；全部為空代表客戶尚未設定地址。
type CustomerGORM struct {
	ID   string `gorm:"column:id;type:varchar(64);primaryKey"`
	Name string `gorm:"column:name;type:varchar(255);not null"`

	// 地址（可為空）
	Street string `gorm:"column:street;type:varchar(255)"`
	Number int    `gorm:"column:number"`
	Zip    string `gorm:"column:zip;type:varchar(32)"`
	City   string `gorm:"column:city;type:varchar(255)"`

	Active       bool `gorm:"column:active;not null;default:false"`
	RewardPoints int  `gorm:"column:reward_points;not null;default:0;check:reward_points >= 0"`

	// 審計欄位
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (CustomerGORM) TableName() string {
	return "customers"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (g *CustomerGORM) toDomain() (*customer.Customer, error) {
	id, err := customer.CustomerIDFromString(g.ID)
	if err != nil {
		return nil, err
	}

	var address customer.Address
	if g.Street != "" || g.Zip != "" || g.City != "" || g.Number != 0 {
		address, err = customer.NewAddress(g.Street, g.Number, g.Zip, g.City)
		if err != nil {
			return nil, err
		}
	}

	return customer.ReconstructCustomer(
		id,
		g.Name,
		address,
		g.Active,
		g.RewardPoints,
		g.CreatedAt,
		g.UpdatedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(c *customer.Customer) *CustomerGORM {
	address := c.Address()
	return &CustomerGORM{
		ID:           c.ID().String(),
		Name:         c.Name(),
		Street:       address.Street(),
		Number:       address.Number(),
		Zip:          address.Zip(),
		City:         address.City(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}
