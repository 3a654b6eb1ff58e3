package product

import (
	"time"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductGORM 商品資料表模型
type ProductGORM struct {
	ID    string          `gorm:"column:id;type:varchar(64);primaryKey"`
	Name  string          `gorm:"column:name;type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (ProductGORM) TableName() string {
	return "products"
}

func (g *ProductGORM) toDomain() (*product.Product, error) {
	id, err := product.ProductIDFromString(g.ID)
	if err != nil {
		return nil, err
	}
	return product.ReconstructProduct(id, g.Name, g.Price)
}

func toGORM(p *product.Product) *ProductGORM {
	return &ProductGORM{
		ID:    p.ID().String(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}
