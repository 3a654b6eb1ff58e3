package product

import (
	"strings"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product 商品聚合根
//
// 不變條件：id、name 不可為空，price >= 0
type Product struct {
	shared.AggregateRoot

	id    ProductID
	name  string
	price decimal.Decimal
}

// NewProduct 建立商品
func NewProduct(id ProductID, name string, price decimal.Decimal) (*Product, error) {
	p := &Product{
		id:    id,
		name:  strings.TrimSpace(name),
		price: price,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ReconstructProduct 從持久化存儲重建商品（僅供 Repository 使用）
func ReconstructProduct(id ProductID, name string, price decimal.Decimal) (*Product, error) {
	return NewProduct(id, name, price)
}

func (p *Product) validate() error {
	if p.id.IsEmpty() {
		return ErrInvalidProductID
	}
	if p.name == "" {
		return ErrProductNameRequired
	}
	if p.price.IsNegative() {
		return ErrInvalidPrice.WithContext("price", p.price.String())
	}
	return nil
}

func (p *Product) ID() ProductID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

// ChangeName 變更商品名稱
func (p *Product) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrProductNameRequired
	}
	p.name = name
	return nil
}

// ChangePrice 變更價格並發布 ProductPriceChanged 事件
//
// 價格未改變時不發布事件。
func (p *Product) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice.WithContext("price", price.String())
	}
	if price.Equal(p.price) {
		return nil
	}
	old := p.price
	p.price = price
	p.AddEvent(NewProductPriceChanged(p.id, p.name, old, price))
	return nil
}
