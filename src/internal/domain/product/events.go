package product

import (
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductPriceChangedData 商品調價事件的 payload
type ProductPriceChangedData struct {
	ProductID ProductID
	Name      string
	OldPrice  decimal.Decimal
	NewPrice  decimal.Decimal
}

// ProductPriceChanged 商品價格已變更事件
type ProductPriceChanged struct {
	shared.BaseEvent
	data ProductPriceChangedData
}

// NewProductPriceChanged 創建調價事件
func NewProductPriceChanged(id ProductID, name string, oldPrice, newPrice decimal.Decimal) ProductPriceChanged {
	return ProductPriceChanged{
		BaseEvent: shared.NewBaseEvent(id.String()),
		data: ProductPriceChangedData{
			ProductID: id,
			Name:      name,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
		},
	}
}

// Kind 實現 DomainEvent 介面
func (ProductPriceChanged) Kind() shared.EventKind {
	return shared.KindProductPriceChanged
}

// Data 獲取事件 payload
func (e ProductPriceChanged) Data() ProductPriceChangedData {
	return e.data
}
