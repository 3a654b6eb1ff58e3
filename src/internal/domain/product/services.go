package product

import "github.com/shopspring/decimal"

// PriceService 商品價格領域服務（無狀態）
type PriceService struct{}

// NewPriceService 建構函數
func NewPriceService() *PriceService {
	return &PriceService{}
}

// IncreaseAll 將每個商品價格調整 percentage%
//
// 業務規則：
// - 新價格 = 舊價格 * (1 + percentage / 100)，四捨五入到小數點後兩位
// - percentage 必須 > -100（價格不能變成負數）
// - 任一商品失敗時立即返回錯誤，之前已調整的商品保持調整後狀態
func (s *PriceService) IncreaseAll(products []*Product, percentage decimal.Decimal) error {
	if percentage.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return ErrInvalidPricePercentage.WithContext("percentage", percentage.String())
	}

	factor := decimal.NewFromInt(1).Add(percentage.Div(decimal.NewFromInt(100)))
	for _, p := range products {
		if err := p.ChangePrice(p.Price().Mul(factor).Round(2)); err != nil {
			return err
		}
	}
	return nil
}
