package checkout

import (
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/shopspring/decimal"
)

// ===========================
// RewardPointsService 領域服務
// ===========================

// DefaultRewardRate 每消費 2 元獲得 1 點
const DefaultRewardRate = 2

// RewardPointsService 獎勵積分計算領域服務（無狀態）
type RewardPointsService struct {
	rate int64
}

// NewRewardPointsService 建構函數
//
// 錯誤：ErrInvalidRewardRate（rate <= 0）
func NewRewardPointsService(rate int) (*RewardPointsService, error) {
	if rate <= 0 {
		return nil, ErrInvalidRewardRate.WithContext("rate", rate)
	}
	return &RewardPointsService{rate: int64(rate)}, nil
}

// CalculateFromTotal 根據訂單總額計算獎勵積分
//
// 業務規則：
// - 積分 = floor(總額 / rate)
// - 負數總額返回 0
func (s *RewardPointsService) CalculateFromTotal(total decimal.Decimal) int {
	points := total.Div(decimal.NewFromInt(s.rate)).Floor().IntPart()
	if points < 0 {
		return 0
	}
	return int(points)
}

// ===========================
// OrderService 領域服務
// ===========================

// OrderService 協調 Order 與 Customer 兩個聚合的下單規則
type OrderService struct {
	rewards *RewardPointsService
}

// NewOrderService 建構函數
func NewOrderService(rewards *RewardPointsService) *OrderService {
	return &OrderService{rewards: rewards}
}

// PlaceOrder 為客戶建立訂單並累加獎勵積分
//
// 返回的訂單帶有 OrderPlaced 事件。
// 錯誤：ErrItemsRequired 以及 NewOrder 的驗證錯誤
func (s *OrderService) PlaceOrder(c *customer.Customer, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired.WithContext("customer_id", c.ID().String())
	}

	order, err := PlaceOrder(NewOrderID(), c.ID(), items)
	if err != nil {
		return nil, err
	}

	if err := c.AddRewardPoints(s.rewards.CalculateFromTotal(order.Total())); err != nil {
		return nil, err
	}
	return order, nil
}

// Total 多筆訂單的總額
func (s *OrderService) Total(orders []*Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total())
	}
	return total
}
