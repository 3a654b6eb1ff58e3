package checkout

import (
	"context"
	"fmt"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/checkout"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Checkout Use Cases
// ===========================

// OrderLine 下單的一行：商品與數量
type OrderLine struct {
	ProductID string
	Quantity  int
}

// PlaceOrderCommand 下單命令
//
// 驗證：
// - CustomerID 不可為空，且客戶必須存在
// - Lines 至少一行，每個商品必須存在，數量 > 0
type PlaceOrderCommand struct {
	CustomerID string
	Lines      []OrderLine
}

// CheckoutService 結帳應用服務
//
// 職責：
// 1. 載入客戶與商品
// 2. 以商品當下的名稱 / 價格建立訂單項目
// 3. 透過 OrderService 下單並累加客戶獎勵積分
// 4. 訂單與客戶在同一事務中保存
// 5. 提交後發布 OrderPlaced
type CheckoutService struct {
	customerRepo customer.CustomerRepository
	productRepo  product.ProductRepository
	orderRepo    checkout.OrderRepository
	txManager    shared.TransactionManager
	publisher    shared.EventPublisher
	orderService *checkout.OrderService
}

// NewCheckoutService 創建結帳應用服務
func NewCheckoutService(
	customerRepo customer.CustomerRepository,
	productRepo product.ProductRepository,
	orderRepo checkout.OrderRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	orderService *checkout.OrderService,
) *CheckoutService {
	return &CheckoutService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		txManager:    txManager,
		publisher:    publisher,
		orderService: orderService,
	}
}

// PlaceOrder 下單
//
// 錯誤處理：
// - ErrInvalidCustomerID / ErrItemsRequired：開啟事務前返回
// - ErrCustomerNotFound / ErrProductNotFound / ErrInvalidQuantity：事務回滾
// - 處理器錯誤：訂單已提交，包裝後返回
func (s *CheckoutService) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*checkout.Order, error) {
	customerID, err := customer.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}
	if len(cmd.Lines) == 0 {
		return nil, checkout.ErrItemsRequired.WithContext("customer_id", customerID.String())
	}

	var (
		order *checkout.Order
		buyer *customer.Customer
	)
	err = s.txManager.InTransaction(func(tx shared.TransactionContext) error {
		c, err := s.customerRepo.Find(tx, customerID)
		if err != nil {
			return fmt.Errorf("failed to find customer: %w", err)
		}

		items, err := s.buildItems(tx, cmd.Lines)
		if err != nil {
			return err
		}

		o, err := s.orderService.PlaceOrder(c, items)
		if err != nil {
			return fmt.Errorf("failed to place order: %w", err)
		}

		if err := s.orderRepo.Create(tx, o); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.customerRepo.Update(tx, c); err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}

		order, buyer = o, c
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to publish order events: %w", err)
	}
	if err := s.publisher.Publish(ctx, buyer); err != nil {
		return nil, fmt.Errorf("failed to publish customer events: %w", err)
	}
	return order, nil
}

func (s *CheckoutService) buildItems(tx shared.TransactionContext, lines []OrderLine) ([]checkout.OrderItem, error) {
	items := make([]checkout.OrderItem, 0, len(lines))
	for _, line := range lines {
		productID, err := product.ProductIDFromString(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product ID: %w", err)
		}
		p, err := s.productRepo.Find(tx, productID)
		if err != nil {
			return nil, fmt.Errorf("failed to find product: %w", err)
		}
		item, err := checkout.NewOrderItemFromProduct(checkout.NewOrderItemID(), p, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FindOrder 根據 ID 查找訂單
func (s *CheckoutService) FindOrder(id string) (*checkout.Order, error) {
	orderID, err := checkout.OrderIDFromString(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order ID: %w", err)
	}
	o, err := s.orderRepo.Find(nil, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return o, nil
}

// ListOrders 返回所有訂單與總額
func (s *CheckoutService) ListOrders() ([]*checkout.Order, decimal.Decimal, error) {
	orders, err := s.orderRepo.FindAll(nil)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, s.orderService.Total(orders), nil
}
