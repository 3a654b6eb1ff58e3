package notification

import (
	"context"
	"fmt"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/checkout"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/logger"
)

// ===========================
// CustomerCreated 處理器
// ===========================

// FirstLogWhenCustomerCreated 客戶建立時輸出第一條日誌
type FirstLogWhenCustomerCreated struct {
	log *logger.Logger
}

func NewFirstLogWhenCustomerCreated(log *logger.Logger) *FirstLogWhenCustomerCreated {
	return &FirstLogWhenCustomerCreated{log: log}
}

func (h *FirstLogWhenCustomerCreated) Handle(ctx context.Context, event shared.DomainEvent) error {
	if _, ok := event.(customer.CustomerCreated); !ok {
		return nil
	}
	h.log.Info("This is the first log of event: CustomerCreated", "customer_id", event.AggregateID())
	return nil
}

// SecondLogWhenCustomerCreated 客戶建立時輸出第二條日誌
type SecondLogWhenCustomerCreated struct {
	log *logger.Logger
}

func NewSecondLogWhenCustomerCreated(log *logger.Logger) *SecondLogWhenCustomerCreated {
	return &SecondLogWhenCustomerCreated{log: log}
}

func (h *SecondLogWhenCustomerCreated) Handle(ctx context.Context, event shared.DomainEvent) error {
	if _, ok := event.(customer.CustomerCreated); !ok {
		return nil
	}
	h.log.Info("This is the second log of event: CustomerCreated", "customer_id", event.AggregateID())
	return nil
}

// ===========================
// CustomerAddressChanged 處理器
// ===========================

// LogWhenCustomerAddressChanged 客戶地址變更時輸出日誌
type LogWhenCustomerAddressChanged struct {
	log *logger.Logger
}

func NewLogWhenCustomerAddressChanged(log *logger.Logger) *LogWhenCustomerAddressChanged {
	return &LogWhenCustomerAddressChanged{log: log}
}

func (h *LogWhenCustomerAddressChanged) Handle(ctx context.Context, event shared.DomainEvent) error {
	changed, ok := event.(customer.CustomerAddressChanged)
	if !ok {
		return nil
	}
	data := changed.Data()
	h.log.Info(AddressChangedMessage(data), "customer_id", data.CustomerID.String())
	return nil
}

// AddressChangedMessage 地址變更日誌內容
func AddressChangedMessage(data customer.CustomerAddressChangedData) string {
	return fmt.Sprintf("Customer address: %s, %s changed to: %s.", data.CustomerID, data.Name, data.Address)
}

// ===========================
// ProductPriceChanged / OrderPlaced 處理器
// ===========================

// LogWhenProductPriceChanged 商品調價時輸出日誌
type LogWhenProductPriceChanged struct {
	log *logger.Logger
}

func NewLogWhenProductPriceChanged(log *logger.Logger) *LogWhenProductPriceChanged {
	return &LogWhenProductPriceChanged{log: log}
}

func (h *LogWhenProductPriceChanged) Handle(ctx context.Context, event shared.DomainEvent) error {
	changed, ok := event.(product.ProductPriceChanged)
	if !ok {
		return nil
	}
	data := changed.Data()
	h.log.Info("Product price changed",
		"product_id", data.ProductID.String(),
		"name", data.Name,
		"old_price", data.OldPrice.String(),
		"new_price", data.NewPrice.String(),
	)
	return nil
}

// LogWhenOrderPlaced 下單時輸出日誌
type LogWhenOrderPlaced struct {
	log *logger.Logger
}

func NewLogWhenOrderPlaced(log *logger.Logger) *LogWhenOrderPlaced {
	return &LogWhenOrderPlaced{log: log}
}

func (h *LogWhenOrderPlaced) Handle(ctx context.Context, event shared.DomainEvent) error {
	placed, ok := event.(checkout.OrderPlaced)
	if !ok {
		return nil
	}
	data := placed.Data()
	h.log.Info("Order placed",
		"order_id", data.OrderID.String(),
		"customer_id", data.CustomerID.String(),
		"total", data.Total.StringFixed(2),
		"items", data.ItemCount,
	)
	return nil
}

// ===========================
// 預設註冊
// ===========================

// RegisterDefaults 註冊所有日誌處理器
//
// CustomerCreated 的兩個處理器依序執行（先 first 後 second）。
func RegisterDefaults(registry shared.EventRegistry, log *logger.Logger) error {
	registrations := []struct {
		kind    shared.EventKind
		handler shared.EventHandler
	}{
		{shared.KindCustomerCreated, NewFirstLogWhenCustomerCreated(log)},
		{shared.KindCustomerCreated, NewSecondLogWhenCustomerCreated(log)},
		{shared.KindCustomerAddressChanged, NewLogWhenCustomerAddressChanged(log)},
		{shared.KindProductPriceChanged, NewLogWhenProductPriceChanged(log)},
		{shared.KindOrderPlaced, NewLogWhenOrderPlaced(log)},
	}

	for _, r := range registrations {
		if err := registry.Register(r.kind, r.handler); err != nil {
			return fmt.Errorf("register %s handler: %w", r.kind, err)
		}
	}
	return nil
}
