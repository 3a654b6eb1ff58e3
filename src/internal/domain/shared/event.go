package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ===========================
// EventKind 事件類型（封閉集合）
// ===========================

// EventKind 領域事件類型
//
// 所有事件類型集中宣告於此，註冊處理器時只接受下列常量，
// 新增事件類型必須在這裡登記。
type EventKind string

const (
	KindCustomerCreated        EventKind = "customer.created"
	KindCustomerAddressChanged EventKind = "customer.address_changed"
	KindProductPriceChanged    EventKind = "product.price_changed"
	KindOrderPlaced            EventKind = "order.placed"
)

var knownEventKinds = []EventKind{
	KindCustomerCreated,
	KindCustomerAddressChanged,
	KindProductPriceChanged,
	KindOrderPlaced,
}

// IsValid 判斷是否為已知事件類型
func (k EventKind) IsValid() bool {
	for _, known := range knownEventKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k EventKind) String() string {
	return string(k)
}

// ===========================
// DomainEvent 領域事件
// ===========================

// DomainEvent 領域事件基礎介面
//
// 事件一經建立即不可變；具體事件為值類型，各自攜帶有型別的 payload。
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	Kind() EventKind       // 事件類型
	OccurredOn() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// BaseEvent 事件共用欄位，供具體事件嵌入
type BaseEvent struct {
	eventID     string
	aggregateID string
	occurredOn  time.Time
}

// NewBaseEvent 建立事件共用欄位，發生時間為當下
func NewBaseEvent(aggregateID string) BaseEvent {
	return BaseEvent{
		eventID:     uuid.NewString(),
		aggregateID: aggregateID,
		occurredOn:  time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e BaseEvent) EventID() string {
	return e.eventID
}

// OccurredOn 實現 DomainEvent 介面
func (e BaseEvent) OccurredOn() time.Time {
	return e.occurredOn
}

// AggregateID 實現 DomainEvent 介面
func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}

// ===========================
// EventHandler 事件處理器
// ===========================

// EventHandler 事件處理器介面
//
// 處理器只接收事件本身，不持有聚合根的引用。
// 需要 Unregister 的處理器必須是可比較的類型（例如指標）。
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
}

// HandlerFunc 將普通函數適配為 EventHandler
//
// 注意：函數值不可比較，以 HandlerFunc 註冊的處理器無法單獨 Unregister。
type HandlerFunc func(ctx context.Context, event DomainEvent) error

// Handle 實現 EventHandler 介面
func (f HandlerFunc) Handle(ctx context.Context, event DomainEvent) error {
	return f(ctx, event)
}

// TypedHandler 接收具體事件類型的處理器
//
// 收到其他類型的事件時直接忽略（返回 nil）。
type TypedHandler[E DomainEvent] struct {
	fn func(ctx context.Context, event E) error
}

// NewTypedHandler 建立有型別的處理器
func NewTypedHandler[E DomainEvent](fn func(ctx context.Context, event E) error) *TypedHandler[E] {
	return &TypedHandler[E]{fn: fn}
}

// Handle 實現 EventHandler 介面
func (h *TypedHandler[E]) Handle(ctx context.Context, event DomainEvent) error {
	typed, ok := event.(E)
	if !ok {
		return nil
	}
	return h.fn(ctx, typed)
}

// ===========================
// 發布與註冊介面
// ===========================

// EventSource 持有待發布事件的聚合根
type EventSource interface {
	Events() []DomainEvent
	ClearEvents()
}

// EventPublisher 事件發布器介面
// 設計原則：介面定義在 Domain Layer（使用者），由 Infrastructure 實作
type EventPublisher interface {
	// Publish 依序發布聚合根的待發布事件，全部成功後清空其事件列表
	Publish(ctx context.Context, source EventSource) error
	// PublishEvents 依序發布已取出的事件
	PublishEvents(ctx context.Context, events ...DomainEvent) error
}

// EventRegistry 事件處理器註冊介面
type EventRegistry interface {
	Register(kind EventKind, handler EventHandler) error
	Unregister(kind EventKind, handler EventHandler)
	UnregisterAll()
}
