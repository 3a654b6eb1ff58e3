package messaging

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/logger"
)

var (
	// ErrUnknownEventKind 註冊了不在 shared.EventKind 封閉集合中的類型
	ErrUnknownEventKind = errors.New("unknown event kind")
	// ErrNilHandler 註冊了 nil 處理器
	ErrNilHandler = errors.New("event handler is nil")
	// ErrHandlerFailed 處理器返回錯誤；原始錯誤保留在錯誤鏈中
	ErrHandlerFailed = errors.New("event handler failed")
)

var (
	_ shared.EventPublisher = (*Mediator)(nil)
	_ shared.EventRegistry  = (*Mediator)(nil)
)

// Mediator 行程內事件分派器
//
// 保證：
// - 同一次 Publish 中，事件依聚合記錄順序處理
// - 同一事件的處理器依註冊順序執行，前一個完成後才執行下一個
// - 第一個處理器錯誤即中止本次 Publish，不重試
//
// 註冊表以 RWMutex 保護；處理器在鎖外執行，使用當下註冊表的快照，
// 因此處理器內部可以安全地 Register / Unregister。
type Mediator struct {
	mu       sync.RWMutex
	handlers map[shared.EventKind][]shared.EventHandler
	log      *logger.Logger
}

// NewMediator 建立 Mediator；log 為 nil 時不輸出日誌
func NewMediator(log *logger.Logger) *Mediator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Mediator{
		handlers: make(map[shared.EventKind][]shared.EventHandler),
		log:      log.With("component", "mediator"),
	}
}

// Register 將處理器加到 kind 的列表尾端
//
// 不去重：同一處理器註冊兩次會被執行兩次。
func (m *Mediator) Register(kind shared.EventKind, handler shared.EventHandler) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventKind, kind)
	}
	if handler == nil {
		return ErrNilHandler
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[kind] = append(m.handlers[kind], handler)
	return nil
}

// Unregister 移除 kind 列表中第一個相同的處理器；找不到時不做任何事
func (m *Mediator) Unregister(kind shared.EventKind, handler shared.EventHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.handlers[kind]
	for i, registered := range list {
		if sameHandler(registered, handler) {
			updated := make([]shared.EventHandler, 0, len(list)-1)
			updated = append(updated, list[:i]...)
			updated = append(updated, list[i+1:]...)
			if len(updated) == 0 {
				delete(m.handlers, kind)
			} else {
				m.handlers[kind] = updated
			}
			return
		}
	}
}

// UnregisterAll 清空整個註冊表
func (m *Mediator) UnregisterAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = make(map[shared.EventKind][]shared.EventHandler)
}

// HandlerCount 返回 kind 目前的處理器數量
func (m *Mediator) HandlerCount(kind shared.EventKind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.handlers[kind])
}

// Publish 依序發布聚合根的待發布事件
//
// 全部處理器成功後清空聚合根的事件列表，避免重複發布；
// 任一處理器失敗時保留事件列表並返回錯誤。
func (m *Mediator) Publish(ctx context.Context, source shared.EventSource) error {
	if err := m.PublishEvents(ctx, source.Events()...); err != nil {
		return err
	}
	source.ClearEvents()
	return nil
}

// PublishEvents 依序發布事件；沒有處理器的事件直接略過
func (m *Mediator) PublishEvents(ctx context.Context, events ...shared.DomainEvent) error {
	for _, event := range events {
		if err := m.dispatch(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mediator) dispatch(ctx context.Context, event shared.DomainEvent) error {
	handlers := m.snapshot(event.Kind())
	if len(handlers) == 0 {
		m.log.Debug("no handlers registered", "kind", event.Kind(), "event_id", event.EventID())
		return nil
	}

	m.log.Debug("dispatching event",
		"kind", event.Kind(),
		"event_id", event.EventID(),
		"aggregate_id", event.AggregateID(),
		"handlers", len(handlers),
	)

	for i, handler := range handlers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := handler.Handle(ctx, event); err != nil {
			return fmt.Errorf("%w: kind=%s event_id=%s handler=%d: %w",
				ErrHandlerFailed, event.Kind(), event.EventID(), i, err)
		}
	}
	return nil
}

func (m *Mediator) snapshot(kind shared.EventKind) []shared.EventHandler {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.handlers[kind]
	if len(list) == 0 {
		return nil
	}
	handlers := make([]shared.EventHandler, len(list))
	copy(handlers, list)
	return handlers
}

// sameHandler 比較處理器身份；不可比較的值（例如函數）永遠不相等
//
// 以值判斷可比較性：結構體型別本身可比較，但介面欄位可能裝著函數。
func sameHandler(a, b shared.EventHandler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
