package shared

// AggregateRoot 聚合根事件緩衝區，供各聚合嵌入
//
// 不變條件：
// - 事件列表只透過 AddEvent 增長，直到明確清空
// - 聚合必須在改變自身狀態的同一個方法中 AddEvent，
//   保證事件不會早於它描述的狀態
//
// 零值可直接使用。
type AggregateRoot struct {
	events []DomainEvent
}

// AddEvent 添加領域事件到待發布列表
func (a *AggregateRoot) AddEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// Events 返回待發布事件（依加入順序），不清空列表
//
// 返回副本，外部無法修改緩衝區。
func (a *AggregateRoot) Events() []DomainEvent {
	events := make([]DomainEvent, len(a.events))
	copy(events, a.events)
	return events
}

// ClearEvents 清空待發布事件（重複調用是安全的）
func (a *AggregateRoot) ClearEvents() {
	a.events = nil
}

// PullEvents 獲取所有待發布事件並清空列表
func (a *AggregateRoot) PullEvents() []DomainEvent {
	events := a.events
	a.events = nil
	if events == nil {
		return []DomainEvent{}
	}
	return events
}
