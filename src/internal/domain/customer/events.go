package customer

import "github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"

// ===========================
// CustomerCreated 領域事件
// ===========================

// CustomerCreatedData 客戶建立事件的 payload
type CustomerCreatedData struct {
	Name string
}

// CustomerCreated 客戶已建立事件
type CustomerCreated struct {
	shared.BaseEvent
	data CustomerCreatedData
}

// NewCustomerCreated 創建客戶建立事件
func NewCustomerCreated(id CustomerID, name string) CustomerCreated {
	return CustomerCreated{
		BaseEvent: shared.NewBaseEvent(id.String()),
		data:      CustomerCreatedData{Name: name},
	}
}

// Kind 實現 DomainEvent 介面
func (CustomerCreated) Kind() shared.EventKind {
	return shared.KindCustomerCreated
}

// Data 獲取事件 payload
func (e CustomerCreated) Data() CustomerCreatedData {
	return e.data
}

// ===========================
// CustomerAddressChanged 領域事件
// ===========================

// CustomerAddressChangedData 地址變更事件的 payload
type CustomerAddressChangedData struct {
	CustomerID CustomerID
	Name       string
	Address    Address
}

// CustomerAddressChanged 客戶地址已變更事件
type CustomerAddressChanged struct {
	shared.BaseEvent
	data CustomerAddressChangedData
}

// NewCustomerAddressChanged 創建地址變更事件
func NewCustomerAddressChanged(id CustomerID, name string, address Address) CustomerAddressChanged {
	return CustomerAddressChanged{
		BaseEvent: shared.NewBaseEvent(id.String()),
		data: CustomerAddressChangedData{
			CustomerID: id,
			Name:       name,
			Address:    address,
		},
	}
}

// Kind 實現 DomainEvent 介面
func (CustomerAddressChanged) Kind() shared.EventKind {
	return shared.KindCustomerAddressChanged
}

// Data 獲取事件 payload
func (e CustomerAddressChanged) Data() CustomerAddressChangedData {
	return e.data
}
