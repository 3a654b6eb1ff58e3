package customer

import (
	"context"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
)

// ===========================
// Mock Repository
// ===========================

type MockCustomerRepository struct {
	customers       map[string]*customer.Customer
	CreateCallCount int
	UpdateCallCount int
	CreateError     error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*customer.Customer),
	}
}

func (m *MockCustomerRepository) Create(ctx shared.TransactionContext, c *customer.Customer) error {
	m.CreateCallCount++
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.customers[c.ID().String()]; exists {
		return customer.ErrCustomerAlreadyExists
	}
	m.customers[c.ID().String()] = c
	return nil
}

func (m *MockCustomerRepository) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	m.UpdateCallCount++
	if _, exists := m.customers[c.ID().String()]; !exists {
		return customer.ErrCustomerNotFound
	}
	m.customers[c.ID().String()] = c
	return nil
}

func (m *MockCustomerRepository) Find(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	if c, exists := m.customers[id.String()]; exists {
		return c, nil
	}
	return nil, customer.ErrCustomerNotFound
}

func (m *MockCustomerRepository) FindAll(ctx shared.TransactionContext) ([]*customer.Customer, error) {
	all := make([]*customer.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		all = append(all, c)
	}
	return all, nil
}

// ===========================
// Mock TransactionManager
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

// ===========================
// Mock EventPublisher
// ===========================

type MockEventPublisher struct {
	Published    []shared.DomainEvent
	PublishError error
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(ctx context.Context, source shared.EventSource) error {
	if err := m.PublishEvents(ctx, source.Events()...); err != nil {
		return err
	}
	source.ClearEvents()
	return nil
}

func (m *MockEventPublisher) PublishEvents(ctx context.Context, events ...shared.DomainEvent) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.Published = append(m.Published, events...)
	return nil
}

func (m *MockEventPublisher) Kinds() []shared.EventKind {
	kinds := make([]shared.EventKind, 0, len(m.Published))
	for _, e := range m.Published {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}
