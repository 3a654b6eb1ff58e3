package product

import (
	"context"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
)

type MockProductRepository struct {
	products        map[string]*product.Product
	order           []string
	UpdateCallCount int
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[string]*product.Product)}
}

func (m *MockProductRepository) Create(ctx shared.TransactionContext, p *product.Product) error {
	if _, exists := m.products[p.ID().String()]; exists {
		return product.ErrProductAlreadyExists
	}
	m.products[p.ID().String()] = p
	m.order = append(m.order, p.ID().String())
	return nil
}

func (m *MockProductRepository) Update(ctx shared.TransactionContext, p *product.Product) error {
	m.UpdateCallCount++
	if _, exists := m.products[p.ID().String()]; !exists {
		return product.ErrProductNotFound
	}
	m.products[p.ID().String()] = p
	return nil
}

func (m *MockProductRepository) Find(ctx shared.TransactionContext, id product.ProductID) (*product.Product, error) {
	if p, exists := m.products[id.String()]; exists {
		return p, nil
	}
	return nil, product.ErrProductNotFound
}

func (m *MockProductRepository) FindAll(ctx shared.TransactionContext) ([]*product.Product, error) {
	all := make([]*product.Product, 0, len(m.order))
	for _, id := range m.order {
		all = append(all, m.products[id])
	}
	return all, nil
}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

type MockEventPublisher struct {
	Published []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(ctx context.Context, source shared.EventSource) error {
	m.Published = append(m.Published, source.Events()...)
	source.ClearEvents()
	return nil
}

func (m *MockEventPublisher) PublishEvents(ctx context.Context, events ...shared.DomainEvent) error {
	m.Published = append(m.Published, events...)
	return nil
}
