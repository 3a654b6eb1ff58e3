package product

import (
	"context"
	"testing"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*ProductService, *MockProductRepository, *MockEventPublisher) {
	repo := NewMockProductRepository()
	publisher := &MockEventPublisher{}
	return NewProductService(repo, &MockTransactionManager{}, publisher), repo, publisher
}

func TestProductService_Create(t *testing.T) {
	service, repo, publisher := newService()

	p, err := service.Create("Product 1", decimal.NewFromInt(100))

	require.NoError(t, err)
	assert.Equal(t, "Product 1", p.Name())
	assert.Len(t, repo.products, 1)
	assert.Empty(t, publisher.Published, "creating a product raises no event")
}

func TestProductService_Create_NegativePrice(t *testing.T) {
	service, repo, _ := newService()

	_, err := service.Create("Product 1", decimal.NewFromInt(-1))

	assert.ErrorIs(t, err, product.ErrInvalidPrice)
	assert.Empty(t, repo.products)
}

func TestProductService_ChangePrice_PublishesEvent(t *testing.T) {
	// Arrange
	service, repo, publisher := newService()
	p, err := service.Create("Product 1", decimal.NewFromInt(100))
	require.NoError(t, err)

	// Act
	updated, err := service.ChangePrice(context.Background(), p.ID().String(), decimal.NewFromInt(150))

	// Assert
	require.NoError(t, err)
	assert.True(t, updated.Price().Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 1, repo.UpdateCallCount)
	require.Len(t, publisher.Published, 1)

	changed, ok := publisher.Published[0].(product.ProductPriceChanged)
	require.True(t, ok)
	assert.True(t, changed.Data().OldPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, changed.Data().NewPrice.Equal(decimal.NewFromInt(150)))
}

func TestProductService_ChangePrice_NotFound(t *testing.T) {
	service, _, publisher := newService()

	_, err := service.ChangePrice(context.Background(), "missing", decimal.NewFromInt(1))

	assert.ErrorIs(t, err, product.ErrProductNotFound)
	assert.Empty(t, publisher.Published)
}

func TestProductService_IncreaseAllPrices(t *testing.T) {
	// Arrange
	service, repo, publisher := newService()
	_, err := service.Create("Product 1", decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = service.Create("Product 2", decimal.NewFromInt(20))
	require.NoError(t, err)

	// Act
	products, err := service.IncreaseAllPrices(context.Background(), decimal.NewFromInt(100))

	// Assert
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].Price().Equal(decimal.NewFromInt(20)))
	assert.True(t, products[1].Price().Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 2, repo.UpdateCallCount)
	assert.Len(t, publisher.Published, 2)
}

func TestProductService_IncreaseAllPrices_InvalidPercentage(t *testing.T) {
	service, repo, publisher := newService()
	_, err := service.Create("Product 1", decimal.NewFromInt(10))
	require.NoError(t, err)

	_, err = service.IncreaseAllPrices(context.Background(), decimal.NewFromInt(-100))

	assert.ErrorIs(t, err, product.ErrInvalidPricePercentage)
	assert.Equal(t, 0, repo.UpdateCallCount)
	assert.Empty(t, publisher.Published)
}
