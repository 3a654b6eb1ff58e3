package product

import (
	"testing"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&ProductGORM{}))
	return db
}

func newProduct(t *testing.T, id, name string, price string) *product.Product {
	t.Helper()
	productID, err := product.ProductIDFromString(id)
	require.NoError(t, err)
	p, err := product.NewProduct(productID, name, decimal.RequireFromString(price))
	require.NoError(t, err)
	return p
}

func TestProductRepository_Create_ThenFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	p := newProduct(t, "123", "Product 1", "100.50")

	require.NoError(t, repo.Create(nil, p))

	found, err := repo.Find(nil, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Product 1", found.Name())
	assert.True(t, found.Price().Equal(decimal.RequireFromString("100.50")), "got %s", found.Price())
}

func TestProductRepository_Create_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	require.NoError(t, repo.Create(nil, newProduct(t, "123", "Product 1", "10")))
	err := repo.Create(nil, newProduct(t, "123", "Product 2", "20"))

	assert.ErrorIs(t, err, product.ErrProductAlreadyExists)
}

func TestProductRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	p := newProduct(t, "123", "Product 1", "100")
	require.NoError(t, repo.Create(nil, p))

	require.NoError(t, p.ChangeName("Product 1 changed"))
	require.NoError(t, p.ChangePrice(decimal.NewFromInt(200)))
	require.NoError(t, repo.Update(nil, p))

	found, err := repo.Find(nil, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Product 1 changed", found.Name())
	assert.True(t, found.Price().Equal(decimal.NewFromInt(200)))
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	err := repo.Update(nil, newProduct(t, "404", "Ghost", "1"))

	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestProductRepository_Find_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	id, _ := product.ProductIDFromString("missing")
	_, err := repo.Find(nil, id)

	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestProductRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	require.NoError(t, repo.Create(nil, newProduct(t, "1", "Product 1", "10")))
	require.NoError(t, repo.Create(nil, newProduct(t, "2", "Product 2", "20")))

	all, err := repo.FindAll(nil)

	require.NoError(t, err)
	require.Len(t, all, 2)
	names := []string{all[0].Name(), all[1].Name()}
	assert.ElementsMatch(t, []string{"Product 1", "Product 2"}, names)
}
