package customer

import (
	"testing"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ===========================
// CustomerRepository Integration Tests
// ===========================

// setupTestDB 創建測試資料庫（in-memory SQLite，單一連線）
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&CustomerGORM{}), "failed to migrate database schema")
	return db
}

func newCustomer(t *testing.T, id, name string) *customer.Customer {
	t.Helper()
	customerID, err := customer.CustomerIDFromString(id)
	require.NoError(t, err)
	c, err := customer.NewCustomer(customerID, name)
	require.NoError(t, err)
	return c
}

func TestCustomerRepository_Create_ThenFind(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	c := newCustomer(t, "123", "Customer 1")
	address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	require.NoError(t, err)
	require.NoError(t, c.ChangeAddress(address))

	// Act
	require.NoError(t, repo.Create(nil, c))
	found, err := repo.Find(nil, c.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "123", found.ID().String())
	assert.Equal(t, "Customer 1", found.Name())
	assert.True(t, found.Address().Equals(address))
	assert.False(t, found.IsActive())
	assert.Equal(t, 0, found.RewardPoints())
	assert.Empty(t, found.Events(), "reconstructed aggregate has no pending events")
}

func TestCustomerRepository_Create_WithoutAddress(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	c := newCustomer(t, "123", "Customer 1")

	require.NoError(t, repo.Create(nil, c))

	found, err := repo.Find(nil, c.ID())
	require.NoError(t, err)
	assert.True(t, found.Address().IsZero())
}

func TestCustomerRepository_Create_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)

	require.NoError(t, repo.Create(nil, newCustomer(t, "123", "Customer 1")))
	err := repo.Create(nil, newCustomer(t, "123", "Customer 2"))

	assert.ErrorIs(t, err, customer.ErrCustomerAlreadyExists)
}

func TestCustomerRepository_Update(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	c := newCustomer(t, "123", "Customer 1")
	require.NoError(t, repo.Create(nil, c))

	address, err := customer.NewAddress("Street 2", 2, "Zipcode 2", "City 2")
	require.NoError(t, err)
	require.NoError(t, c.ChangeName("Customer 2"))
	require.NoError(t, c.ChangeAddress(address))
	require.NoError(t, c.Activate())
	require.NoError(t, c.AddRewardPoints(10))

	// Act
	require.NoError(t, repo.Update(nil, c))

	// Assert
	found, err := repo.Find(nil, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Customer 2", found.Name())
	assert.True(t, found.Address().Equals(address))
	assert.True(t, found.IsActive())
	assert.Equal(t, 10, found.RewardPoints())
}

func TestCustomerRepository_Update_WritesZeroValues(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	c := newCustomer(t, "123", "Customer 1")
	address, _ := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	require.NoError(t, c.ChangeAddress(address))
	require.NoError(t, c.Activate())
	require.NoError(t, repo.Create(nil, c))

	c.Deactivate()
	require.NoError(t, repo.Update(nil, c))

	found, err := repo.Find(nil, c.ID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())
}

func TestCustomerRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)

	err := repo.Update(nil, newCustomer(t, "404", "Ghost"))

	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestCustomerRepository_Find_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)

	id, _ := customer.CustomerIDFromString("lalala")
	_, err := repo.Find(nil, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	assert.Contains(t, err.Error(), "customer not found")
}

func TestCustomerRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)

	empty, err := repo.FindAll(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Create(nil, newCustomer(t, "123", "Customer 1")))
	require.NoError(t, repo.Create(nil, newCustomer(t, "456", "Customer 2")))

	all, err := repo.FindAll(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids := []string{all[0].ID().String(), all[1].ID().String()}
	assert.ElementsMatch(t, []string{"123", "456"}, ids)
}
