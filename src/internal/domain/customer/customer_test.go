package customer_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) customer.CustomerID {
	t.Helper()
	id, err := customer.CustomerIDFromString(s)
	require.NoError(t, err)
	return id
}

func mustAddress(t *testing.T) customer.Address {
	t.Helper()
	address, err := customer.NewAddress("Rua", 5, "1234", "Fortaleza")
	require.NoError(t, err)
	return address
}

// ===========================
// 建構測試
// ===========================

// Test 1: NewCustomer 成功建立，不發布事件
func TestNewCustomer_Valid_NoEvents(t *testing.T) {
	// Act
	c, err := customer.NewCustomer(mustID(t, "123"), "John")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "123", c.ID().String())
	assert.Equal(t, "John", c.Name())
	assert.False(t, c.IsActive())
	assert.Equal(t, 0, c.RewardPoints())
	assert.True(t, c.Address().IsZero())
	assert.Empty(t, c.Events())
}

// Test 2: 空 ID 返回錯誤
func TestNewCustomer_EmptyID_ReturnsError(t *testing.T) {
	c, err := customer.NewCustomer(customer.CustomerID{}, "John")

	assert.Nil(t, c)
	assert.ErrorIs(t, err, customer.ErrInvalidCustomerID)
}

// Test 3: 空名稱返回錯誤
func TestNewCustomer_EmptyName_ReturnsError(t *testing.T) {
	c, err := customer.NewCustomer(mustID(t, "123"), "  ")

	assert.Nil(t, c)
	assert.ErrorIs(t, err, customer.ErrCustomerNameRequired)
}

// Test 4: CreateCustomer 發布 CustomerCreated 事件
func TestCreateCustomer_AddsCreatedEvent(t *testing.T) {
	c, err := customer.CreateCustomer(mustID(t, "123"), "John")
	require.NoError(t, err)

	events := c.Events()
	require.Len(t, events, 1)
	assert.Equal(t, shared.KindCustomerCreated, events[0].Kind())
	assert.Equal(t, "123", events[0].AggregateID())

	created, ok := events[0].(customer.CustomerCreated)
	require.True(t, ok)
	assert.Equal(t, "John", created.Data().Name)
}

// Test 5: 建立後變更地址產生兩個事件，順序與 payload 正確
func TestCreateCustomer_ThenChangeAddress_ProducesTwoEventsInOrder(t *testing.T) {
	// Arrange
	c, err := customer.CreateCustomer(customer.NewCustomerID(), "John")
	require.NoError(t, err)
	address := mustAddress(t)

	// Act
	require.NoError(t, c.ChangeAddress(address))

	// Assert
	events := c.Events()
	require.Len(t, events, 2)

	created, ok := events[0].(customer.CustomerCreated)
	require.True(t, ok)
	assert.Equal(t, "John", created.Data().Name)

	changed, ok := events[1].(customer.CustomerAddressChanged)
	require.True(t, ok)
	assert.Equal(t, shared.KindCustomerAddressChanged, changed.Kind())
	assert.Equal(t, c.ID(), changed.Data().CustomerID)
	assert.Equal(t, "John", changed.Data().Name)
	assert.Equal(t, address, changed.Data().Address)
	assert.False(t, changed.OccurredOn().Before(created.OccurredOn()))
}

// ===========================
// 命令測試
// ===========================

func TestCustomer_ChangeName(t *testing.T) {
	c, _ := customer.NewCustomer(mustID(t, "1"), "John")

	require.NoError(t, c.ChangeName("Jane"))
	assert.Equal(t, "Jane", c.Name())

	assert.ErrorIs(t, c.ChangeName(""), customer.ErrCustomerNameRequired)
	assert.Equal(t, "Jane", c.Name(), "失敗時名稱保持不變")
}

func TestCustomer_ChangeAddress_ZeroAddress_ReturnsError(t *testing.T) {
	c, _ := customer.NewCustomer(mustID(t, "1"), "John")

	err := c.ChangeAddress(customer.Address{})

	assert.ErrorIs(t, err, customer.ErrInvalidAddress)
	assert.Empty(t, c.Events(), "驗證失敗不應產生事件")
}

func TestCustomer_Activate_WithoutAddress_ReturnsError(t *testing.T) {
	c, _ := customer.NewCustomer(mustID(t, "1"), "John")

	err := c.Activate()

	assert.ErrorIs(t, err, customer.ErrAddressRequired)
	assert.False(t, c.IsActive())
}

func TestCustomer_ActivateAndDeactivate(t *testing.T) {
	c, _ := customer.NewCustomer(mustID(t, "1"), "John")
	require.NoError(t, c.ChangeAddress(mustAddress(t)))

	require.NoError(t, c.Activate())
	assert.True(t, c.IsActive())

	c.Deactivate()
	assert.False(t, c.IsActive())
}

func TestCustomer_AddRewardPoints(t *testing.T) {
	c, _ := customer.NewCustomer(mustID(t, "1"), "John")

	require.NoError(t, c.AddRewardPoints(10))
	require.NoError(t, c.AddRewardPoints(10))
	assert.Equal(t, 20, c.RewardPoints())

	assert.ErrorIs(t, c.AddRewardPoints(-1), customer.ErrInvalidRewardPoints)
	assert.Equal(t, 20, c.RewardPoints())
}

// ===========================
// 重建測試
// ===========================

func TestReconstructCustomer_NoEvents(t *testing.T) {
	original, _ := customer.CreateCustomer(mustID(t, "1"), "John")

	rebuilt, err := customer.ReconstructCustomer(
		original.ID(), original.Name(), mustAddress(t), true, 5,
		original.CreatedAt(), original.UpdatedAt(),
	)

	require.NoError(t, err)
	assert.Empty(t, rebuilt.Events())
	assert.True(t, rebuilt.IsActive())
	assert.Equal(t, 5, rebuilt.RewardPoints())
}

func TestReconstructCustomer_CorruptedData_ReturnsError(t *testing.T) {
	_, err := customer.ReconstructCustomer(mustID(t, "1"), "John", customer.Address{}, true, 0, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, customer.ErrAddressRequired)

	_, err = customer.ReconstructCustomer(mustID(t, "1"), "John", customer.Address{}, false, -1, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, customer.ErrInvalidRewardPoints)
}
