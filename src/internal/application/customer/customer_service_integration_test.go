package customer

import (
	"context"
	"testing"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/logger"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/messaging"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/notification"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence"
	customerpersistence "github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// 完整流程：SQLite + Mediator + 日誌處理器
func TestCustomerService_Create_Integration_RunsAllHandlers(t *testing.T) {
	// Arrange
	db := persistence.NewTestDB(t)
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromCore(core)
	mediator := messaging.NewMediator(log)
	require.NoError(t, notification.RegisterDefaults(mediator, log))

	repo := customerpersistence.NewCustomerRepository(db)
	service := NewCustomerService(repo, persistence.NewGORMTransactionManager(db), mediator)

	address, err := customer.NewAddress("Rua", 5, "1234", "Fortaleza")
	require.NoError(t, err)

	// Act
	c, err := service.Create(context.Background(), "John", address)

	// Assert
	require.NoError(t, err)

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{
		"This is the first log of event: CustomerCreated",
		"This is the second log of event: CustomerCreated",
		"Customer address: " + c.ID().String() + ", John changed to: Rua, 5, 1234 Fortaleza.",
	}, messages)

	stored, err := repo.Find(nil, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "John", stored.Name())
	assert.True(t, stored.Address().Equals(address))
	assert.Empty(t, c.Events())
}
