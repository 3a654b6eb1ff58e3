package cli

import (
	"fmt"

	appcheckout "github.com/jackyeh168/ddd_checkout/src/internal/application/checkout"
	appcustomer "github.com/jackyeh168/ddd_checkout/src/internal/application/customer"
	appproduct "github.com/jackyeh168/ddd_checkout/src/internal/application/product"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/checkout"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/config"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/logger"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/messaging"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/notification"
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence"
	customerpersistence "github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/customer"
	orderpersistence "github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/order"
	productpersistence "github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/persistence/product"
	"gorm.io/gorm"
)

// app 組裝好的依賴（每次命令執行建立一次）
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *gorm.DB
	mediator *messaging.Mediator

	customers *appcustomer.CustomerService
	products  *appproduct.ProductService
	checkout  *appcheckout.CheckoutService
}

func newApp(cfg *config.Config) (*app, error) {
	log, err := logger.New(cfg.LoggerMode())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := persistence.Open(cfg)
	if err != nil {
		return nil, err
	}

	mediator := messaging.NewMediator(log)
	if err := notification.RegisterDefaults(mediator, log); err != nil {
		_ = persistence.Close(db)
		return nil, err
	}

	rewards, err := checkout.NewRewardPointsService(checkout.DefaultRewardRate)
	if err != nil {
		_ = persistence.Close(db)
		return nil, err
	}

	txManager := persistence.NewGORMTransactionManager(db)
	customerRepo := customerpersistence.NewCustomerRepository(db)
	productRepo := productpersistence.NewProductRepository(db)
	orderRepo := orderpersistence.NewOrderRepository(db)

	return &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		mediator:  mediator,
		customers: appcustomer.NewCustomerService(customerRepo, txManager, mediator),
		products:  appproduct.NewProductService(productRepo, txManager, mediator),
		checkout: appcheckout.NewCheckoutService(
			customerRepo,
			productRepo,
			orderRepo,
			txManager,
			mediator,
			checkout.NewOrderService(rewards),
		),
	}, nil
}

func (a *app) Close() {
	if err := persistence.Close(a.db); err != nil {
		a.log.Warn("closing database", "error", err)
	}
	a.log.Sync()
}
