package customer

import (
	"context"
	"fmt"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
)

// ===========================
// CustomerService
// ===========================

// CreateCustomerCommand 建立客戶的命令
type CreateCustomerCommand struct {
	Name   string
	Street string
	Number int
	Zip    string
	City   string
}

// CustomerService 客戶應用服務
//
// 職責：
// 1. 透過 Domain 工廠建立 / 修改聚合
// 2. 在事務中保存到 Repository
// 3. 事務提交後發布聚合累積的領域事件
//
// 事件只在保存成功後發布；發布失敗時資料已提交，錯誤原樣（包裝後）返回。
type CustomerService struct {
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
	publisher    shared.EventPublisher
}

// NewCustomerService 創建客戶應用服務
func NewCustomerService(
	repo customer.CustomerRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *CustomerService {
	return &CustomerService{
		customerRepo: repo,
		txManager:    txManager,
		publisher:    publisher,
	}
}

// Create 建立客戶並設定地址
//
// 執行流程：
// 1. CreateCustomer 工廠（CustomerCreated 事件）
// 2. ChangeAddress（CustomerAddressChanged 事件）
// 3. 在事務中保存
// 4. 發布事件（依序：CustomerCreated、CustomerAddressChanged）
//
// 錯誤處理：
// - 名稱 / 地址驗證失敗：保存前返回，不發布任何事件
// - ErrCustomerAlreadyExists 等 Repository 錯誤：包裝後返回，不發布事件
// - 處理器錯誤：包裝後返回
func (s *CustomerService) Create(ctx context.Context, name string, address customer.Address) (*customer.Customer, error) {
	c, err := customer.CreateCustomer(customer.NewCustomerID(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if err := c.ChangeAddress(address); err != nil {
		return nil, fmt.Errorf("failed to set customer address: %w", err)
	}

	err = s.txManager.InTransaction(func(tx shared.TransactionContext) error {
		if err := s.customerRepo.Create(tx, c); err != nil {
			return fmt.Errorf("failed to save customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to publish customer events: %w", err)
	}
	return c, nil
}

// Register 以命令建立客戶（先建立 Address 值對象，再呼叫 Create）
func (s *CustomerService) Register(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	address, err := customer.NewAddress(cmd.Street, cmd.Number, cmd.Zip, cmd.City)
	if err != nil {
		return nil, fmt.Errorf("failed to parse address: %w", err)
	}
	return s.Create(ctx, cmd.Name, address)
}

// ChangeAddress 變更既有客戶的地址並發布 CustomerAddressChanged
func (s *CustomerService) ChangeAddress(ctx context.Context, id string, address customer.Address) (*customer.Customer, error) {
	customerID, err := customer.CustomerIDFromString(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	var c *customer.Customer
	err = s.txManager.InTransaction(func(tx shared.TransactionContext) error {
		found, err := s.customerRepo.Find(tx, customerID)
		if err != nil {
			return fmt.Errorf("failed to find customer: %w", err)
		}
		if err := found.ChangeAddress(address); err != nil {
			return err
		}
		if err := s.customerRepo.Update(tx, found); err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}
		c = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to publish customer events: %w", err)
	}
	return c, nil
}

// Activate 啟用客戶（必須已設定地址）
func (s *CustomerService) Activate(id string) (*customer.Customer, error) {
	customerID, err := customer.CustomerIDFromString(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	var c *customer.Customer
	err = s.txManager.InTransaction(func(tx shared.TransactionContext) error {
		found, err := s.customerRepo.Find(tx, customerID)
		if err != nil {
			return fmt.Errorf("failed to find customer: %w", err)
		}
		if err := found.Activate(); err != nil {
			return err
		}
		if err := s.customerRepo.Update(tx, found); err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}
		c = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Find 根據 ID 查找客戶
func (s *CustomerService) Find(id string) (*customer.Customer, error) {
	customerID, err := customer.CustomerIDFromString(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}
	c, err := s.customerRepo.Find(nil, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return c, nil
}

// List 返回所有客戶
func (s *CustomerService) List() ([]*customer.Customer, error) {
	customers, err := s.customerRepo.FindAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
