package product

import (
	"context"
	"fmt"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductService 商品應用服務
type ProductService struct {
	productRepo  product.ProductRepository
	txManager    shared.TransactionManager
	publisher    shared.EventPublisher
	priceService *product.PriceService
}

// NewProductService 創建商品應用服務
func NewProductService(
	repo product.ProductRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:  repo,
		txManager:    txManager,
		publisher:    publisher,
		priceService: product.NewPriceService(),
	}
}

// Create 建立商品
func (s *ProductService) Create(name string, price decimal.Decimal) (*product.Product, error) {
	p, err := product.NewProduct(product.NewProductID(), name, price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	err = s.txManager.InTransaction(func(tx shared.TransactionContext) error {
		if err := s.productRepo.Create(tx, p); err != nil {
			return fmt.Errorf("failed to save product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ChangePrice 變更單一商品價格，保存後發布 ProductPriceChanged
func (s *ProductService) ChangePrice(ctx context.Context, id string, price decimal.Decimal) (*product.Product, error) {
	productID, err := product.ProductIDFromString(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product ID: %w", err)
	}

	var p *product.Product
	err = s.txManager.InTransaction(func(tx shared.TransactionContext) error {
		found, err := s.productRepo.Find(tx, productID)
		if err != nil {
			return fmt.Errorf("failed to find product: %w", err)
		}
		if err := found.ChangePrice(price); err != nil {
			return err
		}
		if err := s.productRepo.Update(tx, found); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		p = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to publish product events: %w", err)
	}
	return p, nil
}

// IncreaseAllPrices 所有商品調價 percentage%（同一事務），保存後逐一發布事件
func (s *ProductService) IncreaseAllPrices(ctx context.Context, percentage decimal.Decimal) ([]*product.Product, error) {
	var products []*product.Product
	err := s.txManager.InTransaction(func(tx shared.TransactionContext) error {
		all, err := s.productRepo.FindAll(tx)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		if err := s.priceService.IncreaseAll(all, percentage); err != nil {
			return err
		}
		for _, p := range all {
			if err := s.productRepo.Update(tx, p); err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}
		}
		products = all
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if err := s.publisher.Publish(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to publish product events: %w", err)
		}
	}
	return products, nil
}

// List 返回所有商品
func (s *ProductService) List() ([]*product.Product, error) {
	products, err := s.productRepo.FindAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
