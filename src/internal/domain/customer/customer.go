package customer

import (
	"strings"
	"time"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/shared"
)

// ===========================
// Customer 聚合根
// ===========================

// Customer 客戶聚合根
//
// 不變條件：
// - id、name 不可為空
// - 啟用（active）前必須設定地址
// - rewardPoints >= 0
//
// 狀態變更與事件在同一個方法中完成，事件列表永遠與最新狀態一致。
type Customer struct {
	shared.AggregateRoot

	id           CustomerID
	name         string
	address      Address
	active       bool
	rewardPoints int

	createdAt time.Time
	updatedAt time.Time
}

// NewCustomer 建立客戶（不發布事件）
//
// 錯誤：ErrInvalidCustomerID、ErrCustomerNameRequired
func NewCustomer(id CustomerID, name string) (*Customer, error) {
	now := time.Now()
	c := &Customer{
		id:        id,
		name:      strings.TrimSpace(name),
		createdAt: now,
		updatedAt: now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCustomer 工廠方法：建立客戶並發布 CustomerCreated 事件
func CreateCustomer(id CustomerID, name string) (*Customer, error) {
	c, err := NewCustomer(id, name)
	if err != nil {
		return nil, err
	}
	c.AddEvent(NewCustomerCreated(c.id, c.name))
	return c, nil
}

// ReconstructCustomer 從持久化存儲重建聚合根（僅供 Repository 使用）
//
// 與 CreateCustomer 的區別：不發布事件（事件已發生過），但仍驗證不變條件，
// 防止損壞資料污染領域層。
func ReconstructCustomer(
	id CustomerID,
	name string,
	address Address,
	active bool,
	rewardPoints int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	c := &Customer{
		id:           id,
		name:         name,
		address:      address,
		active:       active,
		rewardPoints: rewardPoints,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if rewardPoints < 0 {
		return nil, ErrInvalidRewardPoints.WithContext("value", rewardPoints)
	}
	if active && address.IsZero() {
		return nil, ErrAddressRequired.WithContext("customer_id", id.String())
	}
	return c, nil
}

func (c *Customer) validate() error {
	if c.id.IsEmpty() {
		return ErrInvalidCustomerID
	}
	if c.name == "" {
		return ErrCustomerNameRequired
	}
	return nil
}

// ===========================
// Getters
// ===========================

func (c *Customer) ID() CustomerID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Address 返回地址；未設定時為零值
func (c *Customer) Address() Address {
	return c.address
}

func (c *Customer) IsActive() bool {
	return c.active
}

func (c *Customer) RewardPoints() int {
	return c.rewardPoints
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// ===========================
// 命令方法
// ===========================

// ChangeName 變更名稱
func (c *Customer) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameRequired
	}
	c.name = name
	c.touch()
	return nil
}

// ChangeAddress 變更地址並發布 CustomerAddressChanged 事件
func (c *Customer) ChangeAddress(address Address) error {
	if address.IsZero() {
		return ErrInvalidAddress.WithContext("reason", "address is empty")
	}
	c.address = address
	c.touch()
	c.AddEvent(NewCustomerAddressChanged(c.id, c.name, address))
	return nil
}

// Activate 啟用客戶
//
// 錯誤：ErrAddressRequired（尚未設定地址）
func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return ErrAddressRequired.WithContext("customer_id", c.id.String())
	}
	c.active = true
	c.touch()
	return nil
}

// Deactivate 停用客戶
func (c *Customer) Deactivate() {
	c.active = false
	c.touch()
}

// AddRewardPoints 累加獎勵積分
func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrInvalidRewardPoints.WithContext("value", points)
	}
	c.rewardPoints += points
	c.touch()
	return nil
}

func (c *Customer) touch() {
	c.updatedAt = time.Now()
}
