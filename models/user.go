package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FirstName   string    `gorm:"size:64;column:first_name" json:"firstName"`
	LastName    string    `gorm:"size:64;column:last_name" json:"lastName"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	Password    string    `gorm:"size:255;not null;column:password" json:"-"` // bcrypt
	Role        string    `gorm:"size:16;not null;default:customer;index:idx_user_role;column:role" json:"role"`
	Phone       string    `gorm:"size:32;column:phone" json:"phone"`
	Email       string    `gorm:"size:255;not null;uniqueIndex:idx_user_email;column:email" json:"email"`
	AddressID   *uint64   `gorm:"column:address_id" json:"addressId"` // 默认地址
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

type UserAddress struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID     uint64    `gorm:"not null;index:idx_address_user;column:user_id" json:"userId"`
	Type       string    `gorm:"size:16;not null;default:shipping;column:type" json:"type"`
	Street     string    `gorm:"size:255;not null;column:street" json:"street"`
	City       string    `gorm:"size:100;not null;column:city" json:"city"`
	State      string    `gorm:"size:100;column:state" json:"state"`
	PostalCode string    `gorm:"size:20;column:postal_code" json:"postalCode"`
	Country    string    `gorm:"size:64;not null;column:country" json:"country"`
	IsDefault  bool      `gorm:"not null;default:false;column:is_default" json:"isDefault"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (UserAddress) TableName() string {
	return "user_addresses"
}
