package types

import "Couture/models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// CreateUserRequest 注册 / 初始化管理员共用
type CreateUserRequest struct {
	FirstName   string `json:"firstName" binding:"max=64"`
	LastName    string `json:"lastName" binding:"max=64"`
	Description string `json:"description"`
	Phone       string `json:"phone" binding:"max=32"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	Role        *string `json:"role"` // 仅管理员可修改
}

type UserView struct {
	models.User
	ReferenceNumber string `json:"referenceNumber"`
}

type UserFilter struct {
	Role  string `form:"role"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type UserList struct {
	Users    []*UserView `json:"users"`
	Metadata Pagination  `json:"metadata"`
}

type AddressRequest struct {
	Type       string `json:"type"` // shipping / billing
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country" binding:"required"`
	IsDefault  bool   `json:"isDefault"`
}
