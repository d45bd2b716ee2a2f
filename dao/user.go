package dao

import (
	"Couture/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否被其他用户占用
func (u *Users) IsEmailExist(ctx context.Context, email string, excludeID uint64) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ? AND id <> ?", email, excludeID)
}

// HasRole 按 (id, role) 查询用户是否存在, 每次鉴权都会调用
func (u *Users) HasRole(ctx context.Context, id uint64, role string) (bool, error) {
	return u.Repo.IsExist(ctx, "id = ? AND role = ?", id, role)
}

func (u *Users) AdminExists(ctx context.Context) (bool, error) {
	return u.Repo.IsExist(ctx, "role = ?", models.RoleAdmin)
}

func (u *Users) CountByRole(ctx context.Context, role string) (int64, error) {
	return u.Repo.Count(ctx, "role = ?", role)
}

// List 分页查询用户
func (u *Users) List(ctx context.Context, role string, limit, offset int) ([]*models.User, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if role != "" {
			db = db.Where("role = ?", role)
		}
		return db
	}
	var total int64
	if err := u.Conn(ctx).Model(&models.User{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items, err := u.FindAll(ctx, scope, func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Limit(limit).Offset(offset)
	})
	return items, total, err
}

type Address struct {
	Repo[models.UserAddress]
}

func NewAddress(db *gorm.DB) *Address {
	return &Address{
		Repo: NewRepo[models.UserAddress](db),
	}
}

func (a *Address) ListByUser(ctx context.Context, userID uint64) ([]*models.UserAddress, error) {
	return a.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("is_default DESC, id ASC")
	})
}

// FindForUser 地址必须属于该用户
func (a *Address) FindForUser(ctx context.Context, userID, addressID uint64) (*models.UserAddress, error) {
	addr, err := a.FindByWhere(ctx, "id = ? AND user_id = ?", addressID, userID)
	return addr, NotFound(err, "Address not found")
}

// ClearDefault 取消该用户除 keepID 外所有地址的默认标记
func (a *Address) ClearDefault(ctx context.Context, userID, keepID uint64) error {
	return a.Conn(ctx).Model(&models.UserAddress{}).
		Where("user_id = ? AND id <> ? AND is_default = ?", userID, keepID, true).
		Update("is_default", false).Error
}
