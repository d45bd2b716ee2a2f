package service

import (
	"Couture/dao"
	"Couture/models"
	"Couture/pkg/encrypt"
	"Couture/pkg/errorx"
	"Couture/pkg/utils"
	"Couture/types"
	"context"
	"strings"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	List(ctx context.Context, filter *types.UserFilter) (*types.UserList, error)
	Get(ctx context.Context, id uint64) (*types.UserView, error)
	Register(ctx context.Context, req *types.CreateUserRequest) (*types.UserView, error)
	Update(ctx context.Context, id uint64, req *types.UpdateUserRequest, byAdmin bool) (*types.UserView, error)
	Addresses(ctx context.Context, userID uint64) ([]*models.UserAddress, error)
	AddAddress(ctx context.Context, userID uint64, req *types.AddressRequest) (*models.UserAddress, error)
}

type UserService struct {
	Db          *gorm.DB
	UsersRepo   *dao.Users
	AddressRepo *dao.Address
	RefRepo     *dao.Reference
	RefGen      IReferenceGenerator
}

// createUser 写入用户与参考编号, 调用方负责事务
func createUser(ctx context.Context, users *dao.Users, refs *dao.Reference, gen IReferenceGenerator, req *types.CreateUserRequest, role string) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exist, err := users.IsEmailExist(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, errorx.Conflicts("Email already registered")
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Description: req.Description,
		Phone:       strings.TrimSpace(req.Phone),
		Email:       email,
		Password:    hashed,
		Role:        role,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, dao.Duplicate(err, "Email already registered")
	}

	number, err := gen.Next(EntityUser, user.ID)
	if err != nil {
		return nil, err
	}
	if err := refs.SaveUser(ctx, user.ID, number); err != nil {
		return nil, err
	}
	return user, nil
}

func userView(ctx context.Context, refs *dao.Reference, users ...*models.User) ([]*types.UserView, error) {
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	numbers, err := refs.Users(ctx, ids...)
	if err != nil {
		return nil, err
	}
	views := make([]*types.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, &types.UserView{User: *u, ReferenceNumber: numbers[u.ID]})
	}
	return views, nil
}

func (s *UserService) List(ctx context.Context, filter *types.UserFilter) (*types.UserList, error) {
	page, limit, offset := utils.Paginate(filter.Page, pageSize(filter.Limit), maxPageSize)
	users, total, err := s.UsersRepo.List(ctx, filter.Role, limit, offset)
	if err != nil {
		return nil, err
	}
	views, err := userView(ctx, s.RefRepo, users...)
	if err != nil {
		return nil, err
	}
	return &types.UserList{Users: views, Metadata: types.NewPagination(total, page, limit)}, nil
}

func (s *UserService) Get(ctx context.Context, id uint64) (*types.UserView, error) {
	user, err := s.UsersRepo.FindById(ctx, id)
	if err != nil {
		return nil, dao.NotFound(err, "User not found")
	}
	views, err := userView(ctx, s.RefRepo, user)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Register 公开注册, 角色固定为 customer
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.UserView, error) {
	var user *models.User
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		var err error
		user, err = createUser(ctx, s.UsersRepo, s.RefRepo, s.RefGen, req, models.RoleCustomer)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, user.ID)
}

// Update 只修改请求中出现的字段; 角色仅管理员可改
func (s *UserService) Update(ctx context.Context, id uint64, req *types.UpdateUserRequest, byAdmin bool) (*types.UserView, error) {
	if _, err := s.UsersRepo.FindById(ctx, id); err != nil {
		return nil, dao.NotFound(err, "User not found")
	}

	data := make(map[string]any)
	if req.FirstName != nil {
		data["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		data["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.Phone != nil {
		data["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		exist, err := s.UsersRepo.IsEmailExist(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if exist {
			return nil, errorx.Conflicts("Email already registered")
		}
		data["email"] = email
	}
	if req.Password != nil {
		hashed, err := encrypt.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		data["password"] = hashed
	}
	if req.Role != nil {
		if !byAdmin {
			return nil, errorx.New(errorx.Forbidden, "Only admins can change roles")
		}
		if *req.Role != models.RoleAdmin && *req.Role != models.RoleCustomer {
			return nil, errorx.Invalid("Invalid role")
		}
		data["role"] = *req.Role
	}

	if len(data) > 0 {
		if _, err := s.UsersRepo.UpdateById(ctx, id, data); err != nil {
			return nil, dao.Duplicate(err, "Email already registered")
		}
	}
	return s.Get(ctx, id)
}

func (s *UserService) Addresses(ctx context.Context, userID uint64) ([]*models.UserAddress, error) {
	if _, err := s.UsersRepo.FindById(ctx, userID); err != nil {
		return nil, dao.NotFound(err, "User not found")
	}
	return s.AddressRepo.ListByUser(ctx, userID)
}

// AddAddress 第一个地址或 isDefault 的地址成为默认地址, 并同步 users.address_id
func (s *UserService) AddAddress(ctx context.Context, userID uint64, req *types.AddressRequest) (*models.UserAddress, error) {
	addrType := strings.ToLower(strings.TrimSpace(req.Type))
	if addrType == "" {
		addrType = "shipping"
	}
	if addrType != "shipping" && addrType != "billing" {
		return nil, errorx.Invalid("Address type must be shipping or billing")
	}

	var addr *models.UserAddress
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		if _, err := s.UsersRepo.FindById(ctx, userID); err != nil {
			return dao.NotFound(err, "User not found")
		}
		count, err := s.AddressRepo.Count(ctx, "user_id = ?", userID)
		if err != nil {
			return err
		}

		addr = &models.UserAddress{
			UserID:     userID,
			Type:       addrType,
			Street:     strings.TrimSpace(req.Street),
			City:       strings.TrimSpace(req.City),
			State:      strings.TrimSpace(req.State),
			PostalCode: strings.TrimSpace(req.PostalCode),
			Country:    strings.TrimSpace(req.Country),
			IsDefault:  req.IsDefault || count == 0,
		}
		if err := s.AddressRepo.Create(ctx, addr); err != nil {
			return err
		}
		if !addr.IsDefault {
			return nil
		}
		if err := s.AddressRepo.ClearDefault(ctx, userID, addr.ID); err != nil {
			return err
		}
		_, err = s.UsersRepo.UpdateById(ctx, userID, map[string]any{"address_id": addr.ID})
		return err
	})
	if err != nil {
		return nil, err
	}
	return addr, nil
}
