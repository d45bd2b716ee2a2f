package service

import (
	"Couture/config"
	"Couture/dao"
	"Couture/models"
	"Couture/pkg/encrypt"
	"Couture/pkg/errorx"
	"Couture/pkg/jwt"
	"Couture/pkg/limiter"
	"Couture/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	Setup(ctx context.Context, req *types.CreateUserRequest) (*types.LoginResponse, error)
	Current(ctx context.Context, userID uint64) (*types.UserView, error)
	IssueToken(user *models.User) (string, error)
}

type AuthService struct {
	Config     *config.Config
	Db         *gorm.DB
	UsersRepo  *dao.Users
	RefRepo    *dao.Reference
	RefGen     IReferenceGenerator
	LoginGuard *limiter.LoginGuard
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Role, jwt.TypeAccess, s.Config.Jwt.Expire)
}

// Login 邮箱 + 密码登录; 窗口期内失败次数过多返回 429
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !s.LoginGuard.Allow(email) {
		return nil, errorx.New(errorx.TooManyRequests, "Too many login attempts, try again later")
	}

	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if user == nil || !encrypt.VerifyPassword(user.Password, req.Password) {
		s.LoginGuard.Fail(email)
		return nil, errorx.Invalid("Invalid credentials")
	}
	s.LoginGuard.Reset(email)

	return s.respond(ctx, user)
}

// Setup 创建第一个管理员; 已存在管理员时返回 Conflict
func (s *AuthService) Setup(ctx context.Context, req *types.CreateUserRequest) (*types.LoginResponse, error) {
	var user *models.User
	err := dao.Transaction(ctx, s.Db, func(ctx context.Context) error {
		exist, err := s.UsersRepo.AdminExists(ctx)
		if err != nil {
			return err
		}
		if exist {
			return errorx.Conflicts("Admin user already exists")
		}
		user, err = createUser(ctx, s.UsersRepo, s.RefRepo, s.RefGen, req, models.RoleAdmin)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, user)
}

func (s *AuthService) Current(ctx context.Context, userID uint64) (*types.UserView, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		return nil, dao.NotFound(err, "User not found")
	}
	views, err := userView(ctx, s.RefRepo, user)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *AuthService) respond(ctx context.Context, user *models.User) (*types.LoginResponse, error) {
	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	views, err := userView(ctx, s.RefRepo, user)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{Token: token, User: views[0]}, nil
}
