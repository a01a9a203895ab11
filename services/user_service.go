package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
	"smarthome-http-service/utils"

	"github.com/google/uuid"
)

// InterfaceUserService 定义用户与会话服务接口
type InterfaceUserService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (*JWTClaims, *models.User, error)
	Register(ctx context.Context, actor *models.User, data models.RegisterUserData) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, userID string) error
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
}

// UserService 管理 users 键下的账户和 session:<jti> 会话
type UserService struct {
	store  InterfaceStoreService
	jwt    *JWTService
	config *config.Config

	mu sync.Mutex
}

// NewUserService 创建用户服务
func NewUserService(store InterfaceStoreService, jwt *JWTService, cfg *config.Config) *UserService {
	return &UserService{store: store, jwt: jwt, config: cfg}
}

// initialAccounts 默认的管理员和普通用户
func (s *UserService) initialAccounts() ([]models.UserAccount, error) {
	now := time.Now()
	seed := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: "1", Username: "admin", Role: models.RoleAdmin, Name: "Administrator", Email: "admin@example.com", CreatedAt: now}, s.config.DefaultAdminPassword},
		{models.User{ID: "2", Username: "user", Role: models.RoleUser, Name: "Regular User", Email: "user@example.com", CreatedAt: now}, s.config.DefaultUserPassword},
	}

	accounts := make([]models.UserAccount, 0, len(seed))
	for _, u := range seed {
		hash, err := utils.HashPassword(u.password)
		if err != nil {
			return nil, fmt.Errorf("密码加密失败: %w", err)
		}
		accounts = append(accounts, models.UserAccount{User: u.user, PasswordHash: hash})
	}
	return accounts, nil
}

// accounts 读取账户列表，键缺失或无法解析时写入默认账户。调用者必须持有锁
func (s *UserService) accounts(ctx context.Context) ([]models.UserAccount, error) {
	var accounts []models.UserAccount
	if LoadJSON(ctx, s.store, KeyUsers, &accounts) {
		return accounts, nil
	}

	accounts, err := s.initialAccounts()
	if err != nil {
		return nil, err
	}
	if err := SaveJSON(ctx, s.store, KeyUsers, accounts); err != nil {
		return nil, err
	}
	config.Info("已写入默认用户 admin 和 user")
	return accounts, nil
}

// EnsureSeeded 启动时确保默认账户存在
func (s *UserService) EnsureSeeded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.accounts(ctx)
	return err
}

// 1 Login 校验用户名和密码，签发令牌并保存会话
func (s *UserService) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	s.mu.Lock()
	accounts, err := s.accounts(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var account *models.UserAccount
	for i := range accounts {
		if accounts[i].Username == username {
			account = &accounts[i]
			break
		}
	}
	if account == nil || !utils.CheckPasswordHash(password, account.PasswordHash) {
		config.Warning("用户 %q 登录失败", username)
		return nil, ErrInvalidCredentials
	}

	token, session, err := s.jwt.GenerateToken(&account.User)
	if err != nil {
		return nil, fmt.Errorf("生成令牌失败: %w", err)
	}
	if err := SaveJSON(ctx, s.store, SessionKey(session.ID), session); err != nil {
		return nil, err
	}

	config.Info("用户 %s 已登录", account.Username)
	return &models.LoginResult{Token: token, ExpiresAt: session.ExpiresAt, User: account.User}, nil
}

// 2 Logout 删除会话，之后该令牌失效
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionNotFound
	}
	return DeleteKeys(ctx, s.store, SessionKey(sessionID))
}

// 3 Authenticate 校验令牌、会话和用户，三者都有效时返回声明和用户
func (s *UserService) Authenticate(ctx context.Context, token string) (*JWTClaims, *models.User, error) {
	claims, err := s.jwt.ExtractClaims(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	var session models.Session
	if !LoadJSON(ctx, s.store, SessionKey(claims.ID), &session) || session.Expired(time.Now()) {
		return nil, nil, ErrSessionNotFound
	}

	user, err := s.Get(ctx, claims.UserID)
	if err != nil {
		// 用户已被删除
		_ = DeleteKeys(ctx, s.store, SessionKey(claims.ID))
		return nil, nil, ErrSessionNotFound
	}
	return claims, user, nil
}

// 4 Register 创建新用户，仅管理员可用
func (s *UserService) Register(ctx context.Context, actor *models.User, data models.RegisterUserData) (*models.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	data.Username = strings.TrimSpace(data.Username)
	if data.Username == "" || data.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if data.Role == "" {
		data.Role = models.RoleUser
	}
	if !data.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, data.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Username == data.Username {
			return nil, ErrUsernameTaken
		}
	}

	hash, err := utils.HashPassword(data.Password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}
	account := models.UserAccount{
		User: models.User{
			ID:        uuid.NewString(),
			Username:  data.Username,
			Role:      data.Role,
			Name:      data.Name,
			Email:     data.Email,
			CreatedAt: time.Now(),
		},
		PasswordHash: hash,
	}
	accounts = append(accounts, account)
	if err := SaveJSON(ctx, s.store, KeyUsers, accounts); err != nil {
		return nil, err
	}

	config.Info("管理员 %s 创建了用户 %s (%s)", actor.Username, account.Username, account.Role)
	return &account.User, nil
}

// 5 Delete 删除用户，仅管理员可用且不能删除自己
func (s *UserService) Delete(ctx context.Context, actor *models.User, userID string) error {
	if actor == nil || !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	if actor.ID == userID {
		return ErrCannotDeleteSelf
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.UserAccount, 0, len(accounts))
	for _, a := range accounts {
		if a.ID != userID {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(accounts) {
		return ErrUserNotFound
	}
	if err := SaveJSON(ctx, s.store, KeyUsers, kept); err != nil {
		return err
	}
	config.Info("管理员 %s 删除了用户 %s", actor.Username, userID)
	return nil
}

// 6 List 返回所有用户，不包含密码哈希
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, a.User)
	}
	return users, nil
}

// 7 Get 按 ID 获取用户
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == userID {
			u := a.User
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// IsSessionError 判断错误是否表示令牌或会话无效
func IsSessionError(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}
