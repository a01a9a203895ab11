package models

import "time"

// Role 用户角色
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid 判断角色是否合法
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a dashboard account as returned by the API
type User struct {
	ID        string    `json:"id" example:"1"`
	Username  string    `json:"username" example:"admin"`
	Role      Role      `json:"role" example:"admin"`
	Name      string    `json:"name" example:"Administrator"`
	Email     string    `json:"email" example:"admin@example.com"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserAccount 持久化在 users 键下的账户，包含密码哈希
type UserAccount struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Session 登录会话，键为 session:<jti>
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired 会话是否已过期
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// RegisterUserData 创建用户的参数
type RegisterUserData struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Role     Role   `json:"role" example:"user"`
}

// LoginResult 登录成功后返回的令牌和用户
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}
