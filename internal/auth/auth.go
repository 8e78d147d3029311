package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// System roles are coarse, tenant-independent privilege tiers.
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleModerator  = "MODERATOR"
	RoleUser       = "USER"
)

// SystemRoles lists every assignable system role, used by enum checks.
var SystemRoles = []string{RoleSuperAdmin, RoleAdmin, RoleModerator, RoleUser}

func IsValidSystemRole(role string) bool {
	for _, r := range SystemRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is the authenticated principal attached to request context.
type User struct {
	ID          int64    `json:"id"`
	CompanyID   int64    `json:"company_id"`
	Email       string   `json:"email"`
	SystemRole  string   `json:"system_role"`
	Permissions []string `json:"permissions,omitempty"`
}

func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (u *User) HasAnyPermission(permissions []string) bool {
	for _, userPerm := range u.Permissions {
		for _, requiredPerm := range permissions {
			if userPerm == requiredPerm {
				return true
			}
		}
	}
	return false
}

func (u *User) HasSystemRole(roles ...string) bool {
	for _, r := range roles {
		if u.SystemRole == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds an administrative tier.
// SUPERADMIN implies every lower tier.
func (u *User) IsAdmin() bool {
	return u.HasSystemRole(RoleSuperAdmin, RoleAdmin)
}

func (u *User) IsModerator() bool {
	return u.HasSystemRole(RoleSuperAdmin, RoleAdmin, RoleModerator)
}

type ctxKey string

const ContextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims are the JWT claims carried by both token kinds.
type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	CompanyID  int64  `json:"company_id"`
	SystemRole string `json:"system_role"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmailTaken         = errors.New("email is already registered")
)

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
