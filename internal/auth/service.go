package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Credentials is the stored login record looked up by email.
type Credentials struct {
	UserID       int64
	CompanyID    int64
	Email        string
	PasswordHash string
	SystemRole   string
	IsActive     bool
}

// NewUser carries everything needed to persist a freshly registered or
// invited user.
type NewUser struct {
	CompanyID    int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	SystemRole   string
}

type UserRepository interface {
	GetCredentials(email string) (*Credentials, error)
	GetUserWithPermissions(userID int64) (*User, error)
	EmailExists(email string) (bool, error)
	CreateUser(u *NewUser) (int64, error)
}

// CompanyRegistrar creates the tenant during self-service registration.
type CompanyRegistrar interface {
	CreateForRegistration(name string) (int64, error)
}

// RedeemedInvitation is what a valid invitation token resolves to.
type RedeemedInvitation struct {
	CompanyID int64
	Email     string
	Role      string
}

type InvitationRedeemer interface {
	Redeem(token string) (*RedeemedInvitation, error)
}

type TokenGenerator interface {
	GenerateAccessToken(u *User) (string, error)
	GenerateRefreshToken(u *User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	userRepo       UserRepository
	companies      CompanyRegistrar
	invitations    InvitationRedeemer
	tokenGenerator TokenGenerator
	bcryptCost     int
}

func NewService(userRepo UserRepository, companies CompanyRegistrar, invitations InvitationRedeemer, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		companies:      companies,
		invitations:    invitations,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL == 0 {
		refreshTTL = 24 * 7 * time.Hour
	}
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Authenticate validates credentials and returns a token pair.
func (s *Service) Authenticate(dto *LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	creds, err := s.userRepo.GetCredentials(dto.Email)
	if err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	if !creds.IsActive {
		return AuthTokens{}, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(dto.Password)); err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	return s.issueTokens(&User{
		ID:         creds.UserID,
		CompanyID:  creds.CompanyID,
		Email:      creds.Email,
		SystemRole: creds.SystemRole,
	})
}

// Register creates a new company and its first admin user, then logs
// the user in.
func (s *Service) Register(dto *RegisterDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	taken, err := s.userRepo.EmailExists(dto.Email)
	if err != nil {
		return AuthTokens{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return AuthTokens{}, ErrEmailTaken
	}

	companyID, err := s.companies.CreateForRegistration(dto.CompanyName)
	if err != nil {
		return AuthTokens{}, fmt.Errorf("create company: %w", err)
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return AuthTokens{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.userRepo.CreateUser(&NewUser{
		CompanyID:    companyID,
		Email:        dto.Email,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		PasswordHash: hash,
		SystemRole:   RoleAdmin,
	})
	if err != nil {
		return AuthTokens{}, fmt.Errorf("create user: %w", err)
	}

	return s.issueTokens(&User{
		ID:         userID,
		CompanyID:  companyID,
		Email:      dto.Email,
		SystemRole: RoleAdmin,
	})
}

// JoinCompany redeems an invitation token and creates the invited user
// inside the inviting company with the role assigned by the invitation.
func (s *Service) JoinCompany(dto *JoinCompanyDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	inv, err := s.invitations.Redeem(dto.Token)
	if err != nil {
		return AuthTokens{}, err
	}

	taken, err := s.userRepo.EmailExists(inv.Email)
	if err != nil {
		return AuthTokens{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return AuthTokens{}, ErrEmailTaken
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return AuthTokens{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.userRepo.CreateUser(&NewUser{
		CompanyID:    inv.CompanyID,
		Email:        inv.Email,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		PasswordHash: hash,
		SystemRole:   inv.Role,
	})
	if err != nil {
		return AuthTokens{}, fmt.Errorf("create user: %w", err)
	}

	return s.issueTokens(&User{
		ID:         userID,
		CompanyID:  inv.CompanyID,
		Email:      inv.Email,
		SystemRole: inv.Role,
	})
}

// RefreshTokens validates a refresh token and rotates the pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return AuthTokens{}, ErrInvalidToken
	}

	return s.issueTokens(&User{
		ID:         userID,
		CompanyID:  claims.CompanyID,
		Email:      claims.Email,
		SystemRole: claims.SystemRole,
	})
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (s *Service) GetUserWithPermissions(userID int64) (*User, error) {
	return s.userRepo.GetUserWithPermissions(userID)
}

func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) issueTokens(u *User) (AuthTokens, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(u)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(u)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (j *JWTTokenGenerator) GenerateAccessToken(u *User) (string, error) {
	return j.signToken(u, j.AccessTokenTTL, j.AccessTokenSecret)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(u *User) (string, error) {
	return j.signToken(u, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) signToken(u *User, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	userID := strconv.FormatInt(u.ID, 10)

	claims := &Claims{
		UserID:     userID,
		Email:      u.Email,
		CompanyID:  u.CompanyID,
		SystemRole: u.SystemRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a JWT from either token family.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		// Refresh tokens outlive the access TTL, so pick the secret by
		// remaining lifetime.
		if claims, ok := token.Claims.(*Claims); ok && claims.ExpiresAt != nil {
			if time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// GenerateRandomToken generates a cryptographically secure random token.
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
