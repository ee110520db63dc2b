package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jewelpos/internal/config"
	"jewelpos/internal/domain"
)

// LoginInput is the DTO for the shared-password login.
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// SessionClaims are the JWT claims carried by an operator session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	ShopName string `json:"shop_name"`
}

// AuthService issues and validates operator sessions. The shop runs on one
// shared password; a successful check yields an explicit session token
// instead of ambient logged-in state.
type AuthService interface {
	Login(input LoginInput) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

type authService struct {
	jwtCfg  config.JWTConfig
	shopCfg config.ShopConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(jwtCfg config.JWTConfig, shopCfg config.ShopConfig) AuthService {
	return &authService{jwtCfg: jwtCfg, shopCfg: shopCfg}
}

func (s *authService) Login(input LoginInput) (string, error) {
	if s.shopCfg.PasswordHash == "" {
		return "", fmt.Errorf("shop password hash is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.shopCfg.PasswordHash), []byte(input.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator",
			Issuer:    s.jwtCfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.SessionExpiry)),
			ID:        uuid.New().String(),
		},
		ShopName: s.shopCfg.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

func (s *authService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
