package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"resort/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrEmptyClaims  = errors.New("token carries empty claims")
)

// Claims is the session claim set: the user id and role, plus registered
// claims. The wire field names match the authtoken cookie contract.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session tokens.
type JWT interface {
	GenerateToken(userID, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// GenerateToken signs a session token for the given identity. When
// AUTH_TOKEN_EXPIRE_MIN is zero the token carries no expiry, matching the
// legacy contract; deployments wanting bounded sessions set it.
func (s *Service) GenerateToken(userID, role string) (string, error) {
	now := time.Now().UTC()

	registered := jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(now),
		Issuer:   s.config.App.Name,
		Subject:  userID,
		ID:       uuid.New().String(),
	}

	if expireMin := s.config.Auth.TokenExpireMin; expireMin > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(expireMin) * time.Minute))
	}

	claims := Claims{
		UserID:           userID,
		Role:             role,
		RegisteredClaims: registered,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Auth.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken parses and verifies a session token.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" || claims.Role == "" {
		return nil, ErrEmptyClaims
	}

	return claims, nil
}
