package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
)

const issuer = "scamguard"

var ErrInvalidToken = errors.New("invalid token")

// Claims identifies an authenticated admin.
type Claims struct {
	AdminID  uint                    `json:"admin_id"`
	Username string                  `json:"username"`
	Role     authorization.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// Subject is the casbin subject for this admin.
func (c *Claims) Subject() string {
	return c.Role.String()
}

type Token struct {
	AccessToken string
	ExpiresIn   int64
	ExpiresAt   time.Time
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	now              func() time.Time
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	if accessExpMinutes <= 0 {
		accessExpMinutes = 480
	}
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *JWTService) Generate(adminID uint, username string, role authorization.AdminRole) (*Token, error) {
	now := s.now()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		AdminID:  adminID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(adminID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		ExpiresIn:   int64(s.accessExpMinutes * 60),
		ExpiresAt:   exp,
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return claims, nil
}

// AccessExpMinutes returns the access token lifetime in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
