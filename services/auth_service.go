package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"hotel-frontdesk/models"
)

const DefaultTokenTTL = 12 * time.Hour

type AuthService struct {
	Desk   *FrontDeskService
	Secret []byte
	TTL    time.Duration
}

func NewAuthService(desk *FrontDeskService, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{Desk: desk, Secret: []byte(secret), TTL: ttl}
}

// Claims identify the operator behind a request.
type Claims struct {
	Role     string `json:"role"`
	FullName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      models.UserView `json:"user"`
}

// Login checks the operator's password and issues a signed access token.
// Usernames match exactly. Unknown users, inactive users and wrong passwords
// all yield ErrInvalidCredentials.
//
// A successful login records LastLogin, which saves the whole state and bumps
// its version. A write racing it from another process gets ErrVersionConflict
// and has to retry.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	var user models.User
	err := s.Desk.mutate(ctx, func(h *Hotel) error {
		for i := range h.State.Users {
			u := &h.State.Users[i]
			if u.Username != username {
				continue
			}
			if !u.IsActive {
				return ErrInvalidCredentials
			}
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return ErrInvalidCredentials
			}
			now := s.Desk.Clock.Now()
			u.LastLogin = &now
			user = *u
			return nil
		}
		return ErrInvalidCredentials
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.Desk.Logger.Sugar().Infow("login rejected", "username", username)
		}
		return LoginResult{}, err
	}

	token, exp, err := s.issue(user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresAt: exp, User: user.View()}, nil
}

func (s *AuthService) issue(user models.User) (string, time.Time, error) {
	now := s.Desk.Clock.Now().UTC()
	exp := now.Add(s.TTL)
	claims := Claims{
		Role:     user.Role,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// ParseToken validates an HS256 token and returns its claims.
func (s *AuthService) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.Desk.Clock.Now))
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrInvalidCredentials)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrInvalidCredentials)
	}
	return claims, nil
}
