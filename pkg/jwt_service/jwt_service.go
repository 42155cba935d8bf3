package jwtservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// JWTClaims travel inside both token kinds; the two kinds differ only in
// signing secret and lifetime.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
}

func New(accessSecret, refreshSecret string) *JWTService {
	return &JWTService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

func (js *JWTService) GenerateAccessToken(user *entity.User) (string, error) {
	token, _, err := js.generate(user, js.accessSecret, accessTokenTTL)
	return token, err
}

// GenerateRefreshToken also reports the expiry so the caller can persist the
// token record with it.
func (js *JWTService) GenerateRefreshToken(user *entity.User) (string, time.Time, error) {
	return js.generate(user, js.refreshSecret, refreshTokenTTL)
}

func (js *JWTService) ParseAccessToken(tokenString string) (*JWTClaims, error) {
	return js.parse(tokenString, js.accessSecret)
}

func (js *JWTService) ParseRefreshToken(tokenString string) (*JWTClaims, error) {
	return js.parse(tokenString, js.refreshSecret)
}

func (js *JWTService) generate(user *entity.User, secret []byte, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			// timestamps alone are second-granular; the ID keeps two tokens
			// issued within the same second distinct
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   user.ID.String(),
		Username: user.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.New("signing token error: " + err.Error())
	}
	return signed, expiresAt, nil
}

func (js *JWTService) parse(tokenString string, secret []byte) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errorvalues.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, errorvalues.ErrInvalidToken
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
