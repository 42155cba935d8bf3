package api

import (
	"time"

	"github.com/freshstart/freshstart/pkg/entity"
	jwtservice "github.com/freshstart/freshstart/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(user *entity.User) (string, time.Time, error)
	ParseAccessToken(tokenString string) (*jwtservice.JWTClaims, error)
	ParseRefreshToken(tokenString string) (*jwtservice.JWTClaims, error)
}
