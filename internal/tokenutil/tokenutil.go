package tokenutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
)

type JwtCustomClaims struct {
	Name string            `json:"name"`
	ID   string            `json:"id"`
	Role music_models.Role `json:"role"`
	jwt.RegisteredClaims
}

func CreateAccessToken(user *music_models.UserProfile, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaims{
		Name: user.ShowedName,
		ID:   user.ID.Hex(),
		Role: user.AccountType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return t, nil
}

// ParseAccessToken 校验签名与有效期，返回声明
func ParseAccessToken(requestToken string, secret string) (*JwtCustomClaims, error) {
	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
