package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsBoss   bool   `json:"is_boss"`
	jwt.RegisteredClaims
}
