package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued by the auth service. This engine only
// reads it; token issuance lives elsewhere.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
