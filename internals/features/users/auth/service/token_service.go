package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenDetails is what a successful login returns.
type TokenDetails struct {
	UserID    uint64
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Claims carried by a verified access token.
type Claims struct {
	UserID uint64
	Role   string
}

// IssueToken signs an HS256 token carrying the user id and role, valid for a
// fixed ttl from issuance.
func IssueToken(secret string, userID uint64, role string, ttl time.Duration) (*TokenDetails, error) {
	if secret == "" {
		return nil, fmt.Errorf("empty JWT secret")
	}
	now := time.Now().UTC()
	exp := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(userID, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &TokenDetails{
		UserID:    userID,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: exp,
	}, nil
}

// VerifyToken checks signature and expiry. Expired, malformed and mis-signed
// tokens all fail the same way so the boundary maps them uniformly to 401.
func VerifyToken(secret, tokenString string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, mapClaims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || userID == 0 {
		return nil, fmt.Errorf("invalid token subject")
	}
	role, _ := mapClaims["role"].(string)

	return &Claims{UserID: userID, Role: role}, nil
}
