// Package auth issues and checks the tokens and password hashes of the
// development backend.
package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the standard claims; the subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"usuario"`
}

// GenerateToken signs a token for userID valid for validity and returns it
// with the "Bearer " prefix, the form clients send back verbatim.
func GenerateToken(userID int64, username string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return common.BearerPrefix + tokenString, nil
}

// GetUserIDFromToken checks an Authorization header value, with or without
// the "Bearer " prefix, and returns the user id it was issued for.
func GetUserIDFromToken(header string, secretKey []byte) (int64, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
	if tokenString == "" {
		return 0, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}
