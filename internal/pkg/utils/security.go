package utils

import (
	"famhealth-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// SessionClaims are the claims this service reads from the identity
// provider's token. The provider owns issuance; we only verify.
type SessionClaims struct {
	UserID      string
	PhoneNumber string
}

func ParseSessionJWT(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.ErrTokenInvalidOrExpired(nil)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	sessionClaims := &SessionClaims{}
	if userID, ok := claims["user_id"].(string); ok {
		sessionClaims.UserID = userID
	}
	if phoneNumber, ok := claims["phone_number"].(string); ok {
		sessionClaims.PhoneNumber = phoneNumber
	}
	if sessionClaims.UserID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionClaims, nil
}

// CheckAPIKeyHash compares a presented admin key against the bcrypt hash
// kept in configuration.
func CheckAPIKeyHash(apiKey, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey))
	return err == nil
}
