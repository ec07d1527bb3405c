// Package auth signs and verifies the persisted session. The session payload
// is the public account projection only; the token exists so a tampered or
// truncated session value reads back as "no session" instead of garbage.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
)

// IssueSessionToken signs the session projection with HS256.
func IssueSessionToken(session models.Session, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  session.ID,
		"username": session.Username,
		"email":    session.Email,
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken verifies the token and rebuilds the session projection.
// Any parse or signature failure means there is no usable session.
func ParseSessionToken(raw string, secret []byte) (models.Session, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return models.Session{}, errors.New("invalid or tampered session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, errors.New("invalid token claims")
	}

	session := models.Session{}
	if id, ok := claims["user_id"].(string); ok {
		session.ID = id
	}
	if username, ok := claims["username"].(string); ok {
		session.Username = username
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if session.ID == "" {
		return models.Session{}, errors.New("token carries no user id")
	}
	return session, nil
}
