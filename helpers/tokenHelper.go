package helpers

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// Token lifetime. Issued tokens expire after this window.
const tokenValidity = 10 * time.Hour

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token is expired")
)

// SignedDetails is the claim set carried by a bearer token. The email is
// the caller identity that the access checks compare against.
type SignedDetails struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenMaker signs and verifies bearer tokens with a process-wide secret.
// It is stateless per call; the secret is loaded once at startup.
type TokenMaker struct {
	secret []byte
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{secret: []byte(secret)}
}

// GenerateToken signs an arbitrary caller-supplied payload with a fixed
// expiration window. The payload is not re-verified here: whoever calls
// the issuance endpoint is trusted to have authenticated the user already.
func (tm *TokenMaker) GenerateToken(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(tokenValidity).Unix()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken checks the signature and expiry of a signed token and
// returns the decoded claims.
func (tm *TokenMaker) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return tm.secret, nil
		},
	)
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
