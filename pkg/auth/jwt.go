package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(fid string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("your-secret-key")

// Claims carry the Farcaster ID the caller was verified as upstream.
type Claims struct {
	FID string `json:"fid"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(fid string, expirationTime time.Time) (string, error) {
	claims := Claims{
		FID: fid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "lottoframe",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.FID == "" || claims.Issuer != "lottoframe" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
