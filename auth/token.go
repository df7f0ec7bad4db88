package auth

import (
	"time"

	"sargalayam/config"

	"github.com/golang-jwt/jwt/v5"
)

type Permission = string

const (
	PermissionAdmin Permission = "admin"
)

type Claims struct {
	Subject     string       `json:"sub"`
	Permissions []Permission `json:"permissions"`
	Exp         int64        `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) {
	permissions := []Permission{}
	if jwtClaims.(jwt.MapClaims)["permissions"] != nil {
		for _, perm := range jwtClaims.(jwt.MapClaims)["permissions"].([]interface{}) {
			permissions = append(permissions, perm.(string))
		}
	}
	claims.Permissions = permissions
	if sub, ok := jwtClaims.(jwt.MapClaims)["sub"].(string); ok {
		claims.Subject = sub
	}
	claims.Exp = int64(jwtClaims.(jwt.MapClaims)["exp"].(float64))
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func CreateToken(subject string, permissions []Permission) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub":         subject,
			"permissions": permissions,
			"exp":         time.Now().Add(time.Hour * 24 * 7).Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}
	return token, nil
}
