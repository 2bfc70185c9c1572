package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

// RoomTokenClaims grants a user access to one room.
type RoomTokenClaims struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// RoomAuthEnabled reports whether room access tokens are enforced.
// With no secret configured the room channel is open.
func RoomAuthEnabled() bool { return len(jwtSecret) > 0 }

func ValidateRoomToken(tokenStr string) (*RoomTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &RoomTokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*RoomTokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid room token")
	}
	return claims, nil
}
