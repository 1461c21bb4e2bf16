package authorization

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_model"
)

const DefaultTokenExpire = 7 * 24 * time.Hour

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     pool_model.Role `json:"role"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	expire time.Duration
}

func NewTokenIssuer(secret string, expire time.Duration) *TokenIssuer {
	if expire <= 0 {
		expire = DefaultTokenExpire
	}

	return &TokenIssuer{
		secret: []byte(secret),
		expire: expire,
	}
}

func (i *TokenIssuer) Issue(user *pool_model.User) (string, time.Time, error) {
	now := time.Now()
	expiredAt := now.Add(i.expire)

	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiredAt),
		},
	}

	token, err := jwt.
		NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString(i.secret)

	return token, expiredAt, err
}

func (i *TokenIssuer) Parse(token string) (*Claims, error) {
	claims := Claims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})

	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, &authorization_iface.AuthenticationError{Msg: "token expired"}
		}
		return nil, &authorization_iface.AuthenticationError{Msg: "invalid token"}
	}

	if claims.UserID == 0 {
		return nil, &authorization_iface.AuthenticationError{Msg: "invalid token"}
	}

	return &claims, nil
}
