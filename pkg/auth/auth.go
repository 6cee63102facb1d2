package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Config struct {
	Secret   string        `yaml:"secret" envconfig:"JWT_SECRET" required:"true"`
	TokenTTL time.Duration `yaml:"tokenTTL" envconfig:"JWT_TTL" default:"24h"`
}

// Claims is the token payload issued on login and restored by the
// authentication middleware.
type Claims struct {
	Profile struct {
		UserUid  string `json:"userUid"`
		Username string `json:"username"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

func NewToken(cfg Config, userUid, username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(cfg.TokenTTL)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	claims.Profile.UserUid = userUid
	claims.Profile.Username = username

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

type ctxKey int

const (
	userUidKey ctxKey = iota + 1
	userNameKey
)

func SetAuthContext(ctx context.Context, userUid, username string) context.Context {
	ctx = context.WithValue(ctx, userUidKey, userUid)
	return context.WithValue(ctx, userNameKey, username)
}

func UserUid(ctx context.Context) (string, error) {
	uid, ok := ctx.Value(userUidKey).(string)
	if !ok || uid == "" {
		return "", errors.New("no user in context")
	}
	return uid, nil
}

func Username(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", errors.New("no username in context")
	}
	return name, nil
}
