package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	XUserIDHeader   = "X-User-Id"
	XUserRoleHeader = "X-User-Role"

	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type Claims struct {
	Profile struct {
		UserID int64  `json:"userId"`
		Role   string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey int

const (
	userIDKey ctxKey = iota + 1
	userRoleKey
)

var ErrNoIdentity = errors.New("no user identity in context")

func SetAuthContext(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

func GetUserID(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id <= 0 {
		return 0, ErrNoIdentity
	}
	return id, nil
}

func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

func IsAdmin(ctx context.Context) bool {
	return GetRole(ctx) == RoleAdmin
}
