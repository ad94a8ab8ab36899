package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/internal/reconcile"
	"github.com/limbo/healthydev/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// ReconcilerI keeps the caches of whoever idp reports as signed in up to date.
type ReconcilerI interface {
	Follow(ctx context.Context, idp reconcile.IdentityProvider)
}

type ChangeListener interface {
	Listen(owner uuid.UUID) (<-chan events.Change, func())
}
