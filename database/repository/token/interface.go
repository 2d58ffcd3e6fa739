package tokenRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"

	"go.uber.org/zap"
)

// TokenRepository reads and writes the global token list as one record.
type TokenRepository interface {
	List(ctx context.Context) []models.AccessToken
	Save(ctx context.Context, tokens []models.AccessToken) error
}

type storeTokenRepo struct {
	store  store.Store
	logger *zap.Logger
}

// NewTokenRepo returns a TokenRepository backed by s.
func NewTokenRepo(s store.Store, logger *zap.Logger) TokenRepository {
	return &storeTokenRepo{store: s, logger: logger}
}
