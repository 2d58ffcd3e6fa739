package ghostwriterRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"

	"go.uber.org/zap"
)

type GhostwriterRepository interface {
	Get(ctx context.Context, token string) models.GhostwriterRecord
	Save(ctx context.Context, token string, record models.GhostwriterRecord) error
}

type storeGhostwriterRepo struct {
	store  store.Store
	logger *zap.Logger
}

func NewGhostwriterRepo(s store.Store, logger *zap.Logger) GhostwriterRepository {
	return &storeGhostwriterRepo{store: s, logger: logger}
}
