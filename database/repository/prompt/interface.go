package promptRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"

	"go.uber.org/zap"
)

// PromptRepository persists the administrator's system prompt overrides.
type PromptRepository interface {
	Overrides(ctx context.Context) models.PromptOverrides
	SaveOverrides(ctx context.Context, overrides models.PromptOverrides) error
}

type storePromptRepo struct {
	store  store.Store
	logger *zap.Logger
}

func NewPromptRepo(s store.Store, logger *zap.Logger) PromptRepository {
	return &storePromptRepo{store: s, logger: logger}
}
