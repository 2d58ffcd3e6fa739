package productRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"

	"go.uber.org/zap"
)

// ProductRepository stores each token's product history under its own key.
type ProductRepository interface {
	History(ctx context.Context, token string) models.ProductHistory
	Append(ctx context.Context, token string, product models.Product) (models.ProductHistory, error)
	SaveHistory(ctx context.Context, token string, history models.ProductHistory) error
	All(ctx context.Context) (map[string]models.ProductHistory, error)
}

type storeProductRepo struct {
	store  store.Store
	logger *zap.Logger
}

// NewProductRepo returns a ProductRepository backed by s.
func NewProductRepo(s store.Store, logger *zap.Logger) ProductRepository {
	return &storeProductRepo{store: s, logger: logger}
}

func historyKey(token string) string {
	return store.ProductsPrefix + token
}
