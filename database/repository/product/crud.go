package productRepo

import (
	"context"
	"fmt"
	"strings"

	"digitalmindset/database/store"
	"digitalmindset/models"
)

// History returns the token's products in creation order.
func (r *storeProductRepo) History(ctx context.Context, token string) models.ProductHistory {
	history := store.ReadJSON[models.ProductHistory](ctx, r.store, historyKey(token), r.logger)
	for i := range history {
		if history[i].Chapters == nil {
			history[i].Chapters = map[int]models.Chapter{}
		}
	}
	return history
}

// Append reads the history, appends product and writes the history back.
func (r *storeProductRepo) Append(ctx context.Context, token string, product models.Product) (models.ProductHistory, error) {
	history := r.History(ctx, token)
	history = append(history, product)
	if err := r.SaveHistory(ctx, token, history); err != nil {
		return nil, err
	}
	return history, nil
}

// SaveHistory replaces the token's whole history.
func (r *storeProductRepo) SaveHistory(ctx context.Context, token string, history models.ProductHistory) error {
	if history == nil {
		history = models.ProductHistory{}
	}
	return store.WriteJSON(ctx, r.store, historyKey(token), history)
}

// All returns every token's history, keyed by token.
func (r *storeProductRepo) All(ctx context.Context) (map[string]models.ProductHistory, error) {
	keys, err := r.store.Keys(ctx, store.ProductsPrefix)
	if err != nil {
		return nil, fmt.Errorf("list product histories: %w", err)
	}
	out := make(map[string]models.ProductHistory, len(keys))
	for _, key := range keys {
		token := strings.TrimPrefix(key, store.ProductsPrefix)
		out[token] = r.History(ctx, token)
	}
	return out, nil
}
