package tokenRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"
)

// List returns the stored tokens, or an empty list when the record is
// missing or unreadable.
func (r *storeTokenRepo) List(ctx context.Context) []models.AccessToken {
	tokens := store.ReadJSON[[]models.AccessToken](ctx, r.store, store.KeyTokens, r.logger)
	if tokens == nil {
		return []models.AccessToken{}
	}
	return tokens
}

// Save replaces the whole token list.
func (r *storeTokenRepo) Save(ctx context.Context, tokens []models.AccessToken) error {
	if tokens == nil {
		tokens = []models.AccessToken{}
	}
	return store.WriteJSON(ctx, r.store, store.KeyTokens, tokens)
}
