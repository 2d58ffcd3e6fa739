package promptRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"
)

func (r *storePromptRepo) Overrides(ctx context.Context) models.PromptOverrides {
	overrides := store.ReadJSON[models.PromptOverrides](ctx, r.store, store.KeyPrompts, r.logger)
	if overrides == nil {
		return models.PromptOverrides{}
	}
	return overrides
}

func (r *storePromptRepo) SaveOverrides(ctx context.Context, overrides models.PromptOverrides) error {
	if overrides == nil {
		overrides = models.PromptOverrides{}
	}
	return store.WriteJSON(ctx, r.store, store.KeyPrompts, overrides)
}
