package ghostwriterRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"
)

// Get returns the token's assets; a missing record has an empty asset map.
func (r *storeGhostwriterRepo) Get(ctx context.Context, token string) models.GhostwriterRecord {
	rec := store.ReadJSON[models.GhostwriterRecord](ctx, r.store, store.GhostwriterPrefix+token, r.logger)
	if rec.Assets == nil {
		rec.Assets = map[models.AssetType]string{}
	}
	return rec
}

func (r *storeGhostwriterRepo) Save(ctx context.Context, token string, record models.GhostwriterRecord) error {
	return store.WriteJSON(ctx, r.store, store.GhostwriterPrefix+token, record)
}
