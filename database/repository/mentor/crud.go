package mentorRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"
)

// Get returns the token's mentor session; a missing record has an empty,
// non-nil conversation log.
func (r *storeMentorRepo) Get(ctx context.Context, token string) models.MentorRecord {
	rec := store.ReadJSON[models.MentorRecord](ctx, r.store, store.MentorPrefix+token, r.logger)
	if rec.Conversations == nil {
		rec.Conversations = []models.MentorExchange{}
	}
	return rec
}

func (r *storeMentorRepo) Save(ctx context.Context, token string, record models.MentorRecord) error {
	return store.WriteJSON(ctx, r.store, store.MentorPrefix+token, record)
}
