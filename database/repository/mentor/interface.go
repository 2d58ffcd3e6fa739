package mentorRepo

import (
	"context"

	"digitalmindset/database/store"
	"digitalmindset/models"

	"go.uber.org/zap"
)

type MentorRepository interface {
	Get(ctx context.Context, token string) models.MentorRecord
	Save(ctx context.Context, token string, record models.MentorRecord) error
}

type storeMentorRepo struct {
	store  store.Store
	logger *zap.Logger
}

func NewMentorRepo(s store.Store, logger *zap.Logger) MentorRepository {
	return &storeMentorRepo{store: s, logger: logger}
}
