// Package token implements the access token registry: verification with
// device binding and the administrator's token management.
package token

import (
	"context"

	tokenRepo "digitalmindset/database/repository/token"
	"digitalmindset/models"

	"go.uber.org/zap"
)

type TokenService interface {
	// Client side
	Verify(ctx context.Context, token, deviceID string) (*models.VerifyResult, error)
	Authorize(ctx context.Context, token, deviceID string) error

	// Admin
	List(ctx context.Context) []models.AccessToken
	Create(ctx context.Context, token string) ([]models.AccessToken, error)
	SetActive(ctx context.Context, token string, active bool) ([]models.AccessToken, error)
	Remove(ctx context.Context, token string) ([]models.AccessToken, error)
}

// DefaultTokenService is the production implementation.
type DefaultTokenService struct {
	Repo   tokenRepo.TokenRepository
	Logger *zap.Logger
}

func NewTokenService(repo tokenRepo.TokenRepository, logger *zap.Logger) *DefaultTokenService {
	return &DefaultTokenService{Repo: repo, Logger: logger}
}

func find(tokens []models.AccessToken, token string) int {
	for i := range tokens {
		if tokens[i].Token == token {
			return i
		}
	}
	return -1
}
