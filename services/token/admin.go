package token

import (
	"context"

	"digitalmindset/models"
	"digitalmindset/utils"

	"go.uber.org/zap"
)

func (s *DefaultTokenService) List(ctx context.Context) []models.AccessToken {
	return s.Repo.List(ctx)
}

// Create appends an active, unbound token.
func (s *DefaultTokenService) Create(ctx context.Context, token string) ([]models.AccessToken, error) {
	if token == "" {
		return nil, utils.ErrTokenRequired
	}
	tokens := s.Repo.List(ctx)
	if find(tokens, token) >= 0 {
		return nil, utils.ErrTokenExists
	}
	tokens = append(tokens, models.AccessToken{Token: token, Active: true})
	if err := s.Repo.Save(ctx, tokens); err != nil {
		return nil, err
	}
	s.Logger.Info("token: created", zap.String("token", mask(token)), zap.Bool("master", models.IsMaster(token)))
	return tokens, nil
}

// SetActive toggles the active flag. The device binding is left untouched.
func (s *DefaultTokenService) SetActive(ctx context.Context, token string, active bool) ([]models.AccessToken, error) {
	tokens := s.Repo.List(ctx)
	idx := find(tokens, token)
	if idx < 0 {
		return nil, &utils.AppError{Kind: utils.KindNotFound, Code: "token_not_found", Message: "Token not found"}
	}
	tokens[idx].Active = active
	if err := s.Repo.Save(ctx, tokens); err != nil {
		return nil, err
	}
	s.Logger.Info("token: active changed", zap.String("token", mask(token)), zap.Bool("active", active))
	return tokens, nil
}

// Remove deletes the token if present. Removing an unknown token succeeds.
func (s *DefaultTokenService) Remove(ctx context.Context, token string) ([]models.AccessToken, error) {
	tokens := s.Repo.List(ctx)
	kept := tokens[:0]
	for _, t := range tokens {
		if t.Token != token {
			kept = append(kept, t)
		}
	}
	if err := s.Repo.Save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
