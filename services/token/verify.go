package token

import (
	"context"

	"digitalmindset/models"
	"digitalmindset/utils"

	"go.uber.org/zap"
)

// Verify checks token and binds it to deviceID on first use. A token bound
// to another device is rejected before its active flag is considered.
func (s *DefaultTokenService) Verify(ctx context.Context, token, deviceID string) (*models.VerifyResult, error) {
	if token == "" {
		return nil, utils.ErrTokenRequired
	}
	if deviceID == "" {
		return nil, utils.NewValidationError("Device ID is required")
	}

	tokens := s.Repo.List(ctx)
	idx := find(tokens, token)
	if idx < 0 {
		return nil, utils.ErrTokenNotFound
	}
	entry := &tokens[idx]

	if entry.UsedByDevice != "" && entry.UsedByDevice != deviceID {
		s.Logger.Warn("token: device conflict", zap.String("token", mask(token)), zap.String("deviceID", deviceID))
		return nil, utils.ErrDeviceConflict
	}
	if !entry.Active {
		return nil, utils.ErrTokenInactive
	}

	entry.UsedByDevice = deviceID
	entry.LastUsed = models.Now()
	if err := s.Repo.Save(ctx, tokens); err != nil {
		return nil, err
	}

	s.Logger.Info("token: verified", zap.String("token", mask(token)), zap.String("deviceID", deviceID))
	return &models.VerifyResult{
		Valid:    true,
		IsMaster: models.IsMaster(token),
		Message:  "Token verified successfully",
	}, nil
}

// Authorize is the read-only gate in front of the generation stages. It
// never binds a device. deviceID may be empty when the client does not send
// one.
func (s *DefaultTokenService) Authorize(ctx context.Context, token, deviceID string) error {
	if token == "" {
		return utils.ErrTokenRequired
	}
	tokens := s.Repo.List(ctx)
	idx := find(tokens, token)
	if idx < 0 {
		return utils.ErrTokenNotFound
	}
	entry := tokens[idx]
	if deviceID != "" && entry.UsedByDevice != "" && entry.UsedByDevice != deviceID {
		return utils.ErrDeviceConflict
	}
	if !entry.Active {
		return utils.ErrTokenInactive
	}
	return nil
}

// mask keeps token values out of the logs.
func mask(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
