// Package admin backs the administrator panel: password check, token
// management and read access to every product history.
package admin

import (
	"context"
	"fmt"

	productRepo "digitalmindset/database/repository/product"
	"digitalmindset/models"
	"digitalmindset/services/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminService interface {
	VerifyPassword(password string) bool
	Tokens() token.TokenService
	Products(ctx context.Context) (map[string]models.ProductHistory, error)
}

type DefaultAdminService struct {
	passwordHash []byte
	tokens       token.TokenService
	products     productRepo.ProductRepository
	logger       *zap.Logger
}

// NewAdminService prefers passwordHash (bcrypt) and otherwise hashes the
// plain password once. With neither set every password check fails.
func NewAdminService(password, passwordHash string, tokens token.TokenService, products productRepo.ProductRepository, logger *zap.Logger) (*DefaultAdminService, error) {
	s := &DefaultAdminService{tokens: tokens, products: products, logger: logger}
	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("admin: invalid ADMIN_PASSWORD_HASH: %w", err)
		}
		s.passwordHash = []byte(passwordHash)
	case password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("admin: hash password: %w", err)
		}
		s.passwordHash = hash
	default:
		logger.Warn("admin: no admin password configured, admin panel is locked")
	}
	return s, nil
}
