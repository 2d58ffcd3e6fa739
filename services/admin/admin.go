package admin

import (
	"context"

	"digitalmindset/models"
	"digitalmindset/services/token"

	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultAdminService) VerifyPassword(password string) bool {
	if len(s.passwordHash) == 0 || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

func (s *DefaultAdminService) Tokens() token.TokenService {
	return s.tokens
}

// Products returns every token's product history.
func (s *DefaultAdminService) Products(ctx context.Context) (map[string]models.ProductHistory, error) {
	return s.products.All(ctx)
}
