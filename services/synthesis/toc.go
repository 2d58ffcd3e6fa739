package synthesis

import (
	"context"
	"fmt"
	"strings"

	"digitalmindset/models"
	"digitalmindset/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateTableOfContents builds a table of contents for niche and appends a
// new product to the token's history. Every call appends; earlier products
// stay untouched.
func (s *DefaultSynthesisService) GenerateTableOfContents(ctx context.Context, niche, token string) (*models.TableOfContentsResponse, error) {
	if token == "" {
		return nil, utils.ErrTokenRequired
	}
	if strings.TrimSpace(niche) == "" {
		return nil, utils.NewValidationError("Niche is required")
	}

	messages := []models.ChatMessage{
		models.SystemMessage(s.Prompts.System(ctx, models.StageTOC)),
		models.UserMessage(fmt.Sprintf(`Create a detailed table of contents for a 45-page digital product about "%s". Include 12-15 chapters with engaging titles. Format as JSON array with "chapter" and "title" fields.`, niche)),
	}
	raw, err := s.Generator.GenerateText(ctx, messages, tocTemperature)
	if err != nil {
		return nil, err
	}
	toc := ParseTableOfContents(raw)

	product := models.Product{
		ID:              uuid.New().String(),
		ProductTitle:    niche + " Guide",
		Niche:           niche,
		TableOfContents: toc.Entries,
		Chapters:        map[int]models.Chapter{},
		CreatedAt:       models.Now(),
	}
	history, err := s.Products.Append(ctx, token, product)
	if err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.Logger.Info("synthesis: product created",
		zap.String("productID", product.ID),
		zap.String("niche", niche),
		zap.Int("chapters", len(toc.Entries)),
		zap.Stringer("source", toc.Source),
		zap.Int("historyLength", len(history)))

	return &models.TableOfContentsResponse{
		TableOfContents: toc.Entries,
		ProductTitle:    product.ProductTitle,
	}, nil
}
