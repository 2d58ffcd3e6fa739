// Package synthesis runs the product pipeline: niche ideas, then a table of
// contents that opens a new product, then chapters written into the
// token's current product.
package synthesis

import (
	"context"

	productRepo "digitalmindset/database/repository/product"
	"digitalmindset/models"
	"digitalmindset/services/intelligence"
	"digitalmindset/services/prompts"

	"go.uber.org/zap"
)

type SynthesisService interface {
	GenerateNiches(ctx context.Context, token string) ([]models.Niche, error)
	GenerateTableOfContents(ctx context.Context, niche, token string) (*models.TableOfContentsResponse, error)
	GenerateChapter(ctx context.Context, req ChapterRequest) (string, error)
}

// ChapterRequest identifies the chapter to write.
type ChapterRequest struct {
	Token         string
	Niche         string
	ChapterTitle  string
	ChapterNumber int
}

// DefaultSynthesisService is the production implementation.
type DefaultSynthesisService struct {
	Generator intelligence.TextGenerator
	Prompts   *prompts.Service
	Products  productRepo.ProductRepository
	Logger    *zap.Logger
}

func NewSynthesisService(gen intelligence.TextGenerator, p *prompts.Service, products productRepo.ProductRepository, logger *zap.Logger) *DefaultSynthesisService {
	return &DefaultSynthesisService{Generator: gen, Prompts: p, Products: products, Logger: logger}
}

// Temperatures per stage.
const (
	nicheTemperature   = 0.7
	tocTemperature     = 0.7
	chapterTemperature = 0.8
)
