// Package ghostwriter derives marketing assets from a token's current
// product. Each asset type keeps only its latest version.
package ghostwriter

import (
	"context"
	"fmt"

	ghostwriterRepo "digitalmindset/database/repository/ghostwriter"
	productRepo "digitalmindset/database/repository/product"
	"digitalmindset/models"
	"digitalmindset/services/intelligence"
	"digitalmindset/services/prompts"
	"digitalmindset/utils"

	"go.uber.org/zap"
)

const assetTemperature = 0.7

type GhostwriterService interface {
	GenerateAsset(ctx context.Context, token string, assetType models.AssetType) (string, error)
	Get(ctx context.Context, token string) models.GhostwriterRecord
}

type DefaultGhostwriterService struct {
	Generator intelligence.TextGenerator
	Prompts   *prompts.Service
	Products  productRepo.ProductRepository
	Assets    ghostwriterRepo.GhostwriterRepository
	Logger    *zap.Logger
}

func NewGhostwriterService(gen intelligence.TextGenerator, p *prompts.Service, products productRepo.ProductRepository, assets ghostwriterRepo.GhostwriterRepository, logger *zap.Logger) *DefaultGhostwriterService {
	return &DefaultGhostwriterService{Generator: gen, Prompts: p, Products: products, Assets: assets, Logger: logger}
}

// instruction builds the user prompt for one asset type.
func instruction(assetType models.AssetType, product *models.Product) (string, bool) {
	title, niche := product.ProductTitle, product.Niche
	switch assetType {
	case models.AssetSalesPage:
		return fmt.Sprintf(`Create a compelling long-form sales page (12 sections) for the digital product "%s" about %s. Include: headline, problem, solution, features, benefits, testimonials, guarantee, pricing, FAQ, urgency, CTA, and PS.`, title, niche), true
	case models.AssetEmailSequence:
		return fmt.Sprintf(`Create a 7-email launch sequence for "%s" about %s. Format as JSON array with "day", "subject", and "body" fields.`, title, niche), true
	case models.AssetVideoScripts:
		return fmt.Sprintf(`Create 3 short video scripts (30-60 seconds each) promoting "%s" about %s. Format as JSON array with "title" and "script" fields.`, title, niche), true
	case models.AssetSocialContent:
		return fmt.Sprintf(`Create 3 social media captions and 1 Twitter thread (10 tweets) for "%s" about %s. Format as JSON with "captions" array and "thread" array.`, title, niche), true
	default:
		return "", false
	}
}

// GenerateAsset writes assetType for the token's current product and
// replaces any earlier version of that asset.
func (s *DefaultGhostwriterService) GenerateAsset(ctx context.Context, token string, assetType models.AssetType) (string, error) {
	if token == "" {
		return "", utils.ErrTokenRequired
	}
	if !assetType.Valid() {
		return "", utils.ErrInvalidAssetType
	}

	product := s.Products.History(ctx, token).Current()
	if product == nil {
		return "", utils.ErrNoProduct
	}
	userPrompt, _ := instruction(assetType, product)

	messages := []models.ChatMessage{
		models.SystemMessage(s.Prompts.System(ctx, models.StageGhostwriter)),
		models.UserMessage(userPrompt),
	}
	content, err := s.Generator.GenerateText(ctx, messages, assetTemperature)
	if err != nil {
		return "", err
	}

	record := s.Assets.Get(ctx, token)
	record.Assets[assetType] = content
	record.ProductTitle = product.ProductTitle
	record.LastUpdated = models.Now()
	if err := s.Assets.Save(ctx, token, record); err != nil {
		return "", fmt.Errorf("save %s: %w", assetType, err)
	}

	s.Logger.Info("ghostwriter: asset stored",
		zap.String("assetType", string(assetType)),
		zap.String("productID", product.ID))
	return content, nil
}

// Get returns the token's stored assets.
func (s *DefaultGhostwriterService) Get(ctx context.Context, token string) models.GhostwriterRecord {
	return s.Assets.Get(ctx, token)
}
