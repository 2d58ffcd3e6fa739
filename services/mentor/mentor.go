// Package mentor runs the advisory chat and the 90-day plan for a token.
package mentor

import (
	"context"
	"fmt"
	"strings"

	mentorRepo "digitalmindset/database/repository/mentor"
	productRepo "digitalmindset/database/repository/product"
	"digitalmindset/models"
	"digitalmindset/services/intelligence"
	"digitalmindset/services/prompts"
	"digitalmindset/utils"

	"go.uber.org/zap"
)

const (
	chatTemperature = 0.7
	planTemperature = 0.6
)

type MentorService interface {
	Respond(ctx context.Context, token, message string) (string, error)
	GeneratePlan(ctx context.Context, token string) (string, error)
	History(ctx context.Context, token string) models.MentorRecord
}

type DefaultMentorService struct {
	Generator intelligence.TextGenerator
	Prompts   *prompts.Service
	Products  productRepo.ProductRepository
	Sessions  mentorRepo.MentorRepository
	Logger    *zap.Logger
}

func NewMentorService(gen intelligence.TextGenerator, p *prompts.Service, products productRepo.ProductRepository, sessions mentorRepo.MentorRepository, logger *zap.Logger) *DefaultMentorService {
	return &DefaultMentorService{Generator: gen, Prompts: p, Products: products, Sessions: sessions, Logger: logger}
}

// Respond answers message and appends the exchange to the token's log. The
// current product, if any, is named in the system prompt.
func (s *DefaultMentorService) Respond(ctx context.Context, token, message string) (string, error) {
	if token == "" {
		return "", utils.ErrTokenRequired
	}
	if strings.TrimSpace(message) == "" {
		return "", utils.NewValidationError("Message is required")
	}

	system := s.Prompts.System(ctx, models.StageMentor)
	if product := s.Products.History(ctx, token).Current(); product != nil {
		system += fmt.Sprintf("\n\nContext: The user has created a digital product titled \"%s\" in the %s niche.", product.ProductTitle, product.Niche)
	}

	messages := []models.ChatMessage{
		models.SystemMessage(system),
		models.UserMessage(message),
	}
	response, err := s.Generator.GenerateText(ctx, messages, chatTemperature)
	if err != nil {
		return "", err
	}

	record := s.Sessions.Get(ctx, token)
	record.Conversations = append(record.Conversations, models.MentorExchange{
		Timestamp:      models.Now(),
		UserMessage:    message,
		MentorResponse: response,
	})
	if err := s.Sessions.Save(ctx, token, record); err != nil {
		return "", fmt.Errorf("save conversation: %w", err)
	}

	s.Logger.Debug("mentor: exchange stored", zap.Int("conversationLength", len(record.Conversations)))
	return response, nil
}

// GeneratePlan writes a 90-day plan for the current product, replacing any
// previous plan.
func (s *DefaultMentorService) GeneratePlan(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", utils.ErrTokenRequired
	}
	product := s.Products.History(ctx, token).Current()
	if product == nil {
		return "", utils.ErrNoProduct
	}

	messages := []models.ChatMessage{
		models.SystemMessage(s.Prompts.SystemOr(ctx, models.StageMentor, prompts.DefaultPlanPrompt)),
		models.UserMessage(fmt.Sprintf(`Create a detailed 90-day business plan for launching and growing "%s" in the %s niche. Break it down into weekly goals and actions. Format as JSON with "weeks" array, each containing "week", "focus", and "actions" array.`,
			product.ProductTitle, product.Niche)),
	}
	plan, err := s.Generator.GenerateText(ctx, messages, planTemperature)
	if err != nil {
		return "", err
	}

	record := s.Sessions.Get(ctx, token)
	record.Plan90Days = plan
	record.PlanCreatedAt = models.Now()
	if err := s.Sessions.Save(ctx, token, record); err != nil {
		return "", fmt.Errorf("save plan: %w", err)
	}

	s.Logger.Info("mentor: plan stored", zap.String("productID", product.ID))
	return plan, nil
}

// History returns the token's conversation log and current plan.
func (s *DefaultMentorService) History(ctx context.Context, token string) models.MentorRecord {
	return s.Sessions.Get(ctx, token)
}
