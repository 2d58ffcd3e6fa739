package synthesis

import (
	"context"

	"digitalmindset/models"

	"go.uber.org/zap"
)

const nicheInstruction = `Generate 10 trending, profitable niches for digital products (eBooks, courses, guides). Format as a JSON array with objects containing "title" and "description" fields.`

// GenerateNiches asks for ten niche ideas. Nothing is persisted.
func (s *DefaultSynthesisService) GenerateNiches(ctx context.Context, token string) ([]models.Niche, error) {
	messages := []models.ChatMessage{
		models.SystemMessage(s.Prompts.System(ctx, models.StageNiches)),
		models.UserMessage(nicheInstruction),
	}
	raw, err := s.Generator.GenerateText(ctx, messages, nicheTemperature)
	if err != nil {
		return nil, err
	}

	parsed := ParseNiches(raw)
	s.Logger.Debug("synthesis: niches generated",
		zap.Int("count", len(parsed.Items)),
		zap.Stringer("source", parsed.Source))
	return parsed.Items, nil
}
