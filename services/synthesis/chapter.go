package synthesis

import (
	"context"
	"fmt"

	"digitalmindset/models"
	"digitalmindset/utils"

	"go.uber.org/zap"
)

// GenerateChapter writes one chapter and stores it in the token's current
// product. With no product yet the text is still returned and nothing is
// stored.
func (s *DefaultSynthesisService) GenerateChapter(ctx context.Context, req ChapterRequest) (string, error) {
	if req.Token == "" {
		return "", utils.ErrTokenRequired
	}
	if req.ChapterNumber < 1 {
		return "", utils.NewValidationError("Chapter number must be positive")
	}

	messages := []models.ChatMessage{
		models.SystemMessage(s.Prompts.System(ctx, models.StageChapters)),
		models.UserMessage(fmt.Sprintf(`Write Chapter %d: "%s" for a digital product about "%s". Make it comprehensive, actionable, and valuable (approximately 3-4 pages worth of content). Include practical examples and tips.`,
			req.ChapterNumber, req.ChapterTitle, req.Niche)),
	}
	content, err := s.Generator.GenerateText(ctx, messages, chapterTemperature)
	if err != nil {
		return "", err
	}

	// The history is read after the upstream call returns, so the chapter
	// lands in whichever product is current at that moment.
	history := s.Products.History(ctx, req.Token)
	current := history.Current()
	if current == nil {
		s.Logger.Debug("synthesis: no product for chapter, not stored", zap.Int("chapter", req.ChapterNumber))
		return content, nil
	}
	current.Chapters[req.ChapterNumber] = models.Chapter{Title: req.ChapterTitle, Content: content}
	if err := s.Products.SaveHistory(ctx, req.Token, history); err != nil {
		return "", fmt.Errorf("save chapter: %w", err)
	}

	s.Logger.Info("synthesis: chapter stored",
		zap.String("productID", current.ID),
		zap.Int("chapter", req.ChapterNumber))
	return content, nil
}
