// Package prompts resolves the system prompt of each pipeline stage from the
// administrator's overrides, falling back to built-in defaults.
package prompts

import (
	"context"
	"fmt"

	promptRepo "digitalmindset/database/repository/prompt"
	"digitalmindset/models"
	"digitalmindset/utils"
)

// Defaults holds the built-in system prompt of every stage.
var Defaults = map[models.PromptStage]string{
	models.StageNiches:      "You are an expert in identifying profitable digital product niches.",
	models.StageTOC:         "You are an expert content strategist creating comprehensive digital products.",
	models.StageChapters:    "You are an expert writer creating engaging, valuable content.",
	models.StageGhostwriter: "You are an expert copywriter and marketing strategist.",
	models.StageMentor:      "You are an experienced digital business mentor and coach who helps entrepreneurs succeed.",
}

// DefaultPlanPrompt is used for the 90-day plan when no mentor override exists.
const DefaultPlanPrompt = "You are an experienced digital business mentor and coach."

type Service struct {
	Repo promptRepo.PromptRepository
}

func NewService(repo promptRepo.PromptRepository) *Service {
	return &Service{Repo: repo}
}

// System returns the override for stage, or its default.
func (s *Service) System(ctx context.Context, stage models.PromptStage) string {
	return s.SystemOr(ctx, stage, Defaults[stage])
}

// SystemOr returns the override for stage, or fallback. An empty override
// counts as absent.
func (s *Service) SystemOr(ctx context.Context, stage models.PromptStage, fallback string) string {
	if p := s.Repo.Overrides(ctx)[stage]; p != "" {
		return p
	}
	return fallback
}

// Get returns the stored overrides only.
func (s *Service) Get(ctx context.Context) models.PromptOverrides {
	return s.Repo.Overrides(ctx)
}

// Effective returns the prompt in force for every stage.
func (s *Service) Effective(ctx context.Context) models.PromptOverrides {
	out := models.PromptOverrides{}
	for stage, text := range Defaults {
		out[stage] = text
	}
	for stage, text := range s.Repo.Overrides(ctx) {
		if text != "" {
			out[stage] = text
		}
	}
	return out
}

// Set replaces the stored overrides. Unknown stage keys are rejected.
func (s *Service) Set(ctx context.Context, overrides models.PromptOverrides) error {
	for stage := range overrides {
		if !stage.Valid() {
			return utils.NewValidationError(fmt.Sprintf("Unknown prompt stage %q", stage))
		}
	}
	return s.Repo.SaveOverrides(ctx, overrides)
}
