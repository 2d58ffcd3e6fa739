package cmd

import (
	"context"
	"fmt"

	"digitalmindset/config"
	"digitalmindset/database"
	ghostwriterRepo "digitalmindset/database/repository/ghostwriter"
	mentorRepo "digitalmindset/database/repository/mentor"
	productRepo "digitalmindset/database/repository/product"
	promptRepo "digitalmindset/database/repository/prompt"
	tokenRepo "digitalmindset/database/repository/token"
	"digitalmindset/database/store"
	"digitalmindset/services/admin"
	"digitalmindset/services/ghostwriter"
	"digitalmindset/services/intelligence"
	"digitalmindset/services/mentor"
	"digitalmindset/services/prompts"
	"digitalmindset/services/synthesis"
	"digitalmindset/services/token"
	"digitalmindset/utils"

	"go.uber.org/zap"
)

// openStore builds the record store selected by STORE_DRIVER.
func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "", "file":
		return store.NewFileStore(cfg.DataDir)
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(utils.GetStoreClient()), nil
	case "mongo":
		database.InitDB()
		return store.NewMongoStore(database.MongoClient, database.Database()), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// openGenerator builds the language model client selected by LLM_PROVIDER.
func openGenerator(ctx context.Context, cfg config.Config) (intelligence.TextGenerator, error) {
	switch cfg.LLMProvider {
	case "", "openai":
		if cfg.OpenAIAPIKey == "" {
			zap.L().Warn("OPENAI_API_KEY is empty, generation calls will fail")
		}
		return intelligence.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.LLMModel, cfg.LLMTimeout), nil
	case "gemini":
		model := cfg.LLMModel
		if model == "" || model == "gpt-4o-mini" {
			model = "gemini-1.5-flash"
		}
		return intelligence.NewGeminiClient(ctx, cfg.GeminiAPIKey, model)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

// services holds every wired service of the process.
type services struct {
	Store       store.Store
	Tokens      *token.DefaultTokenService
	Prompts     *prompts.Service
	Synthesis   *synthesis.DefaultSynthesisService
	Ghostwriter *ghostwriter.DefaultGhostwriterService
	Mentor      *mentor.DefaultMentorService
	Admin       *admin.DefaultAdminService
}

func buildServices(cfg config.Config, s store.Store, gen intelligence.TextGenerator, logger *zap.Logger) (*services, error) {
	products := productRepo.NewProductRepo(s, logger)
	tokens := token.NewTokenService(tokenRepo.NewTokenRepo(s, logger), logger.Named("token"))
	p := prompts.NewService(promptRepo.NewPromptRepo(s, logger))

	adminSvc, err := admin.NewAdminService(cfg.AdminPassword, cfg.AdminPasswordHash, tokens, products, logger.Named("admin"))
	if err != nil {
		return nil, err
	}

	return &services{
		Store:       s,
		Tokens:      tokens,
		Prompts:     p,
		Synthesis:   synthesis.NewSynthesisService(gen, p, products, logger.Named("synthesis")),
		Ghostwriter: ghostwriter.NewGhostwriterService(gen, p, products, ghostwriterRepo.NewGhostwriterRepo(s, logger), logger.Named("ghostwriter")),
		Mentor:      mentor.NewMentorService(gen, p, products, mentorRepo.NewMentorRepo(s, logger), logger.Named("mentor")),
		Admin:       adminSvc,
	}, nil
}
