// File: digitalmindset/handlers/bundle.go
package handlers

import (
	"digitalmindset/services/admin"
	"digitalmindset/services/ghostwriter"
	"digitalmindset/services/mentor"
	"digitalmindset/services/prompts"
	"digitalmindset/services/synthesis"
	"digitalmindset/services/token"
)

// HandlerBundle groups the endpoint handlers and what the routes need to
// build their middleware.
type HandlerBundle struct {
	TokenService token.TokenService
	AdminService admin.AdminService

	Token     *TokenHandler
	Synthesis *SynthesisHandler
	Artifacts *ArtifactHandler
	Admin     *AdminHandler
}

func NewHandlerBundle(
	tokens token.TokenService,
	adminSvc admin.AdminService,
	p *prompts.Service,
	syn synthesis.SynthesisService,
	gw ghostwriter.GhostwriterService,
	m mentor.MentorService,
) *HandlerBundle {
	return &HandlerBundle{
		TokenService: tokens,
		AdminService: adminSvc,
		Token:        NewTokenHandler(tokens),
		Synthesis:    NewSynthesisHandler(syn),
		Artifacts:    NewArtifactHandler(gw, m),
		Admin:        NewAdminHandler(adminSvc, p),
	}
}
