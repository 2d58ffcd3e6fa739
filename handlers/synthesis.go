package handlers

import (
	"net/http"

	"digitalmindset/middleware"
	"digitalmindset/services/synthesis"
	"digitalmindset/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SynthesisHandler struct {
	Synthesis synthesis.SynthesisService
}

func NewSynthesisHandler(svc synthesis.SynthesisService) *SynthesisHandler {
	return &SynthesisHandler{Synthesis: svc}
}

type tocRequest struct {
	Niche string `json:"niche"`
}

type chapterRequest struct {
	Niche         string `json:"niche"`
	ChapterTitle  string `json:"chapterTitle"`
	ChapterNumber int    `json:"chapterNumber"`
}

// bindBody decodes the JSON body cached by TokenAuthMiddleware. An empty body
// leaves req untouched.
func bindBody(c *gin.Context, req any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return utils.NewValidationError("Invalid request body")
	}
	return nil
}

func (h *SynthesisHandler) GenerateNichesHandler(c *gin.Context) {
	niches, err := h.Synthesis.GenerateNiches(c.Request.Context(), c.GetString(middleware.CtxToken))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"niches": niches})
}

func (h *SynthesisHandler) GenerateTOCHandler(c *gin.Context) {
	var req tocRequest
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	res, err := h.Synthesis.GenerateTableOfContents(c.Request.Context(), req.Niche, c.GetString(middleware.CtxToken))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SynthesisHandler) GenerateChapterHandler(c *gin.Context) {
	var req chapterRequest
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	content, err := h.Synthesis.GenerateChapter(c.Request.Context(), synthesis.ChapterRequest{
		Token:         c.GetString(middleware.CtxToken),
		Niche:         req.Niche,
		ChapterTitle:  req.ChapterTitle,
		ChapterNumber: req.ChapterNumber,
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}
