package handlers

import (
	"net/http"

	"digitalmindset/middleware"
	"digitalmindset/models"
	"digitalmindset/services/ghostwriter"
	"digitalmindset/services/mentor"
	"digitalmindset/utils"

	"github.com/gin-gonic/gin"
)

type ArtifactHandler struct {
	Ghostwriter ghostwriter.GhostwriterService
	Mentor      mentor.MentorService
}

func NewArtifactHandler(gw ghostwriter.GhostwriterService, m mentor.MentorService) *ArtifactHandler {
	return &ArtifactHandler{Ghostwriter: gw, Mentor: m}
}

type ghostwriterRequest struct {
	AssetType models.AssetType `json:"assetType"`
}

type mentorRequest struct {
	Message string `json:"message"`
}

func (h *ArtifactHandler) GenerateGhostwriterHandler(c *gin.Context) {
	var req ghostwriterRequest
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	content, err := h.Ghostwriter.GenerateAsset(c.Request.Context(), c.GetString(middleware.CtxToken), req.AssetType)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

func (h *ArtifactHandler) GetGhostwriterHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ghostwriter.Get(c.Request.Context(), c.GetString(middleware.CtxToken)))
}

func (h *ArtifactHandler) GenerateMentorResponseHandler(c *gin.Context) {
	var req mentorRequest
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	response, err := h.Mentor.Respond(c.Request.Context(), c.GetString(middleware.CtxToken), req.Message)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (h *ArtifactHandler) GenerateMentorPlanHandler(c *gin.Context) {
	plan, err := h.Mentor.GeneratePlan(c.Request.Context(), c.GetString(middleware.CtxToken))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *ArtifactHandler) GetMentorHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Mentor.History(c.Request.Context(), c.GetString(middleware.CtxToken)))
}
