package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ghostwriterRepo "digitalmindset/database/repository/ghostwriter"
	mentorRepo "digitalmindset/database/repository/mentor"
	productRepo "digitalmindset/database/repository/product"
	promptRepo "digitalmindset/database/repository/prompt"
	tokenRepo "digitalmindset/database/repository/token"
	"digitalmindset/database/store"
	"digitalmindset/handlers"
	"digitalmindset/models"
	"digitalmindset/services/admin"
	"digitalmindset/services/ghostwriter"
	"digitalmindset/services/intelligence"
	"digitalmindset/services/mentor"
	"digitalmindset/services/prompts"
	"digitalmindset/services/synthesis"
	"digitalmindset/services/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminPassword = "s3cret"

type server struct {
	engine   *gin.Engine
	gen      *intelligence.FakeGenerator
	products productRepo.ProductRepository
}

func newServer(t *testing.T, tokens []string, responses ...string) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	logger := zap.NewNop()
	gen := intelligence.NewFakeGenerator(responses...)
	products := productRepo.NewProductRepo(s, logger)
	p := prompts.NewService(promptRepo.NewPromptRepo(s, logger))
	tokenSvc := token.NewTokenService(tokenRepo.NewTokenRepo(s, logger), logger)
	for _, tok := range tokens {
		_, err := tokenSvc.Create(context.Background(), tok)
		require.NoError(t, err)
	}
	adminSvc, err := admin.NewAdminService(adminPassword, "", tokenSvc, products, logger)
	require.NoError(t, err)

	hb := handlers.NewHandlerBundle(
		tokenSvc,
		adminSvc,
		p,
		synthesis.NewSynthesisService(gen, p, products, logger),
		ghostwriter.NewGhostwriterService(gen, p, products, ghostwriterRepo.NewGhostwriterRepo(s, logger), logger),
		mentor.NewMentorService(gen, p, products, mentorRepo.NewMentorRepo(s, logger), logger),
	)

	r := gin.New()
	RegisterRoutes(r, hb, []string{"*"})
	return &server{engine: r, gen: gen, products: products}
}

func (s *server) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

var adminHeaders = map[string]string{"X-Admin-Password": adminPassword}

func TestVerifyTokenRoute(t *testing.T) {
	srv := newServer(t, []string{"ABC", "MASTER-1"})

	w := srv.do(t, http.MethodPost, "/api/verifyToken", gin.H{"token": "ABC", "deviceId": "dev-1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.VerifyResult](t, w)
	assert.True(t, res.Valid)
	assert.False(t, res.IsMaster)

	w = srv.do(t, http.MethodPost, "/api/verifyToken", gin.H{"token": "MASTER-1", "deviceId": "dev-1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.VerifyResult](t, w).IsMaster)

	w = srv.do(t, http.MethodPost, "/api/verifyToken", gin.H{"token": "ABC", "deviceId": "dev-2"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodPost, "/api/verifyToken", gin.H{"token": "nope", "deviceId": "dev-1"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodPost, "/api/verifyToken", gin.H{"deviceId": "dev-1"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerationRoutesRequireUsableToken(t *testing.T) {
	srv := newServer(t, []string{"ABC"}, `[{"title":"Keto","description":"Low carb"}]`)

	w := srv.do(t, http.MethodPost, "/api/generateNiches", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodPost, "/api/generateNiches", gin.H{"token": "unknown"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodPost, "/api/verifyToken", gin.H{"token": "ABC", "deviceId": "dev-1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodPost, "/api/generateNiches", gin.H{"token": "ABC", "deviceId": "dev-2"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, srv.gen.CallCount(), "rejected requests must not reach the generator")

	w = srv.do(t, http.MethodPost, "/api/generateNiches", nil, map[string]string{"X-Access-Token": "ABC", "X-Device-ID": "dev-1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, srv.gen.CallCount())
}

func TestProductPipelineOverHTTP(t *testing.T) {
	srv := newServer(t, []string{"ABC"},
		`[{"title":"Keto","description":"Low carb"}]`,
		"1. Getting Started\n2. Meal Plans",
		"Chapter one text",
	)
	auth := gin.H{"token": "ABC", "deviceId": "dev-1"}
	require.Equal(t, http.StatusOK, srv.do(t, http.MethodPost, "/api/verifyToken", auth, nil).Code)

	w := srv.do(t, http.MethodPost, "/api/generateNiches", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	niches := decode[struct {
		Niches []models.Niche `json:"niches"`
	}](t, w)
	require.Len(t, niches.Niches, 1)
	assert.Equal(t, "Keto", niches.Niches[0].Title)

	w = srv.do(t, http.MethodPost, "/api/generateTOC", gin.H{"token": "ABC", "deviceId": "dev-1", "niche": "Keto"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	toc := decode[models.TableOfContentsResponse](t, w)
	assert.Equal(t, "Keto Guide", toc.ProductTitle)
	assert.Equal(t, []models.TOCEntry{{Chapter: 1, Title: "Getting Started"}, {Chapter: 2, Title: "Meal Plans"}}, toc.TableOfContents)

	w = srv.do(t, http.MethodPost, "/api/generateChapter", gin.H{
		"token": "ABC", "deviceId": "dev-1", "niche": "Keto", "chapterTitle": "Getting Started", "chapterNumber": 1,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Chapter one text", decode[gin.H](t, w)["content"])

	w = srv.do(t, http.MethodGet, "/api/admin/products", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[map[string]models.ProductHistory](t, w)
	require.Len(t, all["ABC"], 1)
	product := all["ABC"][0]
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Keto", product.Niche)
	assert.Equal(t, "Chapter one text", product.Chapters[1].Content)
}

func TestArtifactRoutesNeedProduct(t *testing.T) {
	srv := newServer(t, []string{"ABC"}, "unused")
	auth := gin.H{"token": "ABC", "deviceId": "dev-1"}
	require.Equal(t, http.StatusOK, srv.do(t, http.MethodPost, "/api/verifyToken", auth, nil).Code)

	w := srv.do(t, http.MethodPost, "/api/generateGhostwriter", gin.H{"token": "ABC", "assetType": "salesPage"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodPost, "/api/generateGhostwriter", gin.H{"token": "ABC", "assetType": "poem"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodPost, "/api/generateMentorPlan", auth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, srv.gen.CallCount())

	w = srv.do(t, http.MethodGet, "/api/ghostwriter", nil, map[string]string{"X-Access-Token": "ABC"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.GhostwriterRecord](t, w).Assets)
}

func TestAdminRoutes(t *testing.T) {
	srv := newServer(t, []string{"ABC"}, `[]`)

	w := srv.do(t, http.MethodPost, "/api/admin/verifyPassword", gin.H{"password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = srv.do(t, http.MethodPost, "/api/admin/verifyPassword", gin.H{"password": adminPassword}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/api/admin/tokens", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = srv.do(t, http.MethodGet, "/api/admin/tokens", nil, map[string]string{"Authorization": "Bearer " + adminPassword})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.AccessToken](t, w), 1)

	w = srv.do(t, http.MethodPost, "/api/admin/tokens", gin.H{"token": "NEW"}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	w = srv.do(t, http.MethodPost, "/api/admin/tokens", gin.H{"token": "NEW"}, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodPut, "/api/admin/tokens/NEW", gin.H{"active": false}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	w = srv.do(t, http.MethodPost, "/api/generateNiches", gin.H{"token": "NEW"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodPut, "/api/admin/tokens/missing", gin.H{"active": true}, adminHeaders)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodDelete, "/api/admin/tokens/NEW", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	w = srv.do(t, http.MethodPost, "/api/generateNiches", gin.H{"token": "NEW"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminPromptRoutes(t *testing.T) {
	srv := newServer(t, nil)

	w := srv.do(t, http.MethodPut, "/api/admin/prompts", gin.H{"niches": "Be brief."}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/api/admin/prompts", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PromptOverrides{models.StageNiches: "Be brief."}, decode[models.PromptOverrides](t, w))

	w = srv.do(t, http.MethodGet, "/api/admin/prompts?effective=true", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	effective := decode[models.PromptOverrides](t, w)
	assert.Equal(t, "Be brief.", effective[models.StageNiches])
	assert.Equal(t, prompts.Defaults[models.StageTOC], effective[models.StageTOC])

	w = srv.do(t, http.MethodPut, "/api/admin/prompts", gin.H{"unknown": "x"}, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContainsWildcard(t *testing.T) {
	assert.True(t, containsWildcard([]string{"https://a.example", "*"}))
	assert.False(t, containsWildcard([]string{"https://a.example"}))
}
