package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrireco/go-reco-engine/config"
	"github.com/nutrireco/go-reco-engine/internal/engine"
	"github.com/nutrireco/go-reco-engine/model"
	"github.com/nutrireco/go-reco-engine/services"
)

type stubFetcher struct {
	rows []model.Row
	err  error
}

func (f *stubFetcher) Fetch(_ context.Context, _ string, _, _ int) ([]model.Row, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.rows, len(f.rows), nil
}

func setupTestRouter(t *testing.T, fetcher services.Fetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if fetcher == nil {
		fetcher = &stubFetcher{rows: []model.Row{
			{"PRDLST_NM": "고함량 비타민C", "BSSH_NM": "회사A"},
			{"PRDLST_NM": "멜라토닌 수면엔", "BSSH_NM": "회사B"},
		}}
	}

	eng := engine.NewEngine(t.TempDir(), config.DefaultProfiles(), fetcher)
	router := gin.New()
	SetupRoutes(router, eng)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func buildTestDataset(t *testing.T, router *gin.Engine, name string) {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/datasets", services.BuildRequest{
		Name: name, ServiceID: "C003", StartIdx: 1, EndIdx: 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, "dataset build failed: %s", w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := performRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestMiddleware(t *testing.T) {
	router := setupTestRouter(t, nil)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/datasets", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "GET, POST, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		body := append([]byte(`{"name":"`), bytes.Repeat([]byte("a"), maxRequestBodySize+1)...)
		req := httptest.NewRequest(http.MethodPost, "/datasets", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfileEndpoints(t *testing.T) {
	router := setupTestRouter(t, nil)

	t.Run("list profiles", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/profiles", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "supplement")
		assert.Contains(t, w.Body.String(), "gut")
	})

	t.Run("get profile", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/profiles/supplement", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "vitamin_c")
	})

	t.Run("unknown profile", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/profiles/herbal", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "PROFILE_NOT_FOUND")
	})

	t.Run("list needs", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/profiles/supplement/needs", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "fatigue")
		assert.Contains(t, w.Body.String(), "sleep")
	})
}

func TestBuildDatasetHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := setupTestRouter(t, nil)
		w := performRequest(router, http.MethodPost, "/datasets", services.BuildRequest{
			Name: "c003", ServiceID: "C003", StartIdx: 1, EndIdx: 10,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "created successfully")
	})

	t.Run("missing name", func(t *testing.T) {
		router := setupTestRouter(t, nil)
		w := performRequest(router, http.MethodPost, "/datasets", services.BuildRequest{ServiceID: "C003"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		router := setupTestRouter(t, nil)
		buildTestDataset(t, router, "c003")
		w := performRequest(router, http.MethodPost, "/datasets", services.BuildRequest{
			Name: "c003", ServiceID: "C003", StartIdx: 1, EndIdx: 10,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "DATASET_ALREADY_EXISTS")
	})

	t.Run("unknown profile", func(t *testing.T) {
		router := setupTestRouter(t, nil)
		w := performRequest(router, http.MethodPost, "/datasets", services.BuildRequest{
			Name: "x", ServiceID: "C003", StartIdx: 1, EndIdx: 10, Profile: "herbal",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecommendHandler(t *testing.T) {
	router := setupTestRouter(t, nil)
	buildTestDataset(t, router, "c003")

	t.Run("success", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/datasets/c003/_recommend", services.RecommendRequest{
			Need: "sleep", TopN: 5,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var rec model.Recommendation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, "sleep", rec.Need)
		require.NotEmpty(t, rec.Items)
		assert.Equal(t, "멜라토닌 수면엔", rec.Items[0].Meta["PRDLST_NM"])
		assert.NotEmpty(t, rec.QueryID)
	})

	t.Run("unknown need", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/datasets/c003/_recommend", services.RecommendRequest{
			Need: "nonexistent",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "UNKNOWN_NEED")
	})

	t.Run("missing dataset", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/datasets/nope/_recommend", services.RecommendRequest{
			Need: "sleep",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing need", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/datasets/c003/_recommend", services.RecommendRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDatasetLifecycleHandlers(t *testing.T) {
	router := setupTestRouter(t, nil)
	buildTestDataset(t, router, "c003")

	t.Run("list", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/datasets", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "c003")
	})

	t.Run("get", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/datasets/c003", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "keyword_keys")
	})

	t.Run("report", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/datasets/c003/report", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rep model.ValidationReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
		assert.True(t, rep.MetaAligned)
	})

	t.Run("delete", func(t *testing.T) {
		w := performRequest(router, http.MethodDelete, "/datasets/c003", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(router, http.MethodDelete, "/datasets/c003", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
