package ai_model_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Fosberg-codex/AI-Models-Base/internal/api/v1/ai_model"
	"github.com/Fosberg-codex/AI-Models-Base/internal/database"
	"github.com/Fosberg-codex/AI-Models-Base/internal/models"
	"github.com/Fosberg-codex/AI-Models-Base/internal/registry"
	"github.com/Fosberg-codex/AI-Models-Base/internal/services"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	services.Registry = registry.New()
	database.RedisClient = nil

	router := gin.New()
	v1 := router.Group("/api/v1")
	ai_model.RegisterRoutes(v1)
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"name":           "GPT-4",
		"description":    "Large language model",
		"link":           "https://example.com/gpt4",
		"submitter_name": "alice",
		"model_type":     "LLM",
		"complexity":     "Advanced",
		"license_type":   "Commercial",
		"tags":           []string{"llm", "chat"},
	}
}

type modelEnvelope struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Data    models.AIModel `json:"data"`
}

type listEnvelope struct {
	Status int                        `json:"status"`
	Data   ai_model.ModelListResponse `json:"data"`
}

func TestCreateModel(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(body map[string]interface{})
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid request",
			mutate:         func(map[string]interface{}) {},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Model created successfully",
		},
		{
			name:           "empty name",
			mutate:         func(b map[string]interface{}) { b["name"] = "" },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "'Model Name' cannot be empty",
		},
		{
			name: "empty name and link reports name first",
			mutate: func(b map[string]interface{}) {
				b["name"] = ""
				b["link"] = ""
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "'Model Name' cannot be empty",
		},
		{
			name:           "empty link",
			mutate:         func(b map[string]interface{}) { b["link"] = "" },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "'Model Link/URL' cannot be empty",
		},
		{
			name:           "unknown model type",
			mutate:         func(b map[string]interface{}) { b["model_type"] = "Quantum" },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request parameters",
		},
		{
			name:           "missing complexity",
			mutate:         func(b map[string]interface{}) { delete(b, "complexity") },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter()

			body := validCreateBody()
			tt.mutate(body)

			w := doRequest(router, http.MethodPost, "/api/v1/models", body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp modelEnvelope
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)

			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, uint64(1), resp.Data.ID)
				assert.Equal(t, "GPT-4", resp.Data.Name)
				assert.Equal(t, models.ModelTypeLLM, resp.Data.ModelType)
				assert.False(t, resp.Data.PublishedDate.IsZero())
			}
		})
	}
}

func TestCreateModelAssignsSequentialIDs(t *testing.T) {
	router := setupRouter()

	for i := 1; i <= 3; i++ {
		w := doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp modelEnvelope
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, uint64(i), resp.Data.ID)
	}

	// Ids survive deletions without reuse
	w := doRequest(router, http.MethodDelete, "/api/v1/models/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())
	var resp modelEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, uint64(4), resp.Data.ID)
}

func TestGetModel(t *testing.T) {
	router := setupRouter()
	doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())

	w := doRequest(router, http.MethodGet, "/api/v1/models/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp modelEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "GPT-4", resp.Data.Name)
	assert.Equal(t, []string{"llm", "chat"}, resp.Data.Tags)

	w = doRequest(router, http.MethodGet, "/api/v1/models/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Model not found")

	w = doRequest(router, http.MethodGet, "/api/v1/models/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid model ID")
}

func TestUpdateModel(t *testing.T) {
	router := setupRouter()
	doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())

	// Replace one plain field, leave the rest alone
	w := doRequest(router, http.MethodPatch, "/api/v1/models/1", map[string]interface{}{
		"name": "GPT-4 Turbo",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp modelEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "GPT-4 Turbo", resp.Data.Name)
	assert.Equal(t, "https://example.com/gpt4", resp.Data.Link)
	assert.Equal(t, models.ModelTypeLLM, resp.Data.ModelType)
	assert.Equal(t, uint64(1), resp.Data.ID)

	// Set an optional field, then clear it with an explicit null
	w = doRequest(router, http.MethodPatch, "/api/v1/models/1", map[string]interface{}{
		"github_stars": 4200,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NotNil(t, resp.Data.GithubStars)
	assert.Equal(t, uint(4200), *resp.Data.GithubStars)

	w = doRequest(router, http.MethodPatch, "/api/v1/models/1", map[string]interface{}{
		"github_stars": nil,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	resp = modelEnvelope{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, resp.Data.GithubStars)

	// Unknown id
	w = doRequest(router, http.MethodPatch, "/api/v1/models/99", map[string]interface{}{
		"name": "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Model not found")

	// Invalid enum value is rejected at the binding layer
	w = doRequest(router, http.MethodPatch, "/api/v1/models/1", map[string]interface{}{
		"model_type": "Quantum",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteModel(t *testing.T) {
	router := setupRouter()
	doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())

	w := doRequest(router, http.MethodDelete, "/api/v1/models/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/models/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/models/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Model not found")
}

func TestListModels(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/v1/models", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp listEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 0, resp.Data.Total)
	assert.Empty(t, resp.Data.Models)

	for i := 0; i < 3; i++ {
		doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())
	}
	doRequest(router, http.MethodDelete, "/api/v1/models/2", nil)

	w = doRequest(router, http.MethodGet, "/api/v1/models", nil)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, uint64(1), resp.Data.Models[0].ID)
	assert.Equal(t, uint64(3), resp.Data.Models[1].ID)
}

func TestSearchModelsByType(t *testing.T) {
	router := setupRouter()

	doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())

	visionBody := validCreateBody()
	visionBody["name"] = "ResNet"
	visionBody["model_type"] = "ComputerVision"
	visionBody["tags"] = []string{"vision"}
	doRequest(router, http.MethodPost, "/api/v1/models", visionBody)

	w := doRequest(router, http.MethodGet, "/api/v1/models/search/type?type=LLM", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp listEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "GPT-4", resp.Data.Models[0].Name)

	w = doRequest(router, http.MethodGet, "/api/v1/models/search/type?type=Agents", nil)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 0, resp.Data.Total)

	w = doRequest(router, http.MethodGet, "/api/v1/models/search/type?type=Quantum", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid model type")
}

func TestSearchModelsByTag(t *testing.T) {
	router := setupRouter()

	doRequest(router, http.MethodPost, "/api/v1/models", validCreateBody())

	other := validCreateBody()
	other["name"] = "BERT"
	other["model_type"] = "NLP"
	other["tags"] = []string{"nlp", "LLM"}
	doRequest(router, http.MethodPost, "/api/v1/models", other)

	w := doRequest(router, http.MethodGet, "/api/v1/models/search/tag?tag=nlp", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp listEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "BERT", resp.Data.Models[0].Name)

	// Case-sensitive: "llm" tag is on the first model, "LLM" on the second
	w = doRequest(router, http.MethodGet, "/api/v1/models/search/tag?tag=llm", nil)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "GPT-4", resp.Data.Models[0].Name)

	w = doRequest(router, http.MethodGet, "/api/v1/models/search/tag", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tag is required")
}
