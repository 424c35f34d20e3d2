package services

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/Fosberg-codex/AI-Models-Base/internal/database"
	"github.com/Fosberg-codex/AI-Models-Base/internal/models"
	"github.com/Fosberg-codex/AI-Models-Base/internal/registry"
)

const (
	ModelCacheKeyPrefix = "model:id:"
	ModelCacheDuration  = 24 * time.Hour
)

// Registry is the authoritative store, initialized at process start.
// The redis cache in front of GetModel is strictly read-side: every write
// goes to the registry and invalidates the cached copy.
var Registry = registry.New()

// CreateModel validates and stores a new model, returning the stored record.
func CreateModel(in registry.CreateInput) (*models.AIModel, error) {
	id, err := Registry.Create(in)
	if err != nil {
		return nil, err
	}

	m, _ := Registry.Get(id)
	return &m, nil
}

// GetModel retrieves a model by id, using cache. The bool reports presence.
func GetModel(id uint64) (*models.AIModel, bool) {
	cacheKey := modelCacheKey(id)

	// Try cache
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var m models.AIModel
			if err := json.Unmarshal([]byte(val), &m); err == nil {
				return &m, true
			}
		}
	}

	m, ok := Registry.Get(id)
	if !ok {
		return nil, false
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(m); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, ModelCacheDuration)
		}
	}

	return &m, true
}

// UpdateModel applies a partial update to an existing model.
func UpdateModel(id uint64, p registry.Patch) error {
	if err := Registry.Update(id, p); err != nil {
		return err
	}

	invalidateModelCache(id)
	return nil
}

// DeleteModel removes a model. Its id is never reused.
func DeleteModel(id uint64) error {
	if err := Registry.Delete(id); err != nil {
		return err
	}

	invalidateModelCache(id)
	return nil
}

// ListModels returns every stored model.
func ListModels() []models.AIModel {
	return Registry.List()
}

// SearchModelsByType returns the models with the given type.
func SearchModelsByType(t models.ModelType) []models.AIModel {
	return Registry.SearchByType(t)
}

// SearchModelsByTag returns the models tagged with the given tag.
func SearchModelsByTag(tag string) []models.AIModel {
	return Registry.SearchByTag(tag)
}

func modelCacheKey(id uint64) string {
	return ModelCacheKeyPrefix + strconv.FormatUint(id, 10)
}

func invalidateModelCache(id uint64) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, modelCacheKey(id))
	}
}
