package ai_model

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Fosberg-codex/AI-Models-Base/internal/models"
	"github.com/Fosberg-codex/AI-Models-Base/internal/registry"
	"github.com/Fosberg-codex/AI-Models-Base/internal/services"
	"github.com/Fosberg-codex/AI-Models-Base/internal/utils"
)

// CreateModel godoc
// @Summary Create a new AI model
// @Description Register a new AI model record. Name and link are required.
// @Tags models
// @Accept json
// @Produce json
// @Param request body CreateModelRequest true "Model details"
// @Success 201 {object} utils.Response{data=models.AIModel}
// @Failure 400 {object} utils.Response
// @Router /models [post]
func CreateModel(c *gin.Context) {
	var req CreateModelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	m, err := services.CreateModel(registry.CreateInput{
		Name:               req.Name,
		Description:        req.Description,
		Link:               req.Link,
		SubmitterName:      req.SubmitterName,
		SubmitterLink:      req.SubmitterLink,
		ModelType:          req.ModelType,
		Complexity:         req.Complexity,
		LicenseType:        req.LicenseType,
		Tags:               req.Tags,
		GithubStars:        req.GithubStars,
		PaperLink:          req.PaperLink,
		FrameworkUsed:      req.FrameworkUsed,
		PerformanceMetrics: req.PerformanceMetrics,
	})
	if err != nil {
		var emptyField *registry.EmptyFieldError
		if errors.As(err, &emptyField) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create model"))
		return
	}

	zap.L().Info("model created", zap.Uint64("id", m.ID), zap.String("name", m.Name))

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Model created successfully", m))
}

// GetModel godoc
// @Summary Get an AI model by id
// @Tags models
// @Produce json
// @Param id path int true "Model ID"
// @Success 200 {object} utils.Response{data=models.AIModel}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /models/{id} [get]
func GetModel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, found := services.GetModel(id)
	if !found {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, registry.ErrNotFound.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", m))
}

// UpdateModel godoc
// @Summary Update an AI model
// @Description Partially update a model. Only the supplied fields change;
// @Description github_stars, paper_link, framework_used and
// @Description performance_metrics accept an explicit null to clear them.
// @Tags models
// @Accept json
// @Produce json
// @Param id path int true "Model ID"
// @Param request body UpdateModelRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=models.AIModel}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /models/{id} [patch]
func UpdateModel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateModelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	err := services.UpdateModel(id, registry.Patch{
		Name:               req.Name,
		Description:        req.Description,
		Link:               req.Link,
		SubmitterName:      req.SubmitterName,
		SubmitterLink:      req.SubmitterLink,
		ModelType:          req.ModelType,
		Complexity:         req.Complexity,
		LicenseType:        req.LicenseType,
		Tags:               req.Tags,
		GithubStars:        req.GithubStars,
		PaperLink:          req.PaperLink,
		FrameworkUsed:      req.FrameworkUsed,
		PerformanceMetrics: req.PerformanceMetrics,
	})
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update model"))
		return
	}

	m, _ := services.GetModel(id)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Model updated successfully", m))
}

// DeleteModel godoc
// @Summary Delete an AI model
// @Description Remove a model. The id is never reassigned to a later model.
// @Tags models
// @Produce json
// @Param id path int true "Model ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /models/{id} [delete]
func DeleteModel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteModel(id); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete model"))
		return
	}

	zap.L().Info("model deleted", zap.Uint64("id", id))

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Model deleted successfully", nil))
}

// ListModels godoc
// @Summary List all AI models
// @Tags models
// @Produce json
// @Success 200 {object} utils.Response{data=ModelListResponse}
// @Router /models [get]
func ListModels(c *gin.Context) {
	list := services.ListModels()
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ModelListResponse{
		Models: list,
		Total:  len(list),
	}))
}

// SearchModelsByType godoc
// @Summary Search AI models by model type
// @Tags models
// @Produce json
// @Param type query string true "Model type"
// @Success 200 {object} utils.Response{data=ModelListResponse}
// @Failure 400 {object} utils.Response
// @Router /models/search/type [get]
func SearchModelsByType(c *gin.Context) {
	modelType := models.ModelType(c.Query("type"))
	if !modelType.Valid() {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid model type"))
		return
	}

	list := services.SearchModelsByType(modelType)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ModelListResponse{
		Models: list,
		Total:  len(list),
	}))
}

// SearchModelsByTag godoc
// @Summary Search AI models by tag
// @Description Exact, case-sensitive tag match.
// @Tags models
// @Produce json
// @Param tag query string true "Tag"
// @Success 200 {object} utils.Response{data=ModelListResponse}
// @Failure 400 {object} utils.Response
// @Router /models/search/tag [get]
func SearchModelsByTag(c *gin.Context) {
	tag := c.Query("tag")
	if tag == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Tag is required"))
		return
	}

	list := services.SearchModelsByTag(tag)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ModelListResponse{
		Models: list,
		Total:  len(list),
	}))
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid model ID"))
		return 0, false
	}
	return id, true
}
