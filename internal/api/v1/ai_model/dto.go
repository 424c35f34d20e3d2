package ai_model

import (
	"github.com/Fosberg-codex/AI-Models-Base/internal/models"
)

// CreateModelRequest carries every model field a submitter can set.
// Name and Link are validated by the registry itself so their error messages
// stay uniform across transports; the enum fields are constrained at the
// binding layer.
type CreateModelRequest struct {
	Name               string                     `json:"name"`
	Description        string                     `json:"description"`
	Link               string                     `json:"link"`
	SubmitterName      string                     `json:"submitter_name"`
	SubmitterLink      string                     `json:"submitter_link"`
	ModelType          models.ModelType           `json:"model_type" binding:"required,oneof=Tabular ComputerVision NLP LLM VisionModel AudioModel Agents"`
	Complexity         models.ModelComplexity     `json:"complexity" binding:"required,oneof=Beginner Intermediate Advanced Research"`
	LicenseType        models.LicenseType         `json:"license_type" binding:"required,oneof=OpenSource Commercial Academic ResearchOnly"`
	Tags               []string                   `json:"tags"`
	GithubStars        *uint                      `json:"github_stars"`
	PaperLink          *string                    `json:"paper_link"`
	FrameworkUsed      *string                    `json:"framework_used"`
	PerformanceMetrics *models.PerformanceMetrics `json:"performance_metrics"`
}

// UpdateModelRequest is a patch: absent keys leave the stored field alone.
// The four optional model fields accept an explicit null to clear the value;
// the plain fields can only be replaced.
type UpdateModelRequest struct {
	Name          *string                 `json:"name"`
	Description   *string                 `json:"description"`
	Link          *string                 `json:"link"`
	SubmitterName *string                 `json:"submitter_name"`
	SubmitterLink *string                 `json:"submitter_link"`
	ModelType     *models.ModelType       `json:"model_type" binding:"omitempty,oneof=Tabular ComputerVision NLP LLM VisionModel AudioModel Agents"`
	Complexity    *models.ModelComplexity `json:"complexity" binding:"omitempty,oneof=Beginner Intermediate Advanced Research"`
	LicenseType   *models.LicenseType     `json:"license_type" binding:"omitempty,oneof=OpenSource Commercial Academic ResearchOnly"`
	Tags          *[]string               `json:"tags"`

	GithubStars        models.Optional[uint]                      `json:"github_stars"`
	PaperLink          models.Optional[string]                    `json:"paper_link"`
	FrameworkUsed      models.Optional[string]                    `json:"framework_used"`
	PerformanceMetrics models.Optional[models.PerformanceMetrics] `json:"performance_metrics"`
}

type ModelListResponse struct {
	Models []models.AIModel `json:"models"`
	Total  int              `json:"total"`
}
