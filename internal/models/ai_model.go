package models

import "time"

type ModelType string

const (
	ModelTypeTabular        ModelType = "Tabular"
	ModelTypeComputerVision ModelType = "ComputerVision"
	ModelTypeNLP            ModelType = "NLP"
	ModelTypeLLM            ModelType = "LLM"
	ModelTypeVisionModel    ModelType = "VisionModel"
	ModelTypeAudioModel     ModelType = "AudioModel"
	ModelTypeAgents         ModelType = "Agents"
)

type ModelComplexity string

const (
	ComplexityBeginner     ModelComplexity = "Beginner"
	ComplexityIntermediate ModelComplexity = "Intermediate"
	ComplexityAdvanced     ModelComplexity = "Advanced"
	ComplexityResearch     ModelComplexity = "Research"
)

type LicenseType string

const (
	LicenseOpenSource   LicenseType = "OpenSource"
	LicenseCommercial   LicenseType = "Commercial"
	LicenseAcademic     LicenseType = "Academic"
	LicenseResearchOnly LicenseType = "ResearchOnly"
)

// Valid reports whether t is one of the known model types.
func (t ModelType) Valid() bool {
	switch t {
	case ModelTypeTabular, ModelTypeComputerVision, ModelTypeNLP, ModelTypeLLM,
		ModelTypeVisionModel, ModelTypeAudioModel, ModelTypeAgents:
		return true
	}
	return false
}

// PerformanceMetrics holds the optional benchmark figures a submitter may
// attach to a model. Every field is optional.
type PerformanceMetrics struct {
	Accuracy     *float64 `json:"accuracy,omitempty"`
	TrainingTime *string  `json:"training_time,omitempty"`
	ModelSize    *string  `json:"model_size,omitempty"`
}

// AIModel is one registry entry. ID and PublishedDate are assigned at
// creation and never change afterwards.
type AIModel struct {
	ID                 uint64              `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Link               string              `json:"link"`
	SubmitterName      string              `json:"submitter_name"`
	SubmitterLink      string              `json:"submitter_link"`
	ModelType          ModelType           `json:"model_type"`
	Complexity         ModelComplexity     `json:"complexity"`
	LicenseType        LicenseType         `json:"license_type"`
	Tags               []string            `json:"tags"`
	GithubStars        *uint               `json:"github_stars,omitempty"`
	PaperLink          *string             `json:"paper_link,omitempty"`
	FrameworkUsed      *string             `json:"framework_used,omitempty"`
	PerformanceMetrics *PerformanceMetrics `json:"performance_metrics,omitempty"`
	PublishedDate      time.Time           `json:"published_date"`
}
