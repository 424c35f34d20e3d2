package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Fosberg-codex/AI-Models-Base/internal/models"
)

// Field titles used in validation error messages.
const (
	FieldTitleName = "Model Name"
	FieldTitleLink = "Model Link/URL"
)

// ErrNotFound is returned by Update and Delete when no record exists for the
// given id. The message is part of the API contract.
var ErrNotFound = errors.New("Model not found")

// EmptyFieldError reports a required text field that was empty on creation.
type EmptyFieldError struct {
	Title string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("'%s' cannot be empty", e.Title)
}

// CreateInput carries every record field a caller supplies on creation.
// ID and PublishedDate are assigned by the registry.
type CreateInput struct {
	Name               string
	Description        string
	Link               string
	SubmitterName      string
	SubmitterLink      string
	ModelType          models.ModelType
	Complexity         models.ModelComplexity
	LicenseType        models.LicenseType
	Tags               []string
	GithubStars        *uint
	PaperLink          *string
	FrameworkUsed      *string
	PerformanceMetrics *models.PerformanceMetrics
}

// Patch describes a partial update. A nil pointer on a plain field means
// "leave unchanged"; plain fields can only be replaced, never cleared.
// The four optional record fields use models.Optional so a caller can also
// explicitly clear them.
type Patch struct {
	Name          *string
	Description   *string
	Link          *string
	SubmitterName *string
	SubmitterLink *string
	ModelType     *models.ModelType
	Complexity    *models.ModelComplexity
	LicenseType   *models.LicenseType
	Tags          *[]string

	GithubStars        models.Optional[uint]
	PaperLink          models.Optional[string]
	FrameworkUsed      models.Optional[string]
	PerformanceMetrics models.Optional[models.PerformanceMetrics]
}

// Registry is the in-memory model store. All state lives behind one mutex:
// every operation is a single atomic transition and readers always observe
// fully written records.
type Registry struct {
	mu     sync.RWMutex
	models map[uint64]models.AIModel
	nextID uint64
}

// New returns an empty registry with the id counter at 1.
func New() *Registry {
	return &Registry{
		models: make(map[uint64]models.AIModel),
		nextID: 1,
	}
}

// Create validates the required fields, assigns the next id, stamps the
// publication time and stores the record. Ids are monotonically increasing
// and never reused, deletions included.
func (r *Registry) Create(in CreateInput) (uint64, error) {
	if in.Name == "" {
		return 0, &EmptyFieldError{Title: FieldTitleName}
	}
	if in.Link == "" {
		return 0, &EmptyFieldError{Title: FieldTitleLink}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.models[id] = cloneModel(models.AIModel{
		ID:                 id,
		Name:               in.Name,
		Description:        in.Description,
		Link:               in.Link,
		SubmitterName:      in.SubmitterName,
		SubmitterLink:      in.SubmitterLink,
		ModelType:          in.ModelType,
		Complexity:         in.Complexity,
		LicenseType:        in.LicenseType,
		Tags:               in.Tags,
		GithubStars:        in.GithubStars,
		PaperLink:          in.PaperLink,
		FrameworkUsed:      in.FrameworkUsed,
		PerformanceMetrics: in.PerformanceMetrics,
		PublishedDate:      time.Now(),
	})
	r.nextID++

	return id, nil
}

// Get looks up a record by id. The second return value reports presence;
// a missing id is not an error.
func (r *Registry) Get(id uint64) (models.AIModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[id]
	if !ok {
		return models.AIModel{}, false
	}
	return cloneModel(m), true
}

// Update applies a partial update to the record with the given id. Fields
// absent from the patch keep their stored value; ID and PublishedDate are
// never touched. On ErrNotFound no state changes.
//
// Name and Link are deliberately not re-checked for emptiness here, matching
// the behavior of the original registry.
func (r *Registry) Update(id uint64, p Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.models[id]
	if !ok {
		return ErrNotFound
	}

	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Link != nil {
		m.Link = *p.Link
	}
	if p.SubmitterName != nil {
		m.SubmitterName = *p.SubmitterName
	}
	if p.SubmitterLink != nil {
		m.SubmitterLink = *p.SubmitterLink
	}
	if p.ModelType != nil {
		m.ModelType = *p.ModelType
	}
	if p.Complexity != nil {
		m.Complexity = *p.Complexity
	}
	if p.LicenseType != nil {
		m.LicenseType = *p.LicenseType
	}
	if p.Tags != nil {
		m.Tags = *p.Tags
	}
	if p.GithubStars.Set {
		m.GithubStars = p.GithubStars.Value
	}
	if p.PaperLink.Set {
		m.PaperLink = p.PaperLink.Value
	}
	if p.FrameworkUsed.Set {
		m.FrameworkUsed = p.FrameworkUsed.Value
	}
	if p.PerformanceMetrics.Set {
		m.PerformanceMetrics = p.PerformanceMetrics.Value
	}

	r.models[id] = cloneModel(m)
	return nil
}

// Delete removes the record with the given id. The id is never handed out
// again by a later Create.
func (r *Registry) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[id]; !ok {
		return ErrNotFound
	}
	delete(r.models, id)
	return nil
}

// List returns a snapshot of every stored record, ordered by ascending id.
func (r *Registry) List() []models.AIModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(models.AIModel) bool { return true })
}

// SearchByType returns the records whose model type equals t, in id order.
func (r *Registry) SearchByType(t models.ModelType) []models.AIModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(m models.AIModel) bool { return m.ModelType == t })
}

// SearchByTag returns the records whose tag list contains tag. Matching is
// exact and case-sensitive.
func (r *Registry) SearchByTag(tag string) []models.AIModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(m models.AIModel) bool {
		for _, t := range m.Tags {
			if t == tag {
				return true
			}
		}
		return false
	})
}

// collect scans the whole map and returns clones of the matching records
// sorted by id. Callers must hold at least the read lock.
func (r *Registry) collect(match func(models.AIModel) bool) []models.AIModel {
	out := make([]models.AIModel, 0, len(r.models))
	for _, m := range r.models {
		if match(m) {
			out = append(out, cloneModel(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// cloneModel deep-copies a record so stored state never shares slices or
// pointers with caller-held values.
func cloneModel(m models.AIModel) models.AIModel {
	if m.Tags != nil {
		tags := make([]string, len(m.Tags))
		copy(tags, m.Tags)
		m.Tags = tags
	}
	if m.GithubStars != nil {
		v := *m.GithubStars
		m.GithubStars = &v
	}
	if m.PaperLink != nil {
		v := *m.PaperLink
		m.PaperLink = &v
	}
	if m.FrameworkUsed != nil {
		v := *m.FrameworkUsed
		m.FrameworkUsed = &v
	}
	if m.PerformanceMetrics != nil {
		pm := *m.PerformanceMetrics
		if pm.Accuracy != nil {
			v := *pm.Accuracy
			pm.Accuracy = &v
		}
		if pm.TrainingTime != nil {
			v := *pm.TrainingTime
			pm.TrainingTime = &v
		}
		if pm.ModelSize != nil {
			v := *pm.ModelSize
			pm.ModelSize = &v
		}
		m.PerformanceMetrics = &pm
	}
	return m
}
