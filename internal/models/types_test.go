package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalAbsentKey(t *testing.T) {
	var patch struct {
		Stars Optional[uint] `json:"stars"`
	}

	err := json.Unmarshal([]byte(`{}`), &patch)
	assert.NoError(t, err)
	assert.False(t, patch.Stars.Set)
	assert.Nil(t, patch.Stars.Value)
}

func TestOptionalExplicitNull(t *testing.T) {
	var patch struct {
		Stars Optional[uint] `json:"stars"`
	}

	err := json.Unmarshal([]byte(`{"stars":null}`), &patch)
	assert.NoError(t, err)
	assert.True(t, patch.Stars.Set)
	assert.Nil(t, patch.Stars.Value)
}

func TestOptionalValue(t *testing.T) {
	var patch struct {
		Stars Optional[uint]   `json:"stars"`
		Paper Optional[string] `json:"paper"`
	}

	err := json.Unmarshal([]byte(`{"stars":42,"paper":"https://arxiv.org/abs/1706.03762"}`), &patch)
	assert.NoError(t, err)
	assert.True(t, patch.Stars.Set)
	assert.Equal(t, uint(42), *patch.Stars.Value)
	assert.Equal(t, "https://arxiv.org/abs/1706.03762", *patch.Paper.Value)
}

func TestOptionalStruct(t *testing.T) {
	var patch struct {
		Metrics Optional[PerformanceMetrics] `json:"metrics"`
	}

	err := json.Unmarshal([]byte(`{"metrics":{"accuracy":0.91,"model_size":"350MB"}}`), &patch)
	assert.NoError(t, err)
	assert.True(t, patch.Metrics.Set)
	assert.Equal(t, 0.91, *patch.Metrics.Value.Accuracy)
	assert.Equal(t, "350MB", *patch.Metrics.Value.ModelSize)
	assert.Nil(t, patch.Metrics.Value.TrainingTime)
}

func TestOptionalMarshal(t *testing.T) {
	v := Some("x")
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	assert.Equal(t, `"x"`, string(data))

	data, err = json.Marshal(None[string]())
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
