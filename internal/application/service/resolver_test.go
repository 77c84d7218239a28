package service

import (
	"testing"

	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "seo tools", []string{"seo tools"}},
		{"trims and drops blanks", "a, , b ,a", []string{"a", "b", "a"}},
		{"keeps order", "z,y,x", []string{"z", "y", "x"}},
		{"trailing comma", "a,", []string{"a"}},
		{"empty", "", []string{}},
		{"only blanks", " , ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeywords(tt.raw))
		})
	}
}

func TestResolveCreateTask_Valid(t *testing.T) {
	r := NewResolver()

	req, err := r.ResolveCreateTask(entity.ItemParams{EngineID: 200, Keywords: "a, , b ,a"})

	require.NoError(t, err)
	assert.Equal(t, 200, req.EngineID)
	assert.Equal(t, []string{"a", "b", "a"}, req.Keywords)
}

func TestResolveCreateTask_NoKeywords(t *testing.T) {
	r := NewResolver()

	for _, raw := range []string{"", " , ,"} {
		_, err := r.ResolveCreateTask(entity.ItemParams{EngineID: 200, Keywords: raw})

		var validationErr *entity.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "at least one keyword required", validationErr.Message)
	}
}

func TestResolveCreateTask_MissingEngineID(t *testing.T) {
	r := NewResolver()

	_, err := r.ResolveCreateTask(entity.ItemParams{Keywords: "a"})

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "engine_id is required", validationErr.Message)
}

func TestResolveTaskStatus(t *testing.T) {
	r := NewResolver()

	req, err := r.ResolveTaskStatus(entity.ItemParams{TaskID: "abc-1"})
	require.NoError(t, err)
	assert.Equal(t, "abc-1", req.TaskID)

	_, err = r.ResolveTaskStatus(entity.ItemParams{TaskID: "  "})
	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "task_id is required", validationErr.Message)
}
