package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/myls/internal/models"
)

func TestPassthrough(t *testing.T) {
	parseErr := models.NewUnrecognizedOptionError("--bogus")

	tests := []struct {
		name     string
		opts     models.Options
		patterns []string
		parseErr *models.CommandError
		want     bool
	}{
		{"default listing filters", models.Options{}, nil, nil, false},
		{"parse error skips filtering", models.Options{}, nil, parseErr, true},
		{"help skips filtering", models.Options{Help: true}, nil, nil, true},
		{"version skips filtering", models.Options{Version: true}, nil, nil, true},
		{"all without patterns skips filtering", models.Options{All: true}, nil, nil, true},
		{"all with patterns still filters", models.Options{All: true}, []string{"a.txt"}, nil, false},
		{"patterns filter", models.Options{}, []string{"a.txt"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Passthrough(tt.opts, tt.patterns, tt.parseErr))
		})
	}
}

func TestApplyHiddenFiles(t *testing.T) {
	entries := []string{".hidden", "visible", ".git", "a.txt"}

	t.Run("hidden excluded by default", func(t *testing.T) {
		result, err := Apply(entries, models.Options{}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"visible", "a.txt"}, result.Files)
		assert.Nil(t, result.Err)
	})

	t.Run("hidden included with all", func(t *testing.T) {
		result, err := Apply(entries, models.Options{All: true}, nil)
		require.NoError(t, err)
		assert.Equal(t, entries, result.Files)
		assert.Nil(t, result.Err)
	})
}

func TestApplyExactPatterns(t *testing.T) {
	entries := []string{"a.txt", "b.txt", ".hidden"}

	t.Run("single match", func(t *testing.T) {
		result, err := Apply(entries, models.Options{}, []string{"a.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt"}, result.Files)
		assert.Nil(t, result.Err)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		result, err := Apply(entries, models.Options{}, []string{"A.txt"})
		require.NoError(t, err)
		assert.Empty(t, result.Files)
		require.NotNil(t, result.Err)
		assert.Equal(t, models.ExitPatternNotFound, result.Err.Code)
	})

	t.Run("patterns can match hidden entries", func(t *testing.T) {
		result, err := Apply(entries, models.Options{}, []string{".hidden"})
		require.NoError(t, err)
		assert.Equal(t, []string{".hidden"}, result.Files)
		assert.Nil(t, result.Err)
	})

	t.Run("missing pattern reports code 3 but keeps matches", func(t *testing.T) {
		result, err := Apply(entries, models.Options{}, []string{"a.txt", "missing.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt"}, result.Files)
		require.NotNil(t, result.Err)
		assert.Equal(t, models.ExitPatternNotFound, result.Err.Code)
		assert.False(t, result.Err.SyntaxError)
		require.Len(t, result.Err.Messages, 1)
		assert.Equal(t, "my-ls: missing.txt: No files or directories match the pattern", result.Err.Messages[0])
	})

	t.Run("missing patterns keep their argument order", func(t *testing.T) {
		result, err := Apply(entries, models.Options{}, []string{"zzz", "a.txt", "yyy"})
		require.NoError(t, err)
		require.NotNil(t, result.Err)
		assert.Equal(t, []string{
			"my-ls: zzz: No files or directories match the pattern",
			"my-ls: yyy: No files or directories match the pattern",
		}, result.Err.Messages)
	})
}

func TestApplyRegexPatterns(t *testing.T) {
	entries := []string{"a1.txt", "b.txt", "a2.txt", "a3.log"}

	t.Run("regex matches in listing order", func(t *testing.T) {
		result, err := Apply(entries, models.Options{Regex: true}, []string{`^a.*\.txt$`})
		require.NoError(t, err)
		assert.Equal(t, []string{"a1.txt", "a2.txt"}, result.Files)
		assert.Nil(t, result.Err)
	})

	t.Run("multiple patterns OR together", func(t *testing.T) {
		result, err := Apply(entries, models.Options{Regex: true}, []string{`\.log$`, `^b`})
		require.NoError(t, err)
		// listing order, not pattern order
		assert.Equal(t, []string{"b.txt", "a3.log"}, result.Files)
		assert.Nil(t, result.Err)
	})

	t.Run("invalid regex is an unexpected error", func(t *testing.T) {
		_, err := Apply(entries, models.Options{Regex: true}, []string{"["})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid pattern")
	})

	t.Run("without regex mode the pattern is literal", func(t *testing.T) {
		result, err := Apply(entries, models.Options{}, []string{`^a.*\.txt$`})
		require.NoError(t, err)
		assert.Empty(t, result.Files)
		require.NotNil(t, result.Err)
		assert.Equal(t, models.ExitPatternNotFound, result.Err.Code)
	})
}

func TestApplyOutputOrderFollowsListing(t *testing.T) {
	entries := []string{"c", "a", "b"}

	result, err := Apply(entries, models.Options{}, []string{"b", "a", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, result.Files)
	assert.Nil(t, result.Err)
}

func TestApplyEntryMatchedOnce(t *testing.T) {
	// two patterns matching the same entry must not duplicate it
	result, err := Apply([]string{"a.txt"}, models.Options{Regex: true}, []string{`^a`, `txt$`})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, result.Files)
	assert.Nil(t, result.Err)
}
