package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toasty/internal/domain"
)

func TestSummarizeStatus(t *testing.T) {
	tests := []struct {
		name      string
		porcelain string
		expected  string
	}{
		{"empty output is clean", "", "clean"},
		{"whitespace only is clean", "\n\n", "clean"},
		{"single file", " M main.go\n", "1 file changed"},
		{"multiple files", " M main.go\n?? new.go\nA  added.go\n", "3 files changed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarizeStatus(tt.porcelain))
		})
	}
}

func TestRead_EmptyCwd(t *testing.T) {
	reader := NewReader()

	pc, err := reader.Read(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, domain.GitStatusClean, pc.GitStatus)
	assert.Equal(t, "claude", pc.Name)
}

func TestRead_NonGitDirectoryDegradesToClean(t *testing.T) {
	reader := NewReader()

	pc, err := reader.Read(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, domain.GitStatusClean, pc.GitStatus)
	assert.Empty(t, pc.Branch)
}
