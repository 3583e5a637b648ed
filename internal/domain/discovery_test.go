package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	m "ifbound.dev/pkg/ifbound/internal/model"
)

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		in        m.Path
		root      m.Path
		recursive bool
	}{
		{"./...", ".", true},
		{"...", ".", true},
		{"src/...", m.Path(filepath.FromSlash("src")), true},
		{"/...", m.Path(filepath.FromSlash("/")), true},
		{"src", "src", false},
		{"main.c", "main.c", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			root, recursive := splitPattern(tt.in)
			assert.Equal(t, tt.root, root)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}
