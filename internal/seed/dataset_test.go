package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ds := Default()

	assert.Len(t, ds.Authors, 3)
	assert.Len(t, ds.Magazines, 3)
	require.Len(t, ds.Articles, 8)
	assert.Equal(t, Magazine{Name: "The New Yorker", Category: "News"}, ds.Magazines[1])
	assert.Equal(t, "Dating in NYC: Part 1", ds.Articles[4].Title)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Dataset
		wantErr bool
	}{
		{
			name:  "empty document",
			input: "",
			want:  Dataset{},
		},
		{
			name: "full document",
			input: `
authors:
  - name: Alice
magazines:
  - name: Vogue
    category: Fashion
articles:
  - author: Alice
    magazine: Vogue
    title: Summer Fashion Trends
`,
			want: Dataset{
				Authors:   []Author{{Name: "Alice"}},
				Magazines: []Magazine{{Name: "Vogue", Category: "Fashion"}},
				Articles:  []Article{{Author: "Alice", Magazine: "Vogue", Title: "Summer Fashion Trends"}},
			},
		},
		{
			name:    "unknown field",
			input:   "authors:\n  - name: Alice\n    age: 40\n",
			wantErr: true,
		},
		{
			name:    "unknown section",
			input:   "editors: []\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			input:   "authors: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "parse dataset")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	ds, err := Load(strings.NewReader("authors:\n  - name: Alice\n"))
	require.NoError(t, err)
	assert.Equal(t, []Author{{Name: "Alice"}}, ds.Authors)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("magazines:\n  - name: AD\n    category: Architecture\n"), 0o600))

		ds, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []Magazine{{Name: "AD", Category: "Architecture"}}, ds.Magazines)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bogus: true\n"), 0o600))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
