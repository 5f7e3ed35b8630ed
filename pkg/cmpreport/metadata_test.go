package cmpreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMetadata(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "record.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"keyword": "flood",
		"date": "2024-01-01",
		"url": "http://a",
		"neighbor_urls": ["http://b", "http://c"],
		"individual_comparisons": ["diff1", "diff2"],
		"combined_comparison": "summary"
	}`), 0644))

	yamlPath := filepath.Join(dir, "record.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(strings.Join([]string{
		"keyword: flood",
		"date: \"2024-01-01\"",
		"url: http://a",
		"neighbor_urls: [http://b, http://c]",
		"individual_comparisons: [diff1, diff2]",
		"combined_comparison: summary",
	}, "\n")), 0644))

	fromJSON, err := LoadMetadata(jsonPath)
	require.NoError(t, err)
	fromYAML, err := LoadMetadata(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, floodMetadata(), fromJSON)
	assert.Equal(t, floodMetadata(), fromYAML)
}

func TestLoadMetadataPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keyword: drought\n"), 0644))

	meta, err := LoadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, "drought", meta.Keyword)
	assert.Empty(t, meta.NeighborURLs)
	assert.Equal(t, 0, meta.NeighborCount())
}

func TestLoadMetadataErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMetadata(filepath.Join(dir, "record.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedInput)

	_, err = LoadMetadata(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadMetadata(bad)
	assert.Error(t, err)
}
