package survey

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawItems(t *testing.T, doc string) []json.RawMessage {
	t.Helper()
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(doc), &items))
	return items
}

func TestDedupeRawKeepsFirstOccurrence(t *testing.T) {
	items := rawItems(t, `[
		{"FEATURE_ID": 1, "n": "first"},
		{"FEATURE_ID": 2, "n": "second"},
		{"FEATURE_ID": 1, "n": "dup"},
		{"n": "no key"},
		{"FEATURE_ID": " 2 ", "n": "dup with spaces"},
		{"FEATURE_ID": 3, "n": "third"}
	]`)

	kept, result := DedupeRaw(items, DefaultDedupeKey)

	require.Len(t, kept, 3)
	var names []string
	for _, k := range kept {
		var obj struct{ N string }
		require.NoError(t, json.Unmarshal(k, &obj))
		names = append(names, obj.N)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
	assert.Equal(t, 6, result.Original)
	assert.Equal(t, 3, result.Kept)
	assert.Equal(t, 3, result.Removed())
	assert.Equal(t, []string{"1", "2"}, result.Duplicates)
	assert.Equal(t, 1, result.MissingKey)
}

func TestDedupeRawKeyFallbacks(t *testing.T) {
	items := rawItems(t, `[
		{"feature_id": "a"},
		{"Feature_id": "b"},
		{"FEATURE_ID": "a"}
	]`)

	kept, result := DedupeRaw(items, "FEATURE_ID")
	assert.Len(t, kept, 2)
	assert.Equal(t, []string{"a"}, result.Duplicates)
}

func TestDedupeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "features.json")
	original := `[{"FEATURE_ID":1,"Z":"z","A":"a"},{"FEATURE_ID":1,"Z":"dup"},{"FEATURE_ID":2}]`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	result, err := DedupeFile(path, DefaultDedupeKey, now)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "features.json.bak.20250304050607"), result.BackupPath)
	backup, err := os.ReadFile(result.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "[\n  {\n    \"FEATURE_ID\": 1,\n    \"Z\": \"z\",\n    \"A\": \"a\"\n  },\n  {\n    \"FEATURE_ID\": 2\n  }\n]"
	assert.Equal(t, expected, string(out))
	assert.Equal(t, 3, result.Original)
	assert.Equal(t, 2, result.Kept)
}

func TestDedupeFileRejectsNonList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"FEATURE_ID": 1}`), 0644))

	_, err := DedupeFile(path, DefaultDedupeKey, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAList))

	matches, _ := filepath.Glob(path + ".bak.*")
	assert.Empty(t, matches, "no backup may be written for rejected input")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Feature_id", capitalize("FEATURE_ID"))
	assert.Equal(t, "Sheet", capitalize("sheet"))
	assert.Equal(t, "", capitalize(""))
}
