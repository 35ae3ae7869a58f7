package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpiled/stockpile/internal/metrics"
)

// failingSnapshotter implements Snapshotter and always fails
type failingSnapshotter struct{}

func (failingSnapshotter) Save(path string, data map[string]int) error {
	return errors.New("disk on fire")
}

func (failingSnapshotter) Load(path string) (map[string]int, error) {
	return nil, errors.New("disk on fire")
}

func setupSnapshotTest(t *testing.T) (*Store, string) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	store := NewStore(NewJSONSnapshotter(nil, m), nil, nil, m)
	path := filepath.Join(t.TempDir(), "inventory.json")
	return store, path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("apple", 7))
	require.NoError(t, store.Add("banana", 2))

	store.Save(path)

	fresh, _ := setupSnapshotTest(t)
	fresh.Load(path)
	assert.Equal(t, map[string]int{"apple": 7, "banana": 2}, fresh.Items())
}

func TestSaveWritesSortedIndentedJSON(t *testing.T) {
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("banana", 2))
	require.NoError(t, store.Add("apple", 7))

	store.Save(path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "{\n  \"apple\": 7,\n  \"banana\": 2\n}\n"
	assert.Equal(t, want, string(raw))
}

func TestLoadMissingFile(t *testing.T) {
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("apple", 7))

	store.Load(filepath.Join(filepath.Dir(path), "does-not-exist.json"))

	assert.Equal(t, map[string]int{"apple": 7}, store.Items(),
		"missing file must leave stock untouched")
}

func TestLoadMalformedJSON(t *testing.T) {
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("apple", 7))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store.Load(path)

	assert.Equal(t, map[string]int{"apple": 7}, store.Items())
}

func TestLoadNonStringKeyIsMalformed(t *testing.T) {
	// JSON object keys are always strings; a bare-integer key makes the whole
	// document unparseable and the load must abort.
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("apple", 7))
	require.NoError(t, os.WriteFile(path, []byte(`{"x": -1, "y": "bad", 5: 1}`), 0644))

	store.Load(path)

	assert.Equal(t, map[string]int{"apple": 7}, store.Items())
}

func TestLoadTopLevelNotObject(t *testing.T) {
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("apple", 7))
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0644))

	store.Load(path)

	assert.Equal(t, map[string]int{"apple": 7}, store.Items())
}

func TestLoadSanitizesEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]int
	}{
		{
			name:    "all entries invalid",
			content: `{"x": -1, "y": "bad", "z": null}`,
			want:    map[string]int{},
		},
		{
			name:    "float quantity rejected",
			content: `{"apple": 2.5, "banana": 3}`,
			want:    map[string]int{"banana": 3},
		},
		{
			name:    "numeric string rejected",
			content: `{"apple": "4", "banana": 3}`,
			want:    map[string]int{"banana": 3},
		},
		{
			name:    "empty item name rejected",
			content: `{"": 4, "banana": 3}`,
			want:    map[string]int{"banana": 3},
		},
		{
			name:    "zero quantity dropped",
			content: `{"apple": 0, "banana": 3}`,
			want:    map[string]int{"banana": 3},
		},
		{
			name:    "nested value rejected",
			content: `{"apple": {"qty": 4}, "banana": 3}`,
			want:    map[string]int{"banana": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := setupSnapshotTest(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			store.Load(path)

			assert.Equal(t, tt.want, store.Items())
		})
	}
}

func TestLoadReplacesExistingStock(t *testing.T) {
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("stale", 9))
	require.NoError(t, os.WriteFile(path, []byte(`{"fresh": 4}`), 0644))

	store.Load(path)

	assert.Equal(t, map[string]int{"fresh": 4}, store.Items(),
		"load must replace the whole map, not merge into it")
}

func TestSaveFailureIsTolerated(t *testing.T) {
	store, path := setupSnapshotTest(t)
	require.NoError(t, store.Add("apple", 7))

	// a directory at the target path makes the write fail
	dir := filepath.Join(filepath.Dir(path), "blocked")
	require.NoError(t, os.Mkdir(dir, 0755))

	store.Save(dir)

	assert.Equal(t, map[string]int{"apple": 7}, store.Items())
}

func TestSnapshotterFailuresAreTolerated(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	store := NewStore(failingSnapshotter{}, nil, nil, m)
	require.NoError(t, store.Add("apple", 7))

	store.Load("whatever.json")
	store.Save("whatever.json")

	assert.Equal(t, map[string]int{"apple": 7}, store.Items())
}
