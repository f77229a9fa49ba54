package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/tree"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("yaml sequence", func(t *testing.T) {
		t.Parallel()
		doc := `
- id: 1
  name: root
  children_list:
    - id: 2
      children_list: []
`
		records, err := tree.ParseYAML(strings.NewReader(doc))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1, records[0]["id"])

		flat := tree.FlattenMaps(tree.WithData(records))
		require.Len(t, flat, 2)
		assert.Equal(t, map[string]any{"id": 2}, flat[0])
		assert.Equal(t, map[string]any{"id": 1, "name": "root"}, flat[1])
	})

	t.Run("json document", func(t *testing.T) {
		t.Parallel()
		doc := `[{"id": "a", "children_list": [{"id": "b", "children_list": []}]}]`
		records, err := tree.ParseYAML(strings.NewReader(doc))
		require.NoError(t, err)

		flat := tree.FlattenMaps(tree.WithData(records))
		require.Len(t, flat, 2)
		assert.Equal(t, "b", flat[0]["id"])
		assert.Equal(t, "a", flat[1]["id"])
	})

	t.Run("single mapping root", func(t *testing.T) {
		t.Parallel()
		records, err := tree.ParseYAML(strings.NewReader("id: 7\n"))
		require.NoError(t, err)
		assert.Equal(t, []map[string]any{{"id": 7}}, records)
	})

	t.Run("non-string keys", func(t *testing.T) {
		t.Parallel()
		records, err := tree.ParseYAML(strings.NewReader("- 1: one\n  children_list:\n    - 2: two\n"))
		require.NoError(t, err)

		flat := tree.FlattenMaps(tree.WithData(records))
		require.Len(t, flat, 2)
		assert.Equal(t, "two", flat[0]["2"])
		assert.Equal(t, "one", flat[1]["1"])
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		records, err := tree.ParseYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("scalar root", func(t *testing.T) {
		t.Parallel()
		_, err := tree.ParseYAML(strings.NewReader("42"))
		assert.ErrorIs(t, err, tree.ErrInvalidDocument)
	})

	t.Run("sequence of scalars", func(t *testing.T) {
		t.Parallel()
		_, err := tree.ParseYAML(strings.NewReader("[1, 2]"))
		assert.ErrorIs(t, err, tree.ErrInvalidDocument)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := tree.ParseYAML(strings.NewReader("- id: [1, 2"))
		assert.ErrorIs(t, err, tree.ErrInvalidDocument)
	})
}

type menuItem struct {
	ID    int    `mapstructure:"id"`
	Title string `mapstructure:"title"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("flattened records", func(t *testing.T) {
		t.Parallel()
		data := []map[string]any{
			{"id": 1, "title": "Settings", "children_list": []any{
				map[string]any{"id": "2", "title": "Profile", "children_list": []any{}},
			}},
		}

		items, err := tree.Decode[menuItem](tree.FlattenMaps(tree.WithData(data)))
		require.NoError(t, err)
		assert.Equal(t, []menuItem{{ID: 2, Title: "Profile"}, {ID: 1, Title: "Settings"}}, items)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := tree.Decode[menuItem]([]map[string]any{{"id": map[string]any{"x": 1}}})
		assert.ErrorIs(t, err, tree.ErrDecode)
	})
}
