package tree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/tree"
)

func TestFlattenMaps(t *testing.T) {
	t.Parallel()

	t.Run("child precedes parent", func(t *testing.T) {
		t.Parallel()
		data := []map[string]any{
			{"id": 1, "children_list": []any{
				map[string]any{"id": 2, "children_list": []any{}},
			}},
		}

		flat := tree.FlattenMaps(tree.WithData(data))

		want := []map[string]any{{"id": 2}, {"id": 1}}
		if diff := cmp.Diff(want, flat); diff != "" {
			t.Errorf("FlattenMaps() mismatch (-want +got):\n%s", diff)
		}
		for _, rec := range flat {
			assert.NotContains(t, rec, "children_list")
		}
	})

	t.Run("siblings keep input order", func(t *testing.T) {
		t.Parallel()
		data := []map[string]any{
			{"id": "a", "children_list": []map[string]any{
				{"id": "b", "children_list": []map[string]any{{"id": "c", "children_list": nil}}},
				{"id": "d", "children_list": []map[string]any{}},
			}},
			{"id": "e", "children_list": []map[string]any{}},
		}

		flat := tree.FlattenMaps(tree.WithData(data))

		ids := make([]any, 0, len(flat))
		for _, rec := range flat {
			ids = append(ids, rec["id"])
		}
		assert.Equal(t, []any{"c", "b", "d", "a", "e"}, ids)
	})

	t.Run("keeps other fields", func(t *testing.T) {
		t.Parallel()
		tags := []any{"x", "y"}
		data := []map[string]any{{"id": 1, "name": "root", "tags": tags, "children_list": []any{}}}

		flat := tree.FlattenMaps(tree.WithData(data))

		require.Len(t, flat, 1)
		assert.Equal(t, map[string]any{"id": 1, "name": "root", "tags": tags}, flat[0])
	})

	t.Run("does not modify input", func(t *testing.T) {
		t.Parallel()
		child := map[string]any{"id": 2, "children_list": []any{}}
		root := map[string]any{"id": 1, "children_list": []any{child}}

		tree.FlattenMaps(tree.WithData([]map[string]any{root}))

		assert.Contains(t, root, "children_list")
		assert.Contains(t, child, "children_list")
	})

	t.Run("custom children key", func(t *testing.T) {
		t.Parallel()
		data := []map[string]any{
			{"id": 1, "children": []any{map[string]any{"id": 2}}, "children_list": "kept"},
		}

		flat := tree.FlattenMaps(tree.WithData(data), tree.WithChildrenKey("children"))

		want := []map[string]any{{"id": 2}, {"id": 1, "children_list": "kept"}}
		if diff := cmp.Diff(want, flat); diff != "" {
			t.Errorf("FlattenMaps() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty children key falls back to default", func(t *testing.T) {
		t.Parallel()
		data := []map[string]any{{"id": 1, "children_list": []any{map[string]any{"id": 2}}}}

		flat := tree.FlattenMaps(tree.WithData(data), tree.WithChildrenKey(""))

		assert.Len(t, flat, 2)
	})

	t.Run("missing or malformed children are leaves", func(t *testing.T) {
		t.Parallel()
		data := []map[string]any{
			{"id": 1},
			{"id": 2, "children_list": "oops"},
			{"id": 3, "children_list": []any{42, map[string]any{"id": 4}}},
		}

		var flat []map[string]any
		require.NotPanics(t, func() {
			flat = tree.FlattenMaps(tree.WithData(data))
		})

		want := []map[string]any{{"id": 1}, {"id": 2}, {"id": 4}, {"id": 3}}
		if diff := cmp.Diff(want, flat); diff != "" {
			t.Errorf("FlattenMaps() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no data", func(t *testing.T) {
		t.Parallel()
		flat := tree.FlattenMaps()
		assert.NotNil(t, flat)
		assert.Empty(t, flat)
	})
}
