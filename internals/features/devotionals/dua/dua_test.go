// file: internals/features/devotionals/dua/dua_test.go
package dua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByKey(t *testing.T) {
	d, ok := ByKey(KeySalawat)
	require.True(t, ok)
	assert.NotEmpty(t, d.Title)
	assert.NotEmpty(t, d.Arabic)
	assert.NotEmpty(t, d.Translation)

	_, ok = ByKey("tidak-ada")
	assert.False(t, ok)
}

func TestOptionsCoverAllItems(t *testing.T) {
	opts := Options()
	require.Len(t, opts, len(Items))
	seen := map[string]bool{}
	for _, o := range opts {
		key := o["value"]
		_, ok := ByKey(key)
		assert.True(t, ok, "key %q", key)
		assert.NotEmpty(t, o["label"])
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}
