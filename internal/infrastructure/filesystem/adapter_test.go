package filesystem

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_WriteCreatesParents(t *testing.T) {
	ctx := context.Background()
	a := NewWithFs(afero.NewMemMapFs())

	require.NoError(t, a.WriteFile(ctx, "/out/deep/bookmarks.html", []byte("<a>")))

	ok, err := a.Exists(ctx, "/out/deep/bookmarks.html")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := a.ReadFile(ctx, "/out/deep/bookmarks.html")
	require.NoError(t, err)
	assert.Equal(t, "<a>", string(data))
}

func TestAdapter_Missing(t *testing.T) {
	ctx := context.Background()
	a := NewWithFs(afero.NewMemMapFs())

	ok, err := a.Exists(ctx, "/nope")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = a.ReadFile(ctx, "/nope")
	assert.Error(t, err)
}
