package disk

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/yokai-server/internal/model"
)

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	key := "user-alice/file-ABC"
	require.NoError(t, s.Upload(ctx, key, strings.NewReader("payload")))

	rc, err := s.Download(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "payload", string(data))

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))

	_, err = s.Download(ctx, key)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_PathStaysInRoot(t *testing.T) {
	root := t.TempDir()
	s, err := New(root)
	require.NoError(t, err)

	p := s.Path("../../etc/passwd")
	rel, err := filepath.Rel(s.root, p)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(rel, ".."))
}

func TestStore_CanceledContext(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Upload(ctx, "k", strings.NewReader("x")), context.Canceled)
	_, err = s.Download(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
