package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/yokai-server/internal/model"
)

// memoryBucket implements minioAPI over a map.
type memoryBucket struct {
	exists    bool
	objects   map[string][]byte
	made      []string
	failStat  error
	failPut   error
	failMake  error
	failCheck error
}

func newMemoryBucket() *memoryBucket {
	return &memoryBucket{exists: true, objects: map[string][]byte{}}
}

func (m *memoryBucket) BucketExists(_ context.Context, _ string) (bool, error) {
	return m.exists, m.failCheck
}

func (m *memoryBucket) MakeBucket(_ context.Context, name string, _ minioLib.MakeBucketOptions) error {
	if m.failMake != nil {
		return m.failMake
	}
	m.made = append(m.made, name)
	return nil
}

func (m *memoryBucket) PutObject(_ context.Context, _ string, key string, r io.Reader, _ int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if m.failPut != nil {
		return minioLib.UploadInfo{}, m.failPut
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}
	m.objects[key] = data
	return minioLib.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func (m *memoryBucket) GetObject(_ context.Context, _ string, key string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.objects[key])), nil
}

func (m *memoryBucket) RemoveObject(_ context.Context, _ string, key string, _ minioLib.RemoveObjectOptions) error {
	delete(m.objects, key)
	return nil
}

func (m *memoryBucket) StatObject(_ context.Context, _ string, key string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	if m.failStat != nil {
		return minioLib.ObjectInfo{}, m.failStat
	}
	data, ok := m.objects[key]
	if !ok {
		return minioLib.ObjectInfo{}, minioLib.ErrorResponse{Code: codeNoSuchKey}
	}
	return minioLib.ObjectInfo{Key: key, Size: int64(len(data))}, nil
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("existing bucket", func(t *testing.T) {
		api := newMemoryBucket()
		c, err := NewClientWithAPI(ctx, api, "yokai-files")
		require.NoError(t, err)
		assert.Equal(t, "yokai-files", c.bucket)
		assert.Empty(t, api.made)
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		api := newMemoryBucket()
		api.exists = false
		_, err := NewClientWithAPI(ctx, api, "yokai-files")
		require.NoError(t, err)
		assert.Equal(t, []string{"yokai-files"}, api.made)
	})

	t.Run("check error", func(t *testing.T) {
		api := newMemoryBucket()
		api.failCheck = errors.New("boom")
		c, err := NewClientWithAPI(ctx, api, "b")
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to ensure bucket exists")
	})

	t.Run("make error", func(t *testing.T) {
		api := newMemoryBucket()
		api.exists = false
		api.failMake = errors.New("denied")
		_, err := NewClientWithAPI(ctx, api, "b")
		assert.ErrorContains(t, err, "failed to create bucket")
	})
}

func TestClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	api := newMemoryBucket()
	c := &Client{api: api, bucket: "b"}

	require.NoError(t, c.Upload(ctx, "user-alice/file-1", bytes.NewReader([]byte("hello"))))

	rc, err := c.Download(ctx, "user-alice/file-1")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello", string(data))

	require.NoError(t, c.Delete(ctx, "user-alice/file-1"))

	_, err = c.Download(ctx, "user-alice/file-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()

	api := newMemoryBucket()
	api.failPut = errors.New("put-fail")
	c := &Client{api: api, bucket: "b"}
	assert.ErrorContains(t, c.Upload(ctx, "k", bytes.NewReader(nil)), "failed to upload object")

	api = newMemoryBucket()
	api.failStat = errors.New("stat-fail")
	c = &Client{api: api, bucket: "b"}
	_, err := c.Download(ctx, "k")
	assert.ErrorContains(t, err, "failed to stat object")
}
