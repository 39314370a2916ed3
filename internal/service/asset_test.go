package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
)

type memObjectStore struct {
	objects map[string][]byte
	removed []string
}

func (s *memObjectStore) Put(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectKey] = data
	return nil
}

func (s *memObjectStore) Remove(_ context.Context, objectKey string) error {
	s.removed = append(s.removed, objectKey)
	delete(s.objects, objectKey)
	return nil
}

type stubAssetRepo struct {
	createErr error
	assets    map[uint]domain.Asset
}

func (r *stubAssetRepo) Create(_ context.Context, asset domain.Asset) (domain.Asset, error) {
	if r.createErr != nil {
		return domain.Asset{}, r.createErr
	}

	asset.ID = uint(len(r.assets) + 1)
	r.assets[asset.ID] = asset
	return asset, nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id uint) (domain.Asset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return domain.Asset{}, ErrAssetNotFound
	}
	return asset, nil
}

func TestAssetServiceUpload(t *testing.T) {
	store := &memObjectStore{objects: map[string][]byte{}}
	repo := &stubAssetRepo{assets: map[uint]domain.Asset{}}
	svc := NewAssetService(repo, store)

	content := []byte("fake png bytes")
	asset, err := svc.Upload(context.Background(), "banner.png", "image/png", int64(len(content)), bytes.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, "banner.png", asset.FileName)
	assert.True(t, strings.HasPrefix(asset.ObjectKey, "assets/"))
	assert.True(t, strings.HasSuffix(asset.ObjectKey, "_banner.png"))
	assert.Contains(t, store.objects, asset.ObjectKey)
}

func TestAssetServiceUploadTooLarge(t *testing.T) {
	store := &memObjectStore{objects: map[string][]byte{}}
	repo := &stubAssetRepo{assets: map[uint]domain.Asset{}}
	svc := NewAssetService(repo, store)

	_, err := svc.Upload(context.Background(), "huge.png", "image/png", MaxAssetSize+1, bytes.NewReader(nil))

	assert.ErrorIs(t, err, ErrAssetTooLarge)
	assert.Empty(t, store.objects, "oversized uploads never reach the store")
}

func TestAssetServiceUploadCleansUpOrphan(t *testing.T) {
	store := &memObjectStore{objects: map[string][]byte{}}
	repo := &stubAssetRepo{assets: map[uint]domain.Asset{}, createErr: errors.New("db down")}
	svc := NewAssetService(repo, store)

	content := []byte("fake png bytes")
	_, err := svc.Upload(context.Background(), "banner.png", "image/png", int64(len(content)), bytes.NewReader(content))

	require.Error(t, err)
	assert.Len(t, store.removed, 1, "a failed insert removes the stored object")
	assert.Empty(t, store.objects)
}
