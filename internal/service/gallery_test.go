package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/pokeolivos/pokeolivos-api/internal/storage"
)

func newGalleryFixture(t *testing.T) (*GalleryService, *storage.Bucket) {
	t.Helper()

	bucket := storage.NewBucket(memblob.OpenBucket(nil), "https://img.example.com")
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	svc := NewGalleryService(bucket)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	}

	return svc, bucket
}

func TestGalleryService_UploadAndList(t *testing.T) {
	svc, bucket := newGalleryFixture(t)
	ctx := context.Background()

	err := bucket.Upload(ctx, "stamps/bulbasaur.png", "image/png", strings.NewReader("stamp-bytes"))
	require.NoError(t, err)

	image, err := svc.UploadImage(ctx, "my photo!.png", "image/png", 11, strings.NewReader("photo-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "gallery", image.Folder)
	// Unsafe characters become dashes, and the path is stamped with the
	// upload time.
	assert.Equal(t, "gallery/1773482400000-my-photo-.png", image.Path)
	assert.Equal(t, "https://img.example.com/gallery/1773482400000-my-photo-.png", image.URL)

	images, err := svc.ListImages(ctx)
	require.NoError(t, err)
	require.Len(t, images, 2)

	// Folders come back in display order.
	assert.Equal(t, "stamps", images[0].Folder)
	assert.Equal(t, "bulbasaur.png", images[0].Label)
	assert.Equal(t, "gallery", images[1].Folder)
}

func TestGalleryService_UploadRejectsBadInput(t *testing.T) {
	svc, _ := newGalleryFixture(t)
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "big.png", "image/png", MaxImageSize+1, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = svc.UploadImage(ctx, "anim.gif", "image/gif", 10, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestGalleryService_UploadSamePathTwice(t *testing.T) {
	svc, _ := newGalleryFixture(t)
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "photo.png", "image/png", 5, strings.NewReader("aaaaa"))
	require.NoError(t, err)

	// The fixture pins the clock, so the second upload lands on the same
	// path.
	_, err = svc.UploadImage(ctx, "photo.png", "image/png", 5, strings.NewReader("bbbbb"))
	assert.ErrorIs(t, err, ErrImagePathExists)
}

func TestGalleryService_DeleteOutsideGalleryFolder(t *testing.T) {
	svc, bucket := newGalleryFixture(t)
	ctx := context.Background()

	err := bucket.Upload(ctx, "stamps/bulbasaur.png", "image/png", strings.NewReader("stamp-bytes"))
	require.NoError(t, err)

	err = svc.DeleteImage(ctx, "stamps/bulbasaur.png")
	assert.ErrorIs(t, err, ErrImageOutsideGallery)
}

func TestGalleryService_DeleteUploadedImage(t *testing.T) {
	svc, _ := newGalleryFixture(t)
	ctx := context.Background()

	image, err := svc.UploadImage(ctx, "photo.png", "image/png", 5, strings.NewReader("aaaaa"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteImage(ctx, image.Path))

	images, err := svc.ListImages(ctx)
	require.NoError(t, err)
	assert.Empty(t, images)
}
