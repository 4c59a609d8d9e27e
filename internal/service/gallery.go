package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/storage"
)

const (
	// MaxImageSize is the upload size ceiling in bytes.
	MaxImageSize = 300 * 1024

	// UploadFolder receives new uploads; the other folders are curated
	// out-of-band.
	UploadFolder = "gallery"

	folderListLimit = 200
)

// GalleryFolders are the bucket folders the picker lists, in display order.
var GalleryFolders = []string{"events", "collections", "stamps", "gallery"}

var (
	ErrImageTooLarge       = fmt.Errorf("image exceeds %d KB", MaxImageSize/1024)
	ErrUnsupportedImage    = errors.New("only jpeg, png and webp images are accepted")
	ErrImagePathExists     = storage.ErrObjectExists
	ErrImageOutsideGallery = errors.New("only images under the gallery folder can be deleted")
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// unsafeFilenameChars matches everything a stored filename may not contain.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type GalleryBucket interface {
	List(ctx context.Context, folder string, limit int) ([]storage.Object, error)
	Upload(ctx context.Context, path, contentType string, r io.Reader) error
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
}

type GalleryService struct {
	bucket GalleryBucket

	// now is swapped out in tests to pin upload paths.
	now func() time.Time
}

func NewGalleryService(bucket GalleryBucket) *GalleryService {
	return &GalleryService{
		bucket: bucket,
		now:    time.Now,
	}
}

// ListImages loads every gallery folder concurrently and returns the merged
// picker listing, grouped by folder in display order.
func (s *GalleryService) ListImages(ctx context.Context) ([]domain.GalleryImage, error) {
	type folderResult struct {
		folder  string
		objects []storage.Object
		err     error
	}

	results := make([]folderResult, len(GalleryFolders))

	var wg sync.WaitGroup
	for i, folder := range GalleryFolders {
		wg.Add(1)
		go func(i int, folder string) {
			defer wg.Done()

			objects, err := s.bucket.List(ctx, folder, folderListLimit)
			results[i] = folderResult{folder: folder, objects: objects, err: err}
		}(i, folder)
	}
	wg.Wait()

	var images []domain.GalleryImage
	for _, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("s.bucket.List %s -> %w", res.folder, res.err)
		}

		folderImages := make([]domain.GalleryImage, 0, len(res.objects))
		for _, obj := range res.objects {
			folderImages = append(folderImages, domain.GalleryImage{
				Path:   obj.Path,
				Label:  obj.Name,
				Folder: res.folder,
				URL:    s.bucket.PublicURL(obj.Path),
			})
		}
		sort.Slice(folderImages, func(a, b int) bool {
			return folderImages[a].Label < folderImages[b].Label
		})

		images = append(images, folderImages...)
	}

	return images, nil
}

// UploadImage validates and stores a new image under the gallery folder,
// returning its stored image record.
func (s *GalleryService) UploadImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (domain.GalleryImage, error) {
	if size > MaxImageSize {
		return domain.GalleryImage{}, ErrImageTooLarge
	}

	if _, ok := allowedImageTypes[contentType]; !ok {
		return domain.GalleryImage{}, ErrUnsupportedImage
	}

	safe := unsafeFilenameChars.ReplaceAllString(filename, "-")
	path := fmt.Sprintf("%s/%d-%s", UploadFolder, s.now().UnixMilli(), safe)

	if err := s.bucket.Upload(ctx, path, contentType, io.LimitReader(r, MaxImageSize)); err != nil {
		if errors.Is(err, storage.ErrObjectExists) {
			return domain.GalleryImage{}, ErrImagePathExists
		}

		return domain.GalleryImage{}, fmt.Errorf("s.bucket.Upload -> %w", err)
	}

	return domain.GalleryImage{
		Path:   path,
		Label:  safe,
		Folder: UploadFolder,
		URL:    s.bucket.PublicURL(path),
	}, nil
}

// DeleteImage removes an uploaded image. Curated folders stay read-only.
func (s *GalleryService) DeleteImage(ctx context.Context, path string) error {
	if !strings.HasPrefix(path, UploadFolder+"/") {
		return ErrImageOutsideGallery
	}

	if err := s.bucket.Delete(ctx, path); err != nil {
		return fmt.Errorf("s.bucket.Delete -> %w", err)
	}

	return nil
}
