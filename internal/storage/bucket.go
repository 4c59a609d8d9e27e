// Package storage wraps the image bucket behind the operations the gallery
// needs: list a folder, upload without overwrite, delete, public URL.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"github.com/pokeolivos/pokeolivos-api/internal/config"
)

var ErrObjectExists = errors.New("object already exists at this path")

type Object struct {
	Path string
	Name string
}

type Bucket struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// OpenBucket opens the configured gocloud bucket URL (file://, s3://, gs://,
// mem:// in tests).
func OpenBucket(ctx context.Context, conf *config.StorageConfig) (*Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, conf.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("blob.OpenBucket -> %w", err)
	}

	return NewBucket(bucket, conf.PublicBaseURL), nil
}

// NewBucket wraps an already-open blob bucket. Tests pass a memblob bucket.
func NewBucket(bucket *blob.Bucket, publicBaseURL string) *Bucket {
	return &Bucket{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// List returns up to limit objects directly under folder, sorted by name
// (gocloud iterates in lexical key order).
func (b *Bucket) List(ctx context.Context, folder string, limit int) ([]Object, error) {
	prefix := folder + "/"
	iter := b.bucket.List(&blob.ListOptions{Prefix: prefix})

	var objects []Object
	for len(objects) < limit {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iter.Next -> %w", err)
		}

		if obj.IsDir || strings.HasSuffix(obj.Key, "/") {
			continue
		}

		objects = append(objects, Object{
			Path: obj.Key,
			Name: strings.TrimPrefix(obj.Key, prefix),
		})
	}

	return objects, nil
}

// Upload writes the object at path, refusing to replace an existing one.
func (b *Bucket) Upload(ctx context.Context, path, contentType string, r io.Reader) error {
	exists, err := b.bucket.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("b.bucket.Exists -> %w", err)
	}
	if exists {
		return ErrObjectExists
	}

	w, err := b.bucket.NewWriter(ctx, path, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("b.bucket.NewWriter -> %w", err)
	}

	if _, err = io.Copy(w, r); err != nil {
		_ = w.Close()

		return fmt.Errorf("io.Copy -> %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("w.Close -> %w", err)
	}

	return nil
}

func (b *Bucket) Delete(ctx context.Context, path string) error {
	if err := b.bucket.Delete(ctx, path); err != nil {
		return fmt.Errorf("b.bucket.Delete -> %w", err)
	}

	return nil
}

// PublicURL renders the stable public URL for a stored path.
func (b *Bucket) PublicURL(path string) string {
	return b.publicBaseURL + "/" + path
}

func (b *Bucket) Close() error {
	return b.bucket.Close()
}
