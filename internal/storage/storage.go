// Package storage provides blob storage for uploaded media. Two independent
// buckets back the application (profile images and video assets); each is
// constructed from its own config.BucketConfig.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// TemporaryTag marks objects whose owning record has not been finalized.
// Buckets can expire such objects with a lifecycle rule as a backstop.
const TemporaryTag = "lifecycle=temporary"

// Storage stores and removes blobs addressed by key.
type Storage interface {
	// Put writes body under key and returns its public URL. When temporary
	// is set the object carries TemporaryTag.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string, temporary bool) (string, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// MarkPermanent drops TemporaryTag from the object.
	MarkPermanent(ctx context.Context, key string) error
	// URL returns the public URL for key.
	URL(key string) string
}

// NewKey builds an object key "<prefix>/<owner>/<uuid><ext>", keeping the
// lower-cased extension of filename.
func NewKey(prefix, owner, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 10 {
		ext = ""
	}
	return path.Join(prefix, owner, uuid.NewString()+ext)
}
