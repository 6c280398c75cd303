package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// MemoryObject is a blob held by MemoryStorage.
type MemoryObject struct {
	Data        []byte
	ContentType string
	Temporary   bool
}

// MemoryStorage is an in-process Storage used when no bucket is configured
// and in tests. It serves its own objects over HTTP when BaseURL is a path.
// The *Err fields inject failures.
type MemoryStorage struct {
	BaseURL string

	PutErr       error
	DeleteErr    error
	PermanentErr error

	mu      sync.Mutex
	objects map[string]MemoryObject
}

// NewMemoryStorage returns an empty store serving URLs under baseURL.
func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{BaseURL: baseURL, objects: map[string]MemoryObject{}}
}

// Put stores body under key.
func (m *MemoryStorage) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string, temporary bool) (string, error) {
	if m.PutErr != nil {
		return "", m.PutErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = MemoryObject{Data: buf.Bytes(), ContentType: contentType, Temporary: temporary}
	return m.URL(key), nil
}

// Delete removes key.
func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// MarkPermanent clears the temporary flag of key.
func (m *MemoryStorage) MarkPermanent(_ context.Context, key string) error {
	if m.PermanentErr != nil {
		return m.PermanentErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.objects[key]; ok {
		o.Temporary = false
		m.objects[key] = o
	}
	return nil
}

// URL returns BaseURL + "/" + key.
func (m *MemoryStorage) URL(key string) string { return m.BaseURL + "/" + key }

// Object returns the blob under key.
func (m *MemoryStorage) Object(key string) (MemoryObject, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[key]
	return o, ok
}

// Len returns the number of stored objects.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// ServeHTTP writes the object named by the request path, relative to
// BaseURL, with range support.
func (m *MemoryStorage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, m.BaseURL), "/")
	o, ok := m.Object(key)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if o.ContentType != "" {
		w.Header().Set("Content-Type", o.ContentType)
	}
	http.ServeContent(w, r, key, time.Time{}, bytes.NewReader(o.Data))
}
