package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeS3 serves the path-style object API for one bucket from memory
type fakeS3 struct {
	mu      sync.Mutex
	bucket  string
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3(bucket string) *fakeS3 {
	return &fakeS3{bucket: bucket, objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prefix := "/" + f.bucket + "/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	key := strings.TrimPrefix(r.URL.Path, prefix)

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = body
		f.types[key] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet, http.MethodHead:
		data, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			if r.Method == http.MethodGet {
				_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)
			}
			return
		}
		w.Header().Set("Content-Type", f.types[key])
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(data)
		}
	case http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestS3(t *testing.T, endpoint string) *S3AssetStorage {
	t.Helper()
	s, err := NewS3AssetStorage(context.Background(), &config.StorageConfig{
		Driver:          "s3",
		Bucket:          "aqario",
		Region:          "us-east-1",
		Endpoint:        endpoint,
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		UsePathStyle:    true,
	}, WithLogger(zaptest.NewLogger(t)), WithPresignExpiration(5*time.Minute))
	require.NoError(t, err)
	return s
}

func TestNewS3AssetStorage_Validation(t *testing.T) {
	_, err := NewS3AssetStorage(context.Background(), nil)
	assert.ErrorContains(t, err, "configuration is required")

	_, err = NewS3AssetStorage(context.Background(), &config.StorageConfig{})
	assert.ErrorContains(t, err, "bucket is required")

	s := newTestS3(t, "localhost:9000")
	assert.Equal(t, "aqario", s.Bucket())
	assert.Equal(t, 5*time.Minute, s.presignExpiration)
}

func TestS3AssetStorage_RoundTrip(t *testing.T) {
	fake := newFakeS3("aqario")
	server := httptest.NewServer(fake)
	defer server.Close()

	ctx := context.Background()
	s := newTestS3(t, server.URL)
	key := "invoices/t/i.pdf"
	data := []byte("%PDF-1.4 body")

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	require.NoError(t, s.Put(ctx, key, data, ContentTypePDF))
	assert.Equal(t, ContentTypePDF, fake.types[key])

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, key))
	assert.NotContains(t, fake.objects, key)
}

func TestS3AssetStorage_URL(t *testing.T) {
	s := newTestS3(t, "http://localhost:9000")

	url, err := s.URL(context.Background(), "contracts/t/c.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/aqario/contracts/t/c.pdf?"), url)
	assert.Contains(t, url, "X-Amz-Expires=300")

	_, err = s.URL(context.Background(), "../x")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
