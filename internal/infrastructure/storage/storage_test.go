package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestKeys(t *testing.T) {
	tenantID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	assert.Equal(t, "invoices/11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222.pdf", InvoiceKey(tenantID, id))
	assert.Equal(t, "contracts/11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222.pdf", ContractKey(tenantID, id))
	assert.Equal(t, "tenant_logos/11111111-1111-1111-1111-111111111111.png", TenantLogoKey(tenantID, ".PNG"))
	assert.Equal(t, "property_images/11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222.jpg", PropertyImageKey(tenantID, id, ".jpg"))
}

func TestValidateKey(t *testing.T) {
	valid := []string{"invoices/a/b.pdf", "tenant_logos/x.png"}
	for _, k := range valid {
		assert.NoError(t, ValidateKey(k), k)
	}

	invalid := []string{"", "/etc/passwd", "../secret", "invoices/../../x", "a//b", "a/./b", `a\b`, "a/"}
	for _, k := range invalid {
		assert.ErrorIs(t, ValidateKey(k), ErrInvalidKey, k)
	}
}

func TestFileSystemStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileSystemStorage(dir, "/media/", zaptest.NewLogger(t))
	require.NoError(t, err)

	key := InvoiceKey(uuid.New(), uuid.New())
	data := []byte("%PDF-1.4 test")

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	require.NoError(t, s.Put(ctx, key, data, ContentTypePDF))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	onDisk, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	url, err := s.URL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "/media/"+key, url)

	t.Run("overwrite replaces content", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, key, []byte("v2"), ContentTypePDF))
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)

		entries, err := os.ReadDir(filepath.Dir(filepath.Join(dir, filepath.FromSlash(key))))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp files left behind")
	})

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))
	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	t.Run("rejects escaping keys", func(t *testing.T) {
		assert.ErrorIs(t, s.Put(ctx, "../outside.pdf", data, ContentTypePDF), ErrInvalidKey)
		_, err := s.Get(ctx, "/abs")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, s.Put(cctx, key, data, ContentTypePDF), context.Canceled)
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, &config.StorageConfig{Driver: "local", BasePath: t.TempDir()}, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileSystemStorage{}, s)

	s, err = New(ctx, &config.StorageConfig{Driver: "s3", Bucket: "aqario", AccessKeyID: "k", SecretAccessKey: "s"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &S3AssetStorage{}, s)

	_, err = New(ctx, &config.StorageConfig{Driver: "ftp"}, nil)
	assert.Error(t, err)
}
