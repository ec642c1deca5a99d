// Package storage keeps binary assets: generated PDFs, tenant logos and
// property images. Assets are addressed by slash-separated keys such as
// invoices/<tenant>/<invoice>.pdf and live either on the local file system
// or in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Key prefixes of the persisted asset families
const (
	PrefixInvoices       = "invoices"
	PrefixContracts      = "contracts"
	PrefixTenantLogos    = "tenant_logos"
	PrefixPropertyImages = "property_images"
)

// ContentTypePDF is the MIME type of generated documents
const ContentTypePDF = "application/pdf"

var (
	// ErrObjectNotFound is returned by Get for a missing key
	ErrObjectNotFound = errors.New("storage: object not found")
	// ErrInvalidKey is returned for empty, absolute or escaping keys
	ErrInvalidKey = errors.New("storage: invalid key")
)

// AssetStorage stores and serves assets by key
type AssetStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes the asset; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
	// URL returns a link a client can download the asset from
	URL(ctx context.Context, key string) (string, error)
}

// New builds the storage selected by cfg.Driver
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (AssetStorage, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3AssetStorage(ctx, cfg, WithLogger(logger))
	case "local", "":
		return NewFileSystemStorage(cfg.BasePath, cfg.BaseURL, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// InvoiceKey is the key of an invoice PDF
func InvoiceKey(tenantID, invoiceID uuid.UUID) string {
	return path.Join(PrefixInvoices, tenantID.String(), invoiceID.String()+".pdf")
}

// ContractKey is the key of a contract PDF
func ContractKey(tenantID, contractID uuid.UUID) string {
	return path.Join(PrefixContracts, tenantID.String(), contractID.String()+".pdf")
}

// TenantLogoKey is the key of a tenant logo; ext includes the dot
func TenantLogoKey(tenantID uuid.UUID, ext string) string {
	return path.Join(PrefixTenantLogos, tenantID.String()+strings.ToLower(ext))
}

// PropertyImageKey is the key of a property image; ext includes the dot
func PropertyImageKey(tenantID, propertyID uuid.UUID, ext string) string {
	return path.Join(PrefixPropertyImages, tenantID.String(), propertyID.String()+strings.ToLower(ext))
}

// ValidateKey rejects keys that could address something outside the store
func ValidateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return ErrInvalidKey
	}
	if path.Clean(key) != key {
		return ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." {
			return ErrInvalidKey
		}
	}
	return nil
}
