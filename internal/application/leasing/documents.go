package leasing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/storage"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ContractRenderer prints a contract, with its property and client, to PDF
type ContractRenderer interface {
	RenderContract(ctx context.Context, c *leasing.Contract) ([]byte, error)
}

// ContractDocuments keeps the stored PDF of each contract. A document is
// rendered once and served from storage until the contract changes.
type ContractDocuments struct {
	contracts leasing.Repository
	renderer  ContractRenderer
	assets    storage.AssetStorage
	metrics   *telemetry.DomainMetrics
	logger    *zap.Logger
}

// NewContractDocuments creates a new ContractDocuments
func NewContractDocuments(
	contracts leasing.Repository,
	renderer ContractRenderer,
	assets storage.AssetStorage,
	metrics *telemetry.DomainMetrics,
	logger *zap.Logger,
) *ContractDocuments {
	return &ContractDocuments{
		contracts: contracts,
		renderer:  renderer,
		assets:    assets,
		metrics:   metrics,
		logger:    logger,
	}
}

// Ensure returns the stored PDF of c, rendering and storing it first when
// there is none. c must carry its property and client.
func (d *ContractDocuments) Ensure(ctx context.Context, scope shared.Scope, c *leasing.Contract) ([]byte, error) {
	if c.PDFFile != "" {
		data, err := d.assets.Get(ctx, c.PDFFile)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("read contract document: %w", err)
		}
		d.logger.Warn("Stored contract document is missing, rendering again",
			zap.String("contract_id", c.ID.String()),
			zap.String("key", c.PDFFile))
	}

	start := time.Now()
	data, err := d.renderer.RenderContract(ctx, c)
	d.metrics.DocumentRendered(ctx, "contract", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render contract %s: %w", c.ID, err)
	}

	key := storage.ContractKey(c.TenantID, c.ID)
	if err := d.assets.Put(ctx, key, data, storage.ContentTypePDF); err != nil {
		return nil, fmt.Errorf("store contract document: %w", err)
	}
	c.AttachDocument(key)
	if err := d.contracts.Save(ctx, scope, c); err != nil {
		return nil, err
	}
	d.logger.Info("Contract document stored",
		zap.String("contract_id", c.ID.String()),
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return data, nil
}

// Discard removes a stale document; failures are logged only
func (d *ContractDocuments) Discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := d.assets.Delete(ctx, key); err != nil {
		d.logger.Warn("Failed to delete contract document", zap.String("key", key), zap.Error(err))
	}
}
