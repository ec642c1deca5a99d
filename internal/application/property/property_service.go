package property

import (
	"context"
	"path"
	"strings"

	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// PropertyService handles property CRUD inside a tenant scope
type PropertyService struct {
	repo   property.Repository
	assets storage.AssetStorage
	logger *zap.Logger
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(repo property.Repository, assets storage.AssetStorage, logger *zap.Logger) *PropertyService {
	return &PropertyService{repo: repo, assets: assets, logger: logger}
}

// List returns a page of the tenant's properties
func (s *PropertyService) List(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]PropertyResponse, int64, error) {
	items, total, err := s.repo.FindAll(ctx, scope, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PropertyResponse, len(items))
	for i := range items {
		out[i] = ToPropertyResponse(&items[i])
	}
	return out, total, nil
}

// Get returns one property; properties of other tenants are not found
func (s *PropertyService) Get(ctx context.Context, scope shared.Scope, id uuid.UUID) (*PropertyResponse, error) {
	p, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToPropertyResponse(p)
	return &resp, nil
}

// Create creates a property
func (s *PropertyService) Create(ctx context.Context, scope shared.Scope, req CreatePropertyRequest) (*PropertyResponse, error) {
	if req.Area == nil {
		return nil, shared.NewValidationError("area", "This field is required")
	}
	if req.Price == nil {
		return nil, shared.NewValidationError("price", "This field is required")
	}
	typ, err := property.ParseType(req.PropertyType)
	if err != nil {
		return nil, err
	}
	p, err := property.NewProperty(scope, property.Details{
		Title:       req.Title,
		Type:        typ,
		Area:        *req.Area,
		Location:    req.Location,
		Price:       *req.Price,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, scope, p); err != nil {
		return nil, err
	}

	s.logger.Info("Property created",
		zap.String("property_id", p.ID.String()),
		zap.String("tenant_id", scope.String()))
	resp := ToPropertyResponse(p)
	return &resp, nil
}

// Update applies a partial update
func (s *PropertyService) Update(ctx context.Context, scope shared.Scope, id uuid.UUID, req UpdatePropertyRequest) (*PropertyResponse, error) {
	p, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	d := detailsOf(p)
	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.PropertyType != nil {
		if d.Type, err = property.ParseType(*req.PropertyType); err != nil {
			return nil, err
		}
	}
	if req.Area != nil {
		d.Area = *req.Area
	}
	if req.Location != nil {
		d.Location = *req.Location
	}
	if req.Price != nil {
		d.Price = *req.Price
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if err := p.Update(d); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, scope, p); err != nil {
		return nil, err
	}
	resp := ToPropertyResponse(p)
	return &resp, nil
}

// Delete removes the property together with its contracts and their invoices
func (s *PropertyService) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return err
	}
	if p.Image != "" {
		if err := s.assets.Delete(ctx, p.Image); err != nil {
			s.logger.Warn("Failed to delete property image", zap.String("key", p.Image), zap.Error(err))
		}
	}
	s.logger.Info("Property deleted",
		zap.String("property_id", id.String()),
		zap.String("tenant_id", scope.String()))
	return nil
}

// UploadImage stores the property image under property_images/
func (s *PropertyService) UploadImage(ctx context.Context, scope shared.Scope, id uuid.UUID, filename string, data []byte) (*PropertyResponse, error) {
	p, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return nil, shared.NewValidationError("image", "Image must be a PNG, JPEG or WebP file")
	}
	key := storage.PropertyImageKey(scope.TenantID(), p.ID, ext)
	if err := s.assets.Put(ctx, key, data, contentType); err != nil {
		return nil, err
	}
	if p.Image != "" && p.Image != key {
		if err := s.assets.Delete(ctx, p.Image); err != nil {
			s.logger.Warn("Failed to delete previous image", zap.String("key", p.Image), zap.Error(err))
		}
	}
	p.SetImage(key)
	if err := s.repo.Save(ctx, scope, p); err != nil {
		return nil, err
	}
	resp := ToPropertyResponse(p)
	return &resp, nil
}
