package identity

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var logoContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// TenantService manages tenants and resolves the request tenant
type TenantService struct {
	tenants identity.TenantRepository
	assets  storage.AssetStorage
	logger  *zap.Logger
}

// NewTenantService creates a new TenantService
func NewTenantService(tenants identity.TenantRepository, assets storage.AssetStorage, logger *zap.Logger) *TenantService {
	return &TenantService{tenants: tenants, assets: assets, logger: logger}
}

// Resolve maps the raw X-Tenant-ID header to a tenant. A malformed or
// unknown id yields ErrInvalidTenant.
func (s *TenantService) Resolve(ctx context.Context, header string) (*identity.Tenant, error) {
	id, err := uuid.Parse(strings.TrimSpace(header))
	if err != nil || id == uuid.Nil {
		return nil, shared.ErrInvalidTenant
	}
	t, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidTenant
		}
		return nil, err
	}
	return t, nil
}

// ResolveSubdomain maps a request host's subdomain label to a tenant
func (s *TenantService) ResolveSubdomain(ctx context.Context, subdomain string) (*identity.Tenant, error) {
	t, err := s.tenants.FindBySubdomain(ctx, strings.ToLower(subdomain))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidTenant
		}
		return nil, err
	}
	return t, nil
}

// List returns every tenant to a SUPERADMIN and the actor's own tenant to
// everyone else
func (s *TenantService) List(ctx context.Context, actor Actor, filter shared.Filter) ([]TenantResponse, int64, error) {
	if actor.IsSuperAdmin() {
		tenants, total, err := s.tenants.FindAll(ctx, filter)
		if err != nil {
			return nil, 0, err
		}
		out := make([]TenantResponse, len(tenants))
		for i := range tenants {
			out[i] = ToTenantResponse(&tenants[i])
		}
		return out, total, nil
	}

	if actor.TenantID == nil {
		return []TenantResponse{}, 0, nil
	}
	t, err := s.tenants.FindByID(ctx, *actor.TenantID)
	if err != nil {
		return nil, 0, err
	}
	return []TenantResponse{ToTenantResponse(t)}, 1, nil
}

// Get returns a tenant the actor can access; others read as not found
func (s *TenantService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*TenantResponse, error) {
	t, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := ToTenantResponse(t)
	return &resp, nil
}

// Create creates a tenant without users
func (s *TenantService) Create(ctx context.Context, actor Actor, req CreateTenantRequest) (*TenantResponse, error) {
	if err := identity.Authorize(actor.Role, identity.PermTenantAdminister); err != nil {
		return nil, err
	}
	t, err := identity.NewTenant(req.Name, req.Subdomain)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSubdomainFree(ctx, t.Subdomain); err != nil {
		return nil, err
	}
	if err := s.tenants.Save(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant created",
		zap.String("tenant_id", t.ID.String()),
		zap.String("subdomain", t.Subdomain),
		zap.String("by", actor.UserID.String()))
	resp := ToTenantResponse(t)
	return &resp, nil
}

// Update renames a tenant or changes its subdomain
func (s *TenantService) Update(ctx context.Context, actor Actor, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	if err := identity.Authorize(actor.Role, identity.PermTenantWrite); err != nil {
		return nil, err
	}
	t, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := t.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Subdomain != nil {
		sub := identity.NormalizeSubdomain(*req.Subdomain)
		if sub != t.Subdomain {
			if err := s.ensureSubdomainFree(ctx, sub); err != nil {
				return nil, err
			}
			if err := t.ChangeSubdomain(sub); err != nil {
				return nil, err
			}
		}
	}
	if err := s.tenants.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTenantResponse(t)
	return &resp, nil
}

// Delete removes a tenant and, through cascades, everything it owns
func (s *TenantService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := identity.Authorize(actor.Role, identity.PermTenantAdminister); err != nil {
		return err
	}
	t, err := s.find(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.tenants.Delete(ctx, t.ID); err != nil {
		return err
	}
	if t.Logo != "" {
		if err := s.assets.Delete(ctx, t.Logo); err != nil {
			s.logger.Warn("Failed to delete tenant logo", zap.String("key", t.Logo), zap.Error(err))
		}
	}
	s.logger.Info("Tenant deleted", zap.String("tenant_id", t.ID.String()), zap.String("by", actor.UserID.String()))
	return nil
}

// UploadLogo stores the tenant logo under tenant_logos/
func (s *TenantService) UploadLogo(ctx context.Context, actor Actor, id uuid.UUID, filename string, data []byte) (*TenantResponse, error) {
	if err := identity.Authorize(actor.Role, identity.PermTenantWrite); err != nil {
		return nil, err
	}
	t, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := logoContentTypes[ext]
	if !ok {
		return nil, shared.NewValidationError("logo", "Logo must be a PNG, JPEG, WebP or SVG image")
	}
	key := storage.TenantLogoKey(t.ID, ext)
	if err := s.assets.Put(ctx, key, data, contentType); err != nil {
		return nil, err
	}
	if t.Logo != "" && t.Logo != key {
		if err := s.assets.Delete(ctx, t.Logo); err != nil {
			s.logger.Warn("Failed to delete previous logo", zap.String("key", t.Logo), zap.Error(err))
		}
	}
	t.SetLogo(key)
	if err := s.tenants.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTenantResponse(t)
	return &resp, nil
}

func (s *TenantService) find(ctx context.Context, actor Actor, id uuid.UUID) (*identity.Tenant, error) {
	if !actor.CanAccessTenant(id) {
		return nil, shared.ErrNotFound
	}
	return s.tenants.FindByID(ctx, id)
}

func (s *TenantService) ensureSubdomainFree(ctx context.Context, subdomain string) error {
	taken, err := s.tenants.ExistsBySubdomain(ctx, subdomain)
	if err != nil {
		return err
	}
	if taken {
		return shared.NewDomainError("ALREADY_EXISTS", "Subdomain is already taken").
			WithDetail("subdomain", "Subdomain is already taken")
	}
	return nil
}
