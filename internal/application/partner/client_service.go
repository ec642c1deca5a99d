package partner

import (
	"context"

	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientService handles client CRUD inside a tenant scope
type ClientService struct {
	repo   partner.ClientRepository
	logger *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(repo partner.ClientRepository, logger *zap.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// List returns a page of the tenant's clients
func (s *ClientService) List(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]ClientResponse, int64, error) {
	clients, total, err := s.repo.FindAll(ctx, scope, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out, total, nil
}

// Get returns one client of the tenant
func (s *ClientService) Get(ctx context.Context, scope shared.Scope, id uuid.UUID) (*ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Create creates a client
func (s *ClientService) Create(ctx context.Context, scope shared.Scope, req CreateClientRequest) (*ClientResponse, error) {
	c, err := partner.NewClient(scope, partner.ClientDetails{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		NationalID: req.NationalID,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, scope, c); err != nil {
		return nil, err
	}

	s.logger.Info("Client created",
		zap.String("client_id", c.ID.String()),
		zap.String("tenant_id", scope.String()))
	resp := ToClientResponse(c)
	return &resp, nil
}

// Update applies a partial update
func (s *ClientService) Update(ctx context.Context, scope shared.Scope, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	d := partner.ClientDetails{
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		NationalID: c.NationalID,
		Notes:      c.Notes,
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Phone != nil {
		d.Phone = *req.Phone
	}
	if req.Email != nil {
		d.Email = *req.Email
	}
	if req.NationalID != nil {
		d.NationalID = *req.NationalID
	}
	if req.Notes != nil {
		d.Notes = *req.Notes
	}
	if err := c.Update(d); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, scope, c); err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Delete removes the client together with its contracts and their invoices
func (s *ClientService) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Client deleted",
		zap.String("client_id", id.String()),
		zap.String("tenant_id", scope.String()))
	return nil
}
