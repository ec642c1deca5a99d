package leasing

import (
	"context"
	"errors"

	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContractService handles the contract lifecycle inside a tenant scope
type ContractService struct {
	contracts  leasing.Repository
	properties property.Repository
	clients    partner.ClientRepository
	documents  *ContractDocuments
	hooks      shared.HookRunner
	metrics    *telemetry.DomainMetrics
	logger     *zap.Logger
}

// NewContractService creates a new ContractService. hooks may be nil.
func NewContractService(
	contracts leasing.Repository,
	properties property.Repository,
	clients partner.ClientRepository,
	documents *ContractDocuments,
	hooks shared.HookRunner,
	metrics *telemetry.DomainMetrics,
	logger *zap.Logger,
) *ContractService {
	if hooks == nil {
		hooks = shared.NopHookRunner{}
	}
	return &ContractService{
		contracts:  contracts,
		properties: properties,
		clients:    clients,
		documents:  documents,
		hooks:      hooks,
		metrics:    metrics,
		logger:     logger,
	}
}

// List returns a page of the tenant's contracts, newest first by default
func (s *ContractService) List(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]ContractResponse, int64, error) {
	contracts, total, err := s.contracts.FindAll(ctx, scope, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]ContractResponse, len(contracts))
	for i := range contracts {
		out[i] = ToContractResponse(&contracts[i])
	}
	return out, total, nil
}

// Get returns one contract with its property and client
func (s *ContractService) Get(ctx context.Context, scope shared.Scope, id uuid.UUID) (*ContractResponse, error) {
	c, err := s.contracts.FindByIDWithRelations(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToContractResponse(c)
	return &resp, nil
}

// Create validates that the property and the client belong to the tenant,
// persists the contract and then runs the post-commit hooks. Hook failures
// do not fail the call.
func (s *ContractService) Create(ctx context.Context, scope shared.Scope, req CreateContractRequest) (result *ContractResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ContractService", "Create")
	defer func() { telemetry.EndSpan(span, err) }()

	prop, client, err := s.resolveParties(ctx, scope, req.Property, req.Client)
	if err != nil {
		return nil, err
	}
	if req.MonthlyAmount == nil {
		return nil, shared.NewValidationError("monthly_amount", "This field is required")
	}
	if req.TotalAmount == nil {
		return nil, shared.NewValidationError("total_amount", "This field is required")
	}
	status, err := leasing.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	c, err := leasing.NewContract(scope, prop, client, leasing.Terms{
		StartDate:     req.StartDate.Time,
		EndDate:       req.EndDate.Time,
		MonthlyAmount: *req.MonthlyAmount,
		TotalAmount:   *req.TotalAmount,
		Status:        status,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := s.contracts.Save(ctx, scope, c); err != nil {
		return nil, err
	}

	s.logger.Info("Contract created",
		zap.String("contract_id", c.ID.String()),
		zap.String("tenant_id", scope.String()),
		zap.String("property_id", prop.ID.String()),
		zap.String("client_id", client.ID.String()))
	s.metrics.ContractCreated(ctx, scope.TenantID(), string(c.Status))

	s.hooks.Run(ctx, c.PullDomainEvents()...)

	// hooks may have attached the document
	if fresh, err := s.contracts.FindByIDWithRelations(ctx, scope, c.ID); err == nil {
		c = fresh
	}
	resp := ToContractResponse(c)
	return &resp, nil
}

// Update applies a partial update. Changing the parties or the terms
// discards the stored document.
func (s *ContractService) Update(ctx context.Context, scope shared.Scope, id uuid.UUID, req UpdateContractRequest) (*ContractResponse, error) {
	c, err := s.contracts.FindByIDWithRelations(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	var stale []string
	if req.Property != nil || req.Client != nil {
		propID, clientID := c.PropertyID, c.ClientID
		if req.Property != nil {
			propID = *req.Property
		}
		if req.Client != nil {
			clientID = *req.Client
		}
		prop, client, err := s.resolveParties(ctx, scope, propID, clientID)
		if err != nil {
			return nil, err
		}
		if err := c.Reassign(scope, prop, client); err != nil {
			return nil, err
		}
		stale = append(stale, c.InvalidateDocument())
	}

	terms := termsOf(c)
	if req.StartDate != nil {
		terms.StartDate = req.StartDate.Time
	}
	if req.EndDate != nil {
		terms.EndDate = req.EndDate.Time
	}
	if req.MonthlyAmount != nil {
		terms.MonthlyAmount = *req.MonthlyAmount
	}
	if req.TotalAmount != nil {
		terms.TotalAmount = *req.TotalAmount
	}
	if req.Status != nil {
		if terms.Status, err = leasing.ParseStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		terms.Notes = *req.Notes
	}
	old, err := c.Update(terms)
	if err != nil {
		return nil, err
	}
	stale = append(stale, old)

	if err := s.contracts.Save(ctx, scope, c); err != nil {
		return nil, err
	}
	for _, key := range stale {
		s.documents.Discard(ctx, key)
	}
	resp := ToContractResponse(c)
	return &resp, nil
}

// Delete removes the contract together with its invoices
func (s *ContractService) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	c, err := s.contracts.FindByID(ctx, scope, id)
	if err != nil {
		return err
	}
	if err := s.contracts.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.documents.Discard(ctx, c.PDFFile)
	s.logger.Info("Contract deleted",
		zap.String("contract_id", id.String()),
		zap.String("tenant_id", scope.String()))
	return nil
}

// DownloadPDF returns the contract document, generating it on first use
func (s *ContractService) DownloadPDF(ctx context.Context, scope shared.Scope, id uuid.UUID) ([]byte, string, error) {
	c, err := s.contracts.FindByIDWithRelations(ctx, scope, id)
	if err != nil {
		return nil, "", err
	}
	data, err := s.documents.Ensure(ctx, scope, c)
	if err != nil {
		return nil, "", err
	}
	return data, "contract_" + c.ID.String() + ".pdf", nil
}

// resolveParties loads the property and the client through the caller's
// scope; ids of other tenants are invalid references
func (s *ContractService) resolveParties(ctx context.Context, scope shared.Scope, propertyID, clientID uuid.UUID) (*property.Property, *partner.Client, error) {
	prop, err := s.properties.FindByID(ctx, scope, propertyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.ErrInvalidReference.WithDetail("property", "Property does not exist in this tenant")
		}
		return nil, nil, err
	}
	client, err := s.clients.FindByID(ctx, scope, clientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.ErrInvalidReference.WithDetail("client", "Client does not exist in this tenant")
		}
		return nil, nil, err
	}
	return prop, client, nil
}
