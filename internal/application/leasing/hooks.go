package leasing

import (
	"context"

	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/notification"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
)

// Post-commit hook names for contract.created, in run order
const (
	HookContractPDF      = "contract_pdf"
	HookContractEmail    = "contract_email"
	HookContractWhatsApp = "contract_whatsapp"
)

var contractEvents = []string{leasing.EventTypeContractCreated}

func loadContract(ctx context.Context, contracts leasing.Repository, evt shared.DomainEvent) (shared.Scope, *leasing.Contract, error) {
	scope, err := shared.NewScope(evt.TenantID())
	if err != nil {
		return shared.Scope{}, nil, err
	}
	c, err := contracts.FindByIDWithRelations(ctx, scope, evt.AggregateID())
	if err != nil {
		return shared.Scope{}, nil, err
	}
	return scope, c, nil
}

// ContractPDFHook renders and stores the document of a new contract
type ContractPDFHook struct {
	contracts leasing.Repository
	documents *ContractDocuments
}

// NewContractPDFHook creates a new ContractPDFHook
func NewContractPDFHook(contracts leasing.Repository, documents *ContractDocuments) *ContractPDFHook {
	return &ContractPDFHook{contracts: contracts, documents: documents}
}

func (h *ContractPDFHook) Name() string         { return HookContractPDF }
func (h *ContractPDFHook) EventTypes() []string { return contractEvents }

// Handle implements shared.PostCommitHook
func (h *ContractPDFHook) Handle(ctx context.Context, evt shared.DomainEvent) error {
	scope, c, err := loadContract(ctx, h.contracts, evt)
	if err != nil {
		return err
	}
	_, err = h.documents.Ensure(ctx, scope, c)
	return err
}

// ContractEmailHook emails the client of a new contract
type ContractEmailHook struct {
	contracts leasing.Repository
	mailer    notification.Mailer
	metrics   *telemetry.DomainMetrics
}

// NewContractEmailHook creates a new ContractEmailHook
func NewContractEmailHook(contracts leasing.Repository, mailer notification.Mailer, metrics *telemetry.DomainMetrics) *ContractEmailHook {
	return &ContractEmailHook{contracts: contracts, mailer: mailer, metrics: metrics}
}

func (h *ContractEmailHook) Name() string         { return HookContractEmail }
func (h *ContractEmailHook) EventTypes() []string { return contractEvents }

// Handle implements shared.PostCommitHook. Without a mail server or a
// client email address the run is skipped.
func (h *ContractEmailHook) Handle(ctx context.Context, evt shared.DomainEvent) error {
	if !h.mailer.Enabled() {
		return shared.ErrHookSkipped
	}
	_, c, err := loadContract(ctx, h.contracts, evt)
	if err != nil {
		return err
	}
	msg, ok, err := notification.ContractEmail(c)
	if err != nil {
		return err
	}
	if !ok {
		return shared.ErrHookSkipped
	}
	err = h.mailer.Send(ctx, msg)
	h.metrics.NotificationSent(ctx, "email", err)
	return err
}

// ContractWhatsAppHook sends a WhatsApp message to the client of a new contract
type ContractWhatsAppHook struct {
	contracts leasing.Repository
	sender    notification.WhatsAppSender
	metrics   *telemetry.DomainMetrics
}

// NewContractWhatsAppHook creates a new ContractWhatsAppHook
func NewContractWhatsAppHook(contracts leasing.Repository, sender notification.WhatsAppSender, metrics *telemetry.DomainMetrics) *ContractWhatsAppHook {
	return &ContractWhatsAppHook{contracts: contracts, sender: sender, metrics: metrics}
}

func (h *ContractWhatsAppHook) Name() string         { return HookContractWhatsApp }
func (h *ContractWhatsAppHook) EventTypes() []string { return contractEvents }

// Handle implements shared.PostCommitHook
func (h *ContractWhatsAppHook) Handle(ctx context.Context, evt shared.DomainEvent) error {
	if !h.sender.Enabled() {
		return shared.ErrHookSkipped
	}
	_, c, err := loadContract(ctx, h.contracts, evt)
	if err != nil {
		return err
	}
	to, body, ok, err := notification.ContractWhatsApp(c)
	if err != nil {
		return err
	}
	if !ok {
		return shared.ErrHookSkipped
	}
	err = h.sender.Send(ctx, to, body)
	h.metrics.NotificationSent(ctx, "whatsapp", err)
	return err
}
