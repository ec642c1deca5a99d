package finance

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/aqario/backend/internal/infrastructure/event"
	"github.com/aqario/backend/internal/infrastructure/export"
	"github.com/aqario/backend/internal/infrastructure/notification"
	"github.com/aqario/backend/internal/infrastructure/persistence"
	"github.com/aqario/backend/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type fakeRenderer struct {
	mu    sync.Mutex
	calls int
}

func (r *fakeRenderer) RenderInvoice(_ context.Context, inv *finance.Invoice) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return []byte("%PDF-1.4 invoice " + inv.InvoiceNumber + " " + inv.TotalAmount.StringFixed(2)), nil
}

func (r *fakeRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []notification.Email
	err  error
}

func (m *fakeMailer) Enabled() bool { return true }

func (m *fakeMailer) Send(_ context.Context, msg notification.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

type fakeWhatsApp struct {
	mu  sync.Mutex
	to  []string
	err error
}

func (w *fakeWhatsApp) Enabled() bool { return true }

func (w *fakeWhatsApp) Send(_ context.Context, to, _ string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.to = append(w.to, to)
	return w.err
}

type testEnv struct {
	invoicesSvc  *InvoiceService
	dashboardSvc *DashboardService
	pipeline     *event.HookPipeline
	renderer     *fakeRenderer
	mailer       *fakeMailer
	whatsapp     *fakeWhatsApp
	assets       *storage.FileSystemStorage
	tenants      *persistence.GormTenantRepository
	props        *persistence.GormPropertyRepository
	clients      *persistence.GormClientRepository
	contracts    *persistence.GormContractRepository
	invoices     *persistence.GormInvoiceRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, database.AutoMigrate())
	require.NoError(t, persistence.InstallTenantGuard(database.DB))

	assets, err := storage.NewFileSystemStorage(t.TempDir(), "/media", zap.NewNop())
	require.NoError(t, err)

	env := &testEnv{
		renderer:  &fakeRenderer{},
		mailer:    &fakeMailer{},
		whatsapp:  &fakeWhatsApp{},
		assets:    assets,
		tenants:   persistence.NewGormTenantRepository(database.DB),
		props:     persistence.NewGormPropertyRepository(database.DB),
		clients:   persistence.NewGormClientRepository(database.DB),
		contracts: persistence.NewGormContractRepository(database.DB),
		invoices:  persistence.NewGormInvoiceRepository(database.DB),
	}

	log := zap.NewNop()
	docs := NewInvoiceDocuments(env.invoices, env.renderer, assets, nil, log)
	pipeline, err := event.NewHookPipeline(log, nil)
	require.NoError(t, err)
	pipeline.
		Register(NewInvoicePDFHook(env.invoices, docs), 5*time.Second).
		Register(NewInvoiceEmailHook(env.invoices, env.mailer, nil), time.Second).
		Register(NewInvoiceWhatsAppHook(env.invoices, env.whatsapp, nil), time.Second)
	env.pipeline = pipeline

	env.invoicesSvc = NewInvoiceService(env.invoices, env.contracts, docs, pipeline, nil, log)
	env.dashboardSvc = NewDashboardService(env.props, env.clients, env.contracts, env.invoices, log)
	return env
}

func (e *testEnv) tenant(t *testing.T, subdomain string) shared.Scope {
	t.Helper()
	tn, err := identity.NewTenant("Agency "+subdomain, subdomain)
	require.NoError(t, err)
	require.NoError(t, e.tenants.Save(context.Background(), tn))
	return shared.MustScope(tn.ID)
}

func (e *testEnv) property(t *testing.T, scope shared.Scope, typ property.Type) *property.Property {
	t.Helper()
	p, err := property.NewProperty(scope, property.Details{
		Title:    "Unit " + string(typ),
		Type:     typ,
		Area:     decimal.NewFromInt(120),
		Location: "Jeddah",
		Price:    decimal.NewFromInt(90000),
	})
	require.NoError(t, err)
	require.NoError(t, e.props.Save(context.Background(), scope, p))
	return p
}

func (e *testEnv) contract(t *testing.T, scope shared.Scope, client partner.ClientDetails) *leasing.Contract {
	t.Helper()
	ctx := context.Background()
	prop := e.property(t, scope, property.TypeApartment)
	cl, err := partner.NewClient(scope, client)
	require.NoError(t, err)
	require.NoError(t, e.clients.Save(ctx, scope, cl))

	c, err := leasing.NewContract(scope, prop, cl, leasing.Terms{
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyAmount: decimal.NewFromInt(1000),
		TotalAmount:   decimal.NewFromInt(12000),
	})
	require.NoError(t, err)
	require.NoError(t, e.contracts.Save(ctx, scope, c))
	return c
}

func invoiceRequest(number, amount string) CreateInvoiceRequest {
	amt := decimal.RequireFromString(amount)
	return CreateInvoiceRequest{
		InvoiceNumber: number,
		Amount:        &amt,
		DueDate:       valueobject.NewDate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func withContract(req CreateInvoiceRequest, c *leasing.Contract) CreateInvoiceRequest {
	id := c.ID
	req.Contract = &id
	return req
}

func TestInvoiceService_Create_DerivesTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")

	resp, err := env.invoicesSvc.Create(ctx, scope, invoiceRequest("INV-001", "1000"))
	require.NoError(t, err)
	assert.Equal(t, "15.00", resp.TaxRate.StringFixed(2))
	assert.Equal(t, "150.00", resp.TaxAmount.StringFixed(2))
	assert.Equal(t, "1150.00", resp.TotalAmount.StringFixed(2))
	assert.Equal(t, "PENDING", resp.Status)

	zero := decimal.Zero
	req := invoiceRequest("INV-002", "500")
	req.TaxRate = &zero
	resp, err = env.invoicesSvc.Create(ctx, scope, req)
	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.TaxAmount.StringFixed(2))
	assert.Equal(t, "500.00", resp.TotalAmount.StringFixed(2))
}

func TestInvoiceService_Create_AmountRequired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")

	req := invoiceRequest("INV-003", "0")
	req.Amount = nil
	_, err := env.invoicesSvc.Create(ctx, scope, req)
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "VALIDATION_ERROR", de.Code)
	assert.Contains(t, de.Details, "amount")

	rate := decimal.NewFromInt(150)
	req = invoiceRequest("INV-004", "200")
	req.TaxRate = &rate
	resp, err := env.invoicesSvc.Create(ctx, scope, req)
	require.NoError(t, err)
	assert.Equal(t, "300.00", resp.TaxAmount.StringFixed(2))
	assert.Equal(t, "500.00", resp.TotalAmount.StringFixed(2))
}

func TestInvoiceService_Create_RunsHooks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")
	c := env.contract(t, scope, partner.ClientDetails{Name: "Fahad", Phone: "0501234567", Email: "fahad@example.com"})

	resp, err := env.invoicesSvc.Create(ctx, scope, withContract(invoiceRequest("INV-100", "1000"), c))
	require.NoError(t, err)
	assert.Equal(t, "Fahad", resp.ClientName)
	assert.Equal(t, storage.InvoiceKey(scope.TenantID(), resp.ID), resp.PDFFile)
	assert.Equal(t, 1, env.renderer.count())

	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, "fahad@example.com", env.mailer.sent[0].To)
	assert.Equal(t, []string{"0501234567"}, env.whatsapp.to)
}

func TestInvoiceService_Create_SurvivesNotificationFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")
	c := env.contract(t, scope, partner.ClientDetails{Name: "Fahad", Phone: "0501234567", Email: "fahad@example.com"})
	env.mailer.err = errors.New("smtp: connection refused")
	env.whatsapp.err = errors.New("twilio: 503")

	resp, err := env.invoicesSvc.Create(ctx, scope, withContract(invoiceRequest("INV-200", "1000"), c))
	require.NoError(t, err)

	stored, err := env.invoices.FindByID(ctx, scope, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-200", stored.InvoiceNumber)
	assert.NotEmpty(t, stored.PDFFile)
}

func TestInvoiceService_Create_WithoutClientSkipsNotifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")

	inv, err := finance.NewInvoice(scope, nil, finance.Details{
		InvoiceNumber: "INV-300",
		Amount:        decimal.NewFromInt(100),
		TaxRate:       finance.DefaultTaxRate,
		DueDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, env.invoices.Save(ctx, scope, inv))

	outcomes := env.pipeline.Run(ctx, inv.PullDomainEvents()...)
	require.Len(t, outcomes, 3)
	assert.Equal(t, HookInvoicePDF, outcomes[0].Hook)
	assert.Equal(t, shared.HookSucceeded, outcomes[0].Status)
	assert.Equal(t, shared.HookSkipped, outcomes[1].Status)
	assert.Equal(t, shared.HookSkipped, outcomes[2].Status)
	assert.Empty(t, env.mailer.sent)
	assert.Empty(t, env.whatsapp.to)
}

func TestInvoiceService_Create_DuplicateNumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha := env.tenant(t, "alpha")
	beta := env.tenant(t, "beta")

	_, err := env.invoicesSvc.Create(ctx, alpha, invoiceRequest("INV-001", "10"))
	require.NoError(t, err)

	// numbers are unique across tenants
	_, err = env.invoicesSvc.Create(ctx, beta, invoiceRequest("INV-001", "10"))
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestInvoiceService_Create_RejectsForeignContract(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha := env.tenant(t, "alpha")
	beta := env.tenant(t, "beta")
	betaContract := env.contract(t, beta, partner.ClientDetails{Name: "Beta client"})

	_, err := env.invoicesSvc.Create(ctx, alpha, withContract(invoiceRequest("INV-001", "10"), betaContract))
	assert.ErrorIs(t, err, shared.ErrInvalidReference)

	list, total, err := env.invoicesSvc.List(ctx, alpha, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestInvoiceService_DownloadPDF_IsStable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha := env.tenant(t, "alpha")
	beta := env.tenant(t, "beta")

	resp, err := env.invoicesSvc.Create(ctx, alpha, invoiceRequest("INV-042", "1000"))
	require.NoError(t, err)

	first, name, err := env.invoicesSvc.DownloadPDF(ctx, alpha, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-042.pdf", name)
	second, _, err := env.invoicesSvc.DownloadPDF(ctx, alpha, resp.ID)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))
	assert.Equal(t, 1, env.renderer.count())

	_, _, err = env.invoicesSvc.DownloadPDF(ctx, beta, resp.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInvoiceService_Update_RecomputesAndDiscardsDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")

	resp, err := env.invoicesSvc.Create(ctx, scope, invoiceRequest("INV-001", "1000"))
	require.NoError(t, err)
	oldKey := resp.PDFFile
	require.NotEmpty(t, oldKey)

	amount := decimal.NewFromInt(2000)
	rate := decimal.NewFromInt(5)
	status := "PAID"
	updated, err := env.invoicesSvc.Update(ctx, scope, resp.ID, UpdateInvoiceRequest{
		Amount:  &amount,
		TaxRate: &rate,
		Status:  &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", updated.TaxAmount.StringFixed(2))
	assert.Equal(t, "2100.00", updated.TotalAmount.StringFixed(2))
	assert.Equal(t, "PAID", updated.Status)
	assert.NotNil(t, updated.PaidDate)
	assert.Empty(t, updated.PDFFile)

	exists, err := env.assets.Exists(ctx, oldKey)
	require.NoError(t, err)
	assert.False(t, exists)

	data, _, err := env.invoicesSvc.DownloadPDF(ctx, scope, resp.ID)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2100.00")
}

func TestInvoiceService_Update_NumberAndContract(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")
	c := env.contract(t, scope, partner.ClientDetails{Name: "Fahad"})

	a, err := env.invoicesSvc.Create(ctx, scope, invoiceRequest("INV-001", "10"))
	require.NoError(t, err)
	_, err = env.invoicesSvc.Create(ctx, scope, invoiceRequest("INV-002", "10"))
	require.NoError(t, err)

	taken := "INV-002"
	_, err = env.invoicesSvc.Update(ctx, scope, a.ID, UpdateInvoiceRequest{InvoiceNumber: &taken})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	same := "INV-001"
	id := c.ID
	updated, err := env.invoicesSvc.Update(ctx, scope, a.ID, UpdateInvoiceRequest{InvoiceNumber: &same, Contract: &id})
	require.NoError(t, err)
	require.NotNil(t, updated.ContractID)
	assert.Equal(t, c.ID, *updated.ContractID)
	assert.Equal(t, "Fahad", updated.ClientName)

	updated, err = env.invoicesSvc.Update(ctx, scope, a.ID, UpdateInvoiceRequest{ClearContract: true})
	require.NoError(t, err)
	assert.Nil(t, updated.ContractID)
}

func TestInvoiceService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	scope := env.tenant(t, "alpha")

	resp, err := env.invoicesSvc.Create(ctx, scope, invoiceRequest("INV-001", "10"))
	require.NoError(t, err)

	require.NoError(t, env.invoicesSvc.Delete(ctx, scope, resp.ID))
	_, err = env.invoicesSvc.Get(ctx, scope, resp.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	exists, err := env.assets.Exists(ctx, resp.PDFFile)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, env.invoicesSvc.Delete(ctx, scope, resp.ID), shared.ErrNotFound)
}

func TestInvoiceService_Export(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alpha := env.tenant(t, "alpha")
	beta := env.tenant(t, "beta")
	c := env.contract(t, alpha, partner.ClientDetails{Name: "Fahad"})

	_, err := env.invoicesSvc.Create(ctx, alpha, withContract(invoiceRequest("INV-001", "1000"), c))
	require.NoError(t, err)
	_, err = env.invoicesSvc.Create(ctx, alpha, invoiceRequest("INV-002", "500"))
	require.NoError(t, err)
	_, err = env.invoicesSvc.Create(ctx, beta, invoiceRequest("INV-003", "700"))
	require.NoError(t, err)

	filter := shared.DefaultFilter()
	filter.OrderBy = "total_amount"
	filter.OrderDir = "desc"
	data, err := env.invoicesSvc.Export(ctx, alpha, filter)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.InvoiceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "INV-001", rows[1][0])
	assert.Contains(t, rows[1], "Fahad")
	assert.Equal(t, "INV-002", rows[2][0])
}
