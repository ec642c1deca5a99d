package notification

import (
	"testing"
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures(t *testing.T, client partner.ClientDetails) (*leasing.Contract, *finance.Invoice) {
	t.Helper()
	scope := shared.MustScope(uuid.New())
	prop, err := property.NewProperty(scope, property.Details{
		Title:    "Tower A, Unit 12",
		Type:     property.TypeApartment,
		Location: "Jeddah",
		Area:     decimal.NewFromInt(120),
		Price:    decimal.NewFromInt(900000),
	})
	require.NoError(t, err)
	c, err := partner.NewClient(scope, client)
	require.NoError(t, err)
	contract, err := leasing.NewContract(scope, prop, c, leasing.Terms{
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		MonthlyAmount: decimal.NewFromInt(4000),
		TotalAmount:   decimal.NewFromInt(24000),
	})
	require.NoError(t, err)
	inv, err := finance.NewInvoice(scope, contract, finance.Details{
		InvoiceNumber: "INV-7",
		Amount:        decimal.NewFromInt(1000),
		TaxRate:       decimal.NewFromInt(15),
		DueDate:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return contract, inv
}

func TestInvoiceEmail(t *testing.T) {
	_, inv := fixtures(t, partner.ClientDetails{Name: "Khalid", Email: "khalid@example.com"})

	msg, ok, err := InvoiceEmail(inv)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "khalid@example.com", msg.To)
	assert.Equal(t, "فاتورة جديدة #INV-7 - عقاريو", msg.Subject)
	assert.Contains(t, msg.Body, "السلام عليكم Khalid,")
	assert.Contains(t, msg.Body, "- الإجمالي: 1150.00 ريال")
	assert.Contains(t, msg.Body, "- الضريبة: 150.00 ريال")
	assert.Contains(t, msg.Body, "- تاريخ الاستحقاق: 2024-02-01")
}

func TestInvoiceEmail_SkipsWithoutAddress(t *testing.T) {
	_, inv := fixtures(t, partner.ClientDetails{Name: "Khalid", Phone: "0501234567"})
	_, ok, err := InvoiceEmail(inv)
	require.NoError(t, err)
	assert.False(t, ok)

	inv.Contract = nil
	_, ok, err = InvoiceEmail(inv)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvoiceWhatsApp(t *testing.T) {
	_, inv := fixtures(t, partner.ClientDetails{Name: "Khalid", Phone: "0501234567"})

	to, body, ok, err := InvoiceWhatsApp(inv)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0501234567", to)
	assert.Contains(t, body, "المبلغ: 1150.00 ريال")
	assert.Contains(t, body, "رقم الفاتورة: #INV-7")

	inv.Contract.Client = nil
	_, _, ok, err = InvoiceWhatsApp(inv)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContractMessages(t *testing.T) {
	contract, _ := fixtures(t, partner.ClientDetails{Name: "Sara", Email: "sara@example.com", Phone: "0551112222"})

	msg, ok, err := ContractEmail(contract)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "عقد جديد - عقاريو", msg.Subject)
	assert.Contains(t, msg.Body, "- العقار: Tower A, Unit 12")
	assert.Contains(t, msg.Body, "- القيمة الشهرية: 4000.00 ريال")
	assert.Contains(t, msg.Body, "- تاريخ الانتهاء: 2024-06-30")

	to, body, ok, err := ContractWhatsApp(contract)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0551112222", to)
	assert.Contains(t, body, "العقار: Tower A, Unit 12")
	assert.Contains(t, body, "القيمة: 24000.00 ريال")
}

func TestContractMessages_MissingProperty(t *testing.T) {
	contract, _ := fixtures(t, partner.ClientDetails{Name: "Sara", Phone: "0551112222"})
	contract.Property = nil

	_, body, ok, err := ContractWhatsApp(contract)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, body, "العقار: -")

	_, ok, err = ContractEmail(contract)
	require.NoError(t, err)
	assert.False(t, ok)
}
