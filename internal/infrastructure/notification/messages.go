package notification

import (
	"strings"
	"text/template"
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

var funcs = template.FuncMap{
	"amount": func(d decimal.Decimal) string { return valueobject.FixedString(d) },
	"date":   func(t time.Time) string { return t.Format(time.DateOnly) },
}

var messages = template.Must(template.New("messages").Funcs(funcs).Parse(`
{{- define "invoice_subject"}}فاتورة جديدة #{{.Invoice.InvoiceNumber}} - عقاريو{{end}}

{{- define "invoice_email"}}السلام عليكم {{.Name}},

تم إصدار فاتورة جديدة لك عبر نظام عقاريو.

تفاصيل الفاتورة:
- رقم الفاتورة: #{{.Invoice.InvoiceNumber}}
- المبلغ الأساسي: {{amount .Invoice.Amount}} ريال
- الضريبة: {{amount .Invoice.TaxAmount}} ريال
- الإجمالي: {{amount .Invoice.TotalAmount}} ريال
- تاريخ الاستحقاق: {{date .Invoice.DueDate}}

يمكنك تحميل الفاتورة من خلال لوحة التحكم.

شكراً لتعاملكم معنا،
فريق عقاريو
{{end}}

{{- define "invoice_whatsapp"}}📄 *تم إصدار فاتورة جديدة عبر عقاريو*

المبلغ: {{amount .Invoice.TotalAmount}} ريال
رقم الفاتورة: #{{.Invoice.InvoiceNumber}}

نرجو المتابعة والسداد في الموعد المحدد.

شكراً لتعاملكم معنا 🙏{{end}}

{{- define "contract_subject"}}عقد جديد - عقاريو{{end}}

{{- define "contract_email"}}السلام عليكم {{.Name}},

تم إنشاء عقد جديد لك عبر نظام عقاريو.

تفاصيل العقد:
- العقار: {{.Property}}
- تاريخ البداية: {{date .Contract.StartDate}}
- تاريخ الانتهاء: {{date .Contract.EndDate}}
- القيمة الشهرية: {{amount .Contract.MonthlyAmount}} ريال
- القيمة الإجمالية: {{amount .Contract.TotalAmount}} ريال

يمكنك تحميل العقد من خلال لوحة التحكم.

شكراً لتعاملكم معنا،
فريق عقاريو
{{end}}

{{- define "contract_whatsapp"}}📋 *تم إنشاء عقد جديد عبر عقاريو*

العقار: {{.Property}}
القيمة: {{amount .Contract.TotalAmount}} ريال

يمكنك مراجعة تفاصيل العقد من خلال لوحة التحكم.

شكراً لتعاملكم معنا 🙏{{end}}
`))

type invoiceData struct {
	Name    string
	Invoice *finance.Invoice
}

type contractData struct {
	Name     string
	Property string
	Contract *leasing.Contract
}

// InvoiceEmail builds the new-invoice email for the invoice's client. The
// second result is false when there is no client or no email address.
func InvoiceEmail(inv *finance.Invoice) (Email, bool, error) {
	client := inv.Client()
	if client == nil || !client.HasEmail() {
		return Email{}, false, nil
	}
	data := invoiceData{Name: client.Name, Invoice: inv}
	subject, err := execute("invoice_subject", data)
	if err != nil {
		return Email{}, false, err
	}
	body, err := execute("invoice_email", data)
	if err != nil {
		return Email{}, false, err
	}
	return Email{To: client.Email, Subject: subject, Body: body}, true, nil
}

// InvoiceWhatsApp returns the recipient phone and body for a new invoice
func InvoiceWhatsApp(inv *finance.Invoice) (string, string, bool, error) {
	client := inv.Client()
	if client == nil || !client.HasPhone() {
		return "", "", false, nil
	}
	body, err := execute("invoice_whatsapp", invoiceData{Name: client.Name, Invoice: inv})
	if err != nil {
		return "", "", false, err
	}
	return client.Phone, body, true, nil
}

// ContractEmail builds the new-contract email for the contract's client
func ContractEmail(c *leasing.Contract) (Email, bool, error) {
	if c.Client == nil || !c.Client.HasEmail() {
		return Email{}, false, nil
	}
	data := newContractData(c)
	subject, err := execute("contract_subject", data)
	if err != nil {
		return Email{}, false, err
	}
	body, err := execute("contract_email", data)
	if err != nil {
		return Email{}, false, err
	}
	return Email{To: c.Client.Email, Subject: subject, Body: body}, true, nil
}

// ContractWhatsApp returns the recipient phone and body for a new contract
func ContractWhatsApp(c *leasing.Contract) (string, string, bool, error) {
	if c.Client == nil || !c.Client.HasPhone() {
		return "", "", false, nil
	}
	body, err := execute("contract_whatsapp", newContractData(c))
	if err != nil {
		return "", "", false, err
	}
	return c.Client.Phone, body, true, nil
}

func newContractData(c *leasing.Contract) contractData {
	data := contractData{Property: "-", Contract: c}
	if c.Client != nil {
		data.Name = c.Client.Name
	}
	if c.Property != nil && c.Property.Title != "" {
		data.Property = c.Property.Title
	}
	return data
}

func execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := messages.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
