package printing

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/partner"
)

//go:embed templates/*.html
var templateFS embed.FS

var layouts = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	invoiceTitle  = "Aqario | نظام الفواتير"
	contractTitle = "Aqario | عقد إيجار"
	currencyLabel = "ريال"
)

var invoiceStatusLabels = map[finance.Status]string{
	finance.StatusPending:   "قيد الانتظار",
	finance.StatusPaid:      "مدفوعة",
	finance.StatusOverdue:   "متأخرة",
	finance.StatusCancelled: "ملغاة",
}

var contractStatusLabels = map[leasing.Status]string{
	leasing.StatusActive:     "ساري",
	leasing.StatusExpired:    "منتهي",
	leasing.StatusTerminated: "مفسوخ",
}

// PartyBlock is the client section of a document
type PartyBlock struct {
	Name  string
	Phone string
	Email string
}

// LineItem is one row of the amounts table
type LineItem struct {
	Label  string
	Amount string
}

// InvoiceDocument is the view model printed for an invoice
type InvoiceDocument struct {
	Title        string
	Number       string
	GeneratedOn  string
	StatusLabel  string
	Client       *PartyBlock // nil omits the client section
	ItemsHeading string
	Items        []LineItem
	Total        string
}

// ContractDocument is the view model printed for a contract
type ContractDocument struct {
	Title            string
	Reference        string
	GeneratedOn      string
	PropertyTitle    string
	PropertyLocation string
	StartDate        string
	EndDate          string
	StatusLabel      string
	Client           *PartyBlock
	ItemsHeading     string
	Items            []LineItem
	Total            string
}

// NewInvoiceDocument builds the view model. The client is resolved through
// the invoice's loaded contract. The generation date is the invoice's
// creation date so repeated renders are identical.
func NewInvoiceDocument(inv *finance.Invoice) InvoiceDocument {
	label, ok := invoiceStatusLabels[inv.Status]
	if !ok {
		label = invoiceStatusLabels[finance.StatusPending]
	}
	return InvoiceDocument{
		Title:        invoiceTitle,
		Number:       inv.InvoiceNumber,
		GeneratedOn:  FormatDate(inv.CreatedAt),
		StatusLabel:  label,
		Client:       partyBlock(inv.Client()),
		ItemsHeading: "تفاصيل الفاتورة",
		Items: []LineItem{
			{Label: "المبلغ الأساسي", Amount: FormatAmount(inv.Amount)},
			{Label: "الضريبة (" + FormatRate(inv.TaxRate) + ")", Amount: FormatAmount(inv.TaxAmount)},
		},
		Total: FormatAmount(inv.TotalAmount) + " " + currencyLabel,
	}
}

// NewContractDocument builds the view model from a contract with its
// property and client loaded
func NewContractDocument(c *leasing.Contract) ContractDocument {
	doc := ContractDocument{
		Title:            contractTitle,
		Reference:        strings.ToUpper(c.ID.String()[:8]),
		GeneratedOn:      FormatDate(c.CreatedAt),
		PropertyTitle:    "-",
		PropertyLocation: "-",
		StartDate:        FormatDate(c.StartDate),
		EndDate:          FormatDate(c.EndDate),
		StatusLabel:      contractStatusLabels[c.Status],
		Client:           partyBlock(c.Client),
		ItemsHeading:     "تفاصيل العقد",
		Items: []LineItem{
			{Label: "الإيجار الشهري", Amount: FormatAmount(c.MonthlyAmount)},
		},
		Total: FormatAmount(c.TotalAmount) + " " + currencyLabel,
	}
	if c.Property != nil {
		doc.PropertyTitle = orDash(c.Property.Title)
		doc.PropertyLocation = orDash(c.Property.Location)
	}
	return doc
}

func partyBlock(c *partner.Client) *PartyBlock {
	if c == nil {
		return nil
	}
	return &PartyBlock{
		Name:  orDash(c.Name),
		Phone: orDash(c.Phone),
		Email: orDash(c.Email),
	}
}

// InvoiceLayout renders the invoice as a right-to-left HTML page
func InvoiceLayout(inv *finance.Invoice) (string, error) {
	return execute("invoice", NewInvoiceDocument(inv))
}

// ContractLayout renders the contract as a right-to-left HTML page
func ContractLayout(c *leasing.Contract) (string, error) {
	return execute("contract", NewContractDocument(c))
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := layouts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", NewRenderError(ErrCodeLayoutFailed, "failed to lay out "+name, err)
	}
	return buf.String(), nil
}
