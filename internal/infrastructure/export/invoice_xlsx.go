// Package export writes tenant data to spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of generated workbooks
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceSheet is the name of the single worksheet of an invoice export
const InvoiceSheet = "Invoices"

// InvoiceHeader lists the export columns in order
var InvoiceHeader = []string{
	"رقم الفاتورة",
	"العميل",
	"المبلغ",
	"نسبة الضريبة",
	"الضريبة",
	"الإجمالي",
	"تاريخ الاستحقاق",
	"تاريخ السداد",
	"الحالة",
	"ملاحظات",
}

var columnWidths = []float64{18, 24, 14, 12, 14, 14, 16, 16, 12, 40}

// money columns (1-based): amount, tax, total
var moneyColumns = map[int]bool{3: true, 5: true, 6: true}

// InvoiceWorkbook renders invoices into an XLSX workbook. Invoices should
// carry their contract and client when a client column is wanted.
func InvoiceWorkbook(invoices []finance.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(InvoiceSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	rtl := true
	if err := f.SetSheetView(InvoiceSheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return nil, fmt.Errorf("failed to set sheet view: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	// built-in format 4 is #,##0.00
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	for col, header := range InvoiceHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(InvoiceSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(InvoiceSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(InvoiceSheet, name, name, columnWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i := range invoices {
		if err := writeInvoiceRow(f, i+2, &invoices[i], moneyStyle); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(InvoiceSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeInvoiceRow(f *excelize.File, row int, inv *finance.Invoice, moneyStyle int) error {
	client := ""
	if c := inv.Client(); c != nil {
		client = c.Name
	}
	paid := ""
	if inv.PaidDate != nil {
		paid = valueobject.NewDate(*inv.PaidDate).String()
	}

	values := []any{
		inv.InvoiceNumber,
		client,
		inv.Amount.InexactFloat64(),
		valueobject.FixedString(inv.TaxRate) + "%",
		inv.TaxAmount.InexactFloat64(),
		inv.TotalAmount.InexactFloat64(),
		valueobject.NewDate(inv.DueDate).String(),
		paid,
		string(inv.Status),
		inv.Notes,
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(InvoiceSheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
		if moneyColumns[i+1] {
			if err := f.SetCellStyle(InvoiceSheet, cell, cell, moneyStyle); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
