// Package export renders ledger transactions as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"reconstruction/internal/ledger"
)

// SheetName is the name of the single sheet in an export workbook.
const SheetName = "Transactions"

// ContentType is the MIME type of an xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Headers are the column titles of the transaction sheet, in order.
var Headers = []string{"Date", "Category", "Article", "Phase", "Payment method", "Invoice", "Amount", "Notes"}

var border = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

// Workbook builds a workbook with one row per transaction followed by a
// total row. Callers must Close the returned file.
func Workbook(rows []ledger.AnnotatedTransaction) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := fill(f, rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// Write renders rows as an xlsx workbook to w.
func Write(w io.Writer, rows []ledger.AnnotatedTransaction) error {
	f, err := Workbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

func fill(f *excelize.File, rows []ledger.AnnotatedTransaction) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return err
	}

	last := lastColumn()
	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", last+"1", headerStyle); err != nil {
		return err
	}

	total := decimal.Zero
	for i, t := range rows {
		row := i + 2
		values := []interface{}{
			t.TransactionDate.String(),
			t.CategoryName,
			t.ArticleName,
			phase(t.PhaseNumber),
			t.PaymentMethod,
			yesNo(t.HasInvoice),
			t.Amount,
			deref(t.Notes),
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), dataStyle); err != nil {
			return err
		}
		total = total.Add(ledger.Amount(t.CostTransaction))
	}

	totalRow := len(rows) + 2
	if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("G%d", totalRow), ledger.Round(total)); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("H%d", totalRow), fmt.Sprintf("%d transactions", len(rows))); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", last, totalRow), totalStyle); err != nil {
		return err
	}

	_ = f.SetColWidth(SheetName, "A", "A", 12)
	_ = f.SetColWidth(SheetName, "B", "C", 24)
	_ = f.SetColWidth(SheetName, "E", "E", 16)
	_ = f.SetColWidth(SheetName, "H", "H", 40)
	return nil
}

func lastColumn() string {
	name, _ := excelize.ColumnNumberToName(len(Headers))
	return name
}

func phase(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
