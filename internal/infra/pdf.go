package infra

// pdf.go — invoice PDF generation using go-pdf/fpdf.
// Renders an A5 invoice with:
//   - Shop name header and invoice number
//   - Customer / seller / payment method block
//   - Line item table (product, quantity, unit price, line total)
//   - Subtotal / tax (18% included) / bold total
//
// The output file is saved to storagePath/<invoice number>.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spimentel1201/RepairServiceAPI/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateInvoicePDF renders an already-derived invoice to disk and returns
// the absolute path of the file. It works purely from the invoice DTO so the
// numbers always match what the JSON endpoint served.
func GenerateInvoicePDF(inv *dto.InvoiceResponse, shopName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := filepath.Join(storagePath, inv.InvoiceNumber+".pdf")

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, shopName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, inv.InvoiceNumber, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, inv.IssuedAt, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Parties ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Customer: "+inv.CustomerName, "", 1, "L", false, 0, "")
	if inv.SellerName != "" {
		pdf.CellFormat(contentW, 5, "Seller: "+inv.SellerName, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Payment: "+inv.PaymentMethod, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Line items ───────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // product
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.20 // unit price
	col4 := contentW * 0.20 // line total

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, line := range inv.Lines {
		name := line.ProductName
		if len(name) > 30 {
			name = name[:29] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, line.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, line.LineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1+col2+col3, 5, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, inv.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2+col3, 5, "Tax (18% incl.):", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, inv.Tax.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 7, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, inv.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
