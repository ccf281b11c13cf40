package products

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"companysite/models"
)

// CatalogCode is the barcode value printed for a catalog entry.
func CatalogCode(id int64) string {
	return fmt.Sprintf("C%06d", id)
}

// RenderCatalogPDF lays out the catalog as a printable A4 sheet, one line per
// entry in catalog order.
func RenderCatalogPDF(entries []models.CatalogEntry, title string, printedAt time.Time) ([]byte, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no catalog entries to render")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Printed: "+printedAt.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	const rowH = 22.0
	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	for _, e := range entries {
		code := CatalogCode(e.ID)
		barcodePNG, err := renderCode128PNG(code, 600, 120)
		if err != nil {
			return nil, fmt.Errorf("barcode for entry %d: %w", e.ID, err)
		}

		_, pageH := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		if pdf.GetY()+rowH > pageH-bottom-15 {
			pdf.AddPage()
		}
		y := pdf.GetY()

		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(12, 8, strconv.FormatInt(e.ID, 10), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, e.Title, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(25, 8, e.Condition.String(), "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, strconv.FormatInt(e.Price, 10), "", 0, "R", false, 0, "")

		imageName := "catalog-barcode-" + code
		pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
		pdf.ImageOptions(imageName, 145, y, 50, 10, false, opt, 0, "")
		pdf.SetXY(145, y+11)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(50, 4, code, "", 0, "C", false, 0, "")

		pdf.SetY(y + rowH)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, toNRGBA(scaled)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
