package services

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/adaobi/naija-menu/utils"
)

const (
	pdfTitle    = "Naija Kitchen"
	pdfSubtitle = "Authentic Nigerian Cuisine"
	pdfFooter   = "Order online at www.naijakitchen.ng"
)

// PDFService renders the current menu as a printable A4 document.
type PDFService struct {
	menu *MenuService
}

func NewPDFService(menu *MenuService) *PDFService {
	return &PDFService{menu: menu}
}

// BuildMenuPDF walks the available menu and emits the document: title block,
// generation timestamp, one section per non-empty category, promotional
// footer. With zero categories the skeleton document is still produced.
func (s *PDFService) BuildMenuPDF() ([]byte, error) {
	sections, err := s.menu.MenuByCategory()
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfTitle, true)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(0, 10, pdfFooter, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(0, 12, pdfTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 7, pdfSubtitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(130, 130, 130)
	generated := "Generated " + time.Now().UTC().Format("02 Jan 2006 15:04 MST")
	pdf.CellFormat(0, 6, generated, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, section := range sections {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(0, 100, 0)
		pdf.SetFillColor(240, 248, 240)
		pdf.CellFormat(0, 9, tr(section.Category.Name), "", 1, "L", true, 0, "")

		if section.Category.Description != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(110, 110, 110)
			pdf.CellFormat(0, 5, tr(section.Category.Description), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)

		for _, item := range section.Items {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(30, 30, 30)
			pdf.CellFormat(140, 6, tr(item.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, utils.FormatNaira(item.Price), "", 1, "R", false, 0, "")

			if item.Description != "" {
				pdf.SetFont("Helvetica", "", 9)
				pdf.SetTextColor(90, 90, 90)
				pdf.MultiCell(170, 4.5, tr(item.Description), "", "L", false)
			}

			if tags := item.Tags(); len(tags) > 0 {
				pdf.SetFont("Helvetica", "I", 8)
				pdf.SetTextColor(150, 100, 50)
				pdf.CellFormat(0, 5, tr(joinTags(tags)), "", 1, "L", false, 0, "")
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinTags(tags []string) string {
	out := tags[0]
	for _, tag := range tags[1:] {
		out += " • " + tag
	}
	return out
}
