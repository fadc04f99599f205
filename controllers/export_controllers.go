package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaobi/naija-menu/services"
	"github.com/adaobi/naija-menu/utils"
)

// ExportController serves the generated artifacts: the QR image and the
// downloadable menu PDF.
type ExportController struct {
	PDF *services.PDFService
	QR  *services.QRService
}

func NewExportController(pdf *services.PDFService, qr *services.QRService) *ExportController {
	return &ExportController{PDF: pdf, QR: qr}
}

// QRCode returns the menu QR code as a PNG.
func (ec *ExportController) QRCode(c *gin.Context) {
	png, err := ec.QR.MenuPNG()
	if err != nil {
		utils.ErrorLogger.Printf("qr code: %v", err)
		c.String(http.StatusInternalServerError, "could not generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// DownloadPDF generates the menu document and returns it as an attachment.
// Also mounted at /qr-pdf for the link printed next to the QR code.
func (ec *ExportController) DownloadPDF(c *gin.Context) {
	doc, err := ec.PDF.BuildMenuPDF()
	if err != nil {
		utils.ErrorLogger.Printf("menu pdf: %v", err)
		c.String(http.StatusInternalServerError, "could not generate menu PDF")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="menu.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
