package services

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRService encodes the public menu URL as a scannable PNG. Nothing is
// cached; the image is regenerated on every request.
type QRService struct {
	baseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{baseURL: strings.TrimRight(baseURL, "/")}
}

// MenuURL is the address the QR code points at.
func (s *QRService) MenuURL() string {
	return s.baseURL + "/menu"
}

// MenuPNG returns the QR image bytes, error-correction level L.
func (s *QRService) MenuPNG() ([]byte, error) {
	return qrcode.Encode(s.MenuURL(), qrcode.Low, qrSize)
}
