package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the printed edge length of the share code in mm.
const qrSize = 32.0

// ShareQRCode encodes text as a PNG QR code of size x size pixels.
func ShareQRCode(text string, size int) ([]byte, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// drawShareCode places a QR code of text with its top-left corner at x, y.
func drawShareCode(pdf *fpdf.Fpdf, x, y float64, text string) error {
	png, err := ShareQRCode(text, 256)
	if err != nil {
		return err
	}

	const imgName = "share_qr"
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x, y, qrSize, qrSize, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x, y+qrSize)
	pdf.CellFormat(qrSize, 4, "Scan to share", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}
