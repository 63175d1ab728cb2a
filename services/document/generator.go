package document

import (
	"bytes"
	"fmt"

	"petopia/models"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// DefaultGenerator renders QR codes as PNGs and receipts as PDFs.
type DefaultGenerator struct{}

// NewDefaultGenerator creates the production document generator.
func NewDefaultGenerator() *DefaultGenerator {
	return &DefaultGenerator{}
}

// QRCode encodes the given URL as a 256x256 PNG.
func (g *DefaultGenerator) QRCode(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// Receipt renders the appointment receipt PDF. The QR image section is
// skipped when qr is nil.
func (g *DefaultGenerator) Receipt(details models.ReceiptDetails, qr []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Appointment Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Appointment ID: %s", details.AppointmentID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Clinic: %s", details.ClinicName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Address: %s", details.ClinicAddress), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 8, "Appointment Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Date & Time: %s", details.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Service: %s", details.ServiceName), "", 1, "L", false, 0, "")
	if details.PetName != "" {
		pdf.CellFormat(0, 7, fmt.Sprintf("Pet: %s (%s)", details.PetName, details.PetType), "", 1, "L", false, 0, "")
	}
	notes := details.Notes
	if notes == "" {
		notes = "No additional notes provided."
	}
	pdf.MultiCell(0, 7, fmt.Sprintf("Notes: %s", notes), "", "L", false)
	if details.MedicalConcern != "" {
		pdf.MultiCell(0, 7, fmt.Sprintf("Medical concern: %s", details.MedicalConcern), "", "L", false)
	}
	pdf.Ln(4)

	if qr != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("verify-qr", opts, bytes.NewReader(qr))
		x := (210.0 - 50.0) / 2
		pdf.ImageOptions("verify-qr", x, pdf.GetY(), 50, 50, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + 54)
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, "Scan the QR code for appointment details.", "", 1, "C", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Thank you for booking with us!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("receipt PDF is empty after generation")
	}
	return buf.Bytes(), nil
}
