// Package document produces the verification QR code and receipt document
// attached to appointment emails. Generation is a side effect of a committed
// booking or transition; callers treat failures as non-fatal.
package document

import "petopia/models"

// Generator renders appointment artifacts.
type Generator interface {
	// QRCode encodes the given URL as a PNG image.
	QRCode(url string) ([]byte, error)
	// Receipt renders a receipt document embedding the appointment facts and
	// the QR image (skipped when qr is nil).
	Receipt(details models.ReceiptDetails, qr []byte) ([]byte, error)
}
