package qrcode

import qr "github.com/skip2/go-qrcode"

// Generate encodes content into a QR code PNG of the given size in
// pixels.
func Generate(content string, size int) ([]byte, error) {
	return qr.Encode(content, qr.Medium, size)
}
