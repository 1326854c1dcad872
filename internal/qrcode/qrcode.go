package qrcode

import qr "github.com/skip2/go-qrcode"

// PNG renders a join link as a QR code image at the given pixel size.
func PNG(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qr.Encode(url, qr.Medium, size)
}
