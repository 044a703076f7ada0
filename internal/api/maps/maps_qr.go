package maps

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultQRSize = 256

// RouteQRCode renders link as a PNG QR code of size×size pixels.
func RouteQRCode(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode route QR code: %w", err)
	}
	return png, nil
}
