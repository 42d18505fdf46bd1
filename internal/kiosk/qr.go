package kiosk

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"

	"np-reserve/internal/pkg/errs"
)

// QRDataURL encodes content as a PNG QR code wrapped in a data URL, ready
// for an <img> src on the kiosk screen.
func QRDataURL(content string, size int) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode qr code")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
