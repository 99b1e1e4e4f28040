package pix

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ImageEncoder turns a payment payload into a displayable QR image.
// Injected into services so tests can stub it out.
type ImageEncoder interface {
	DataURI(payload string) (string, error)
}

// QRImageEncoder encodes payloads as PNG data URIs.
type QRImageEncoder struct {
	size int
}

// NewQRImageEncoder creates an encoder producing size x size pixel images.
func NewQRImageEncoder(size int) *QRImageEncoder {
	if size <= 0 {
		size = 256
	}
	return &QRImageEncoder{size: size}
}

// DataURI encodes the payload as a base64 PNG data URI.
func (e *QRImageEncoder) DataURI(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, e.size)
	if err != nil {
		return "", fmt.Errorf("pix: failed to encode QR image: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
