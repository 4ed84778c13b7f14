package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Renderer encodes an opaque ticket code as a scannable PNG.
type Renderer struct{}

func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) Encode(code string) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qrcode.Encode -> %w", err)
	}

	return png, nil
}
