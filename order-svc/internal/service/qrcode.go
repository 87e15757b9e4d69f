package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

// Generate encodes the public tracking page of an order as a PNG.
func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/acompanhar?pedido=%s", g.BaseURL, url.QueryEscape(orderID))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
