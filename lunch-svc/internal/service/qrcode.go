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

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/orders.html?order=%s", g.BaseURL, url.QueryEscape(orderID))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

func QRLink(orderID string) string {
	return "/api/orders/" + url.PathEscape(orderID) + "/qrcode"
}
