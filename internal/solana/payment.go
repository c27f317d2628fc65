package solana

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// PaymentURI builds the solana payment request string for an order.
// The order id is the persisted id, assigned before the QR is rendered.
func PaymentURI(address string, amount float64, orderID int64) string {
	return fmt.Sprintf("solana:%s?amount=%v&label=Order_%d", address, amount, orderID)
}

// PaymentQR renders the payment request as a scannable PNG.
func PaymentQR(address string, amount float64, orderID int64) ([]byte, error) {
	png, err := qrcode.Encode(PaymentURI(address, amount, orderID), qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("encode payment qr: %w", err)
	}
	return png, nil
}
