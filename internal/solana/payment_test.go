package solana

import (
	"bytes"
	"testing"
)

func TestPaymentURI(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		amount   float64
		orderID  int64
		expected string
	}{
		{
			name:     "fractional amount",
			address:  "9Wz1VqUsSGSAMDyVGUv1zWMADXbQK6hrnKAGF3NcVoon",
			amount:   0.1,
			orderID:  7,
			expected: "solana:9Wz1VqUsSGSAMDyVGUv1zWMADXbQK6hrnKAGF3NcVoon?amount=0.1&label=Order_7",
		},
		{
			name:     "whole amount renders without decimals",
			address:  "wallet",
			amount:   2,
			orderID:  12,
			expected: "solana:wallet?amount=2&label=Order_12",
		},
		{
			name:     "custom package amount",
			address:  "wallet",
			amount:   4,
			orderID:  1,
			expected: "solana:wallet?amount=4&label=Order_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaymentURI(tt.address, tt.amount, tt.orderID); got != tt.expected {
				t.Errorf("PaymentURI() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPaymentQR(t *testing.T) {
	png, err := PaymentQR("9Wz1VqUsSGSAMDyVGUv1zWMADXbQK6hrnKAGF3NcVoon", 0.1, 7)
	if err != nil {
		t.Fatalf("PaymentQR() error = %v", err)
	}
	if len(png) == 0 {
		t.Fatal("PaymentQR() returned empty image")
	}

	pngHeader := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("PaymentQR() did not produce a PNG")
	}
}
