package request

import (
	"strings"

	"storefront-bff/internal/usecase"
)

type SelectAddressRequest struct {
	AddressID string `json:"address_id" binding:"required"`
}

type SelectGatewayRequest struct {
	Gateway string `json:"gateway" binding:"required"`
}

// Code is validated by the coupon engine so an empty code gets the inline message
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

type HandshakeRequest struct {
	OrderID       string  `json:"order_id" binding:"required"`
	Success       *bool   `json:"success" binding:"required"`
	TransactionID *string `json:"transaction_id,omitempty"`
	ErrorMessage  *string `json:"error_message,omitempty"`
}

func (r HandshakeRequest) ToInput() usecase.HandshakeInput {
	return usecase.HandshakeInput{
		OrderID:       strings.TrimSpace(r.OrderID),
		Success:       *r.Success,
		TransactionID: trimmed(r.TransactionID),
		ErrorMessage:  trimmed(r.ErrorMessage),
	}
}

type WatchPaymentRequest struct {
	Gateway string `json:"gateway" binding:"required"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
