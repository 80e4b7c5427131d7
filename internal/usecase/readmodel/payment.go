package readmodel

import "time"

type PaymentStatusRM struct {
	OrderID        string     `json:"order_id"`
	Gateway        string     `json:"gateway"`
	Status         string     `json:"status"`
	Attempt        int        `json:"attempt"`
	NextCheckAt    *time.Time `json:"next_check_at,omitempty"`
	Checking       bool       `json:"checking"`
	Done           bool       `json:"done"`
	Recorded       bool       `json:"recorded"`
	Provisional    bool       `json:"provisional"`
	Error          string     `json:"error,omitempty"`
	RecoveryAction string     `json:"recovery_action,omitempty"`
}
