package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment is a simulated transaction with no link to a real processor.
// UpdatedAt stays nil until the payment is confirmed for the first time.
type Payment struct {
	OrderID   string        `json:"orderId"`
	TxnID     string        `json:"txnId"`
	Method    string        `json:"method"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// CreatePaymentRequest binds Amount as a pointer so an absent amount is
// distinguishable from an explicit zero.
type CreatePaymentRequest struct {
	Method string   `json:"method"`
	Amount *float64 `json:"amount"`
}

// ConfirmPaymentRequest defaults Succeed to true when the field is
// omitted.
type ConfirmPaymentRequest struct {
	OrderID string `json:"orderId"`
	Succeed *bool  `json:"succeed"`
}
