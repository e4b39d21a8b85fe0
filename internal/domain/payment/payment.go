package payment

import (
	"time"

	"github.com/google/uuid"
)

// Method is a tagged payment method variant.
type Method string

const (
	MethodCard     Method = "card"
	MethodPoint    Method = "point"
	MethodKakaoPay Method = "kakaopay"
	MethodYPay     Method = "ypay"
)

// IsValid returns true if the method is a recognized payment method.
func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodPoint, MethodKakaoPay, MethodYPay:
		return true
	}
	return false
}

// MethodInfo describes a selectable payment method. Identifier is the masked
// card identifier (card only); Balance is the remaining balance for
// wallet-like methods.
type MethodInfo struct {
	Method     Method `json:"method"`
	Name       string `json:"name"`
	Identifier string `json:"identifier,omitempty"`
	Balance    *int   `json:"balance,omitempty"`
}

func intPtr(v int) *int { return &v }

// AvailableMethods lists the payment methods offered by the app.
func AvailableMethods() []MethodInfo {
	return []MethodInfo{
		{Method: MethodCard, Name: "신용카드", Identifier: "KB *1234"},
		{Method: MethodPoint, Name: "용인시티포인트", Balance: intPtr(25400)},
		{Method: MethodKakaoPay, Name: "카카오페이"},
		{Method: MethodYPay, Name: "와이페이", Balance: intPtr(150000)},
	}
}

// Status is the lifecycle state of a simulated payment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Receipt records the outcome of one simulated payment.
type Receipt struct {
	ID          uuid.UUID  `json:"id"`
	Method      Method     `json:"method"`
	AmountKRW   int        `json:"amount"`
	Status      Status     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
