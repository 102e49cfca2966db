package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeCash     PaymentType = "cash"
	PaymentTypeCashless PaymentType = "cashless"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeCash || t == PaymentTypeCashless
}

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Receipt struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	Total         decimal.Decimal `db:"total"`
	Rest          decimal.Decimal `db:"rest"`
	PaymentType   PaymentType     `db:"payment_type"`
	PaymentAmount decimal.Decimal `db:"payment_amount"`
	CreatedAt     time.Time       `db:"created_at"`
	Items         []LineItem
}

type LineItem struct {
	ID        int             `db:"id"`
	ReceiptID int             `db:"receipt_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Quantity  decimal.Decimal `db:"quantity"`
	Total     decimal.Decimal `db:"total"`
}

// ItemInput is a line item as supplied by the caller, before totals are computed.
type ItemInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

type Payment struct {
	Type   PaymentType
	Amount decimal.Decimal
}

// ReceiptFilter describes an owner-scoped receipt listing query.
// Nil fields are omitted from the predicate set entirely.
type ReceiptFilter struct {
	DateFrom    *time.Time
	DateTo      *time.Time
	MinTotal    *decimal.Decimal
	MaxTotal    *decimal.Decimal
	PaymentType *PaymentType
	Limit       int
	Offset      int
}
