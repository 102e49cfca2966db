package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRequestDTO struct {
	Name     string          `json:"name" example:"Milk"`
	Price    decimal.Decimal `json:"price" example:"30.00"`
	Quantity decimal.Decimal `json:"quantity" example:"2"`
}

type PaymentDTO struct {
	Type   string          `json:"type" example:"cash"`
	Amount decimal.Decimal `json:"amount" example:"100.00"`
}

type CreateReceiptRequestDTO struct {
	Products []ProductRequestDTO `json:"products"`
	Payment  PaymentDTO          `json:"payment"`
}

type ProductResponseDTO struct {
	Name     string          `json:"name" example:"Milk"`
	Price    decimal.Decimal `json:"price" example:"30.00"`
	Quantity decimal.Decimal `json:"quantity" example:"2"`
	Total    decimal.Decimal `json:"total" example:"60.00"`
}

type ReceiptResponseDTO struct {
	ID        int                  `json:"id" example:"1"`
	Products  []ProductResponseDTO `json:"products"`
	Payment   PaymentDTO           `json:"payment"`
	Total     decimal.Decimal      `json:"total" example:"80.00"`
	Rest      decimal.Decimal      `json:"rest" example:"20.00"`
	CreatedAt time.Time            `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type ReceiptSummaryDTO struct {
	ID            int             `json:"id" example:"1"`
	Total         decimal.Decimal `json:"total" example:"80.00"`
	Rest          decimal.Decimal `json:"rest" example:"20.00"`
	PaymentType   string          `json:"payment_type" example:"cash"`
	PaymentAmount decimal.Decimal `json:"payment_amount" example:"100.00"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type ListReceiptsResponseDTO struct {
	Total    int                 `json:"total" example:"1"`
	Receipts []ReceiptSummaryDTO `json:"receipts"`
}
