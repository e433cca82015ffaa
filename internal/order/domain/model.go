package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID  snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	OrderDate   time.Time       `gorm:"not null" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// CustomerSummary is the customer slice of an order view.
type CustomerSummary struct {
	ID    snowflake.ID `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
}

// ProductSummary is one product line of an order view.
type ProductSummary struct {
	ID    snowflake.ID    `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderView is the read shape of an order: the row plus its customer and
// product set resolved through the owning relations.
type OrderView struct {
	ID          snowflake.ID     `json:"id"`
	Customer    CustomerSummary  `json:"customer"`
	Products    []ProductSummary `json:"products"`
	OrderDate   time.Time        `json:"order_date"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	CreatedAt   time.Time        `json:"created_at"`
}
