package domain

import (
	"context"
	"errors"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the fixed comparison behind the low_stock filter and
// the restock mutation: a product is low on stock when stock < 10.
const LowStockThreshold = 10

// RestockIncrement is added to each low-stock product by the restock mutation.
const RestockIncrement = 10

// Filter narrows a product listing. Bounds are independent; supplying
// gte > lte legitimately yields an empty result set, not an error.
type Filter struct {
	Name     string
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal
	StockGte *int
	StockLte *int
	LowStock bool
}

// SortFields is the allow-list of exposed sort fields for products.
var SortFields = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

type CreateProductRequest struct {
	Name  string
	Price decimal.Decimal
	Stock *int
}

type ListProductRequest struct {
	option.Pagination
	Filter
	OrderBy string
}

type ListProductResponse struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// RestockedProduct is one row of the restock mutation's result.
type RestockedProduct struct {
	ID    snowflake.ID `json:"id"`
	Name  string       `json:"name"`
	Stock int          `json:"stock"`
}

type RestockResponse struct {
	UpdatedProducts []RestockedProduct `json:"updatedProducts"`
	Message         string             `json:"message"`
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	List(context.Context, ListProductRequest) (ListProductResponse, error)
	RestockLowStock(context.Context) (RestockResponse, error)
}

var (
	ErrNameRequired = errors.New("product_name_required")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidStock = errors.New("invalid_stock")
)
