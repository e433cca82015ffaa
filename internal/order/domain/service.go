package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Filter narrows an order listing. Customer and product matches join through
// the owning relations; to-many joins are de-duplicated so an order appears
// once no matter how many related rows matched.
type Filter struct {
	TotalGte      *decimal.Decimal
	TotalLte      *decimal.Decimal
	OrderDateFrom *time.Time
	OrderDateTo   *time.Time
	CustomerName  string
	ProductName   string
	ProductID     snowflake.ID
}

// SortFields is the allow-list of exposed sort fields for orders.
var SortFields = map[string]string{
	"order_date":   "o.order_date",
	"total_amount": "o.total_amount",
	"created_at":   "o.created_at",
}

type CreateOrderRequest struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}

type ListOrderRequest struct {
	option.Pagination
	Filter
	OrderBy string
}

type ListOrderResponse struct {
	Orders   []OrderView `json:"orders"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type Service interface {
	Create(context.Context, CreateOrderRequest) (OrderView, error)
	List(context.Context, ListOrderRequest) (ListOrderResponse, error)
}

var (
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrNoProducts       = errors.New("no_products_selected")
)

// ProductsNotFoundError names the product IDs that did not resolve.
type ProductsNotFoundError struct {
	IDs []string
}

func (e *ProductsNotFoundError) Error() string {
	return fmt.Sprintf("Invalid product ID(s): %s", strings.Join(e.IDs, ", "))
}
