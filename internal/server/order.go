package server

import (
	"net/http"
	"strings"
	"time"

	orderdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/order/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createOrderRequest struct {
	CustomerID string   `json:"customerId"`
	ProductIDs []string `json:"productIds"`
	OrderDate  string   `json:"orderDate"`
	// Accepted but never used: the total is always recomputed server-side
	// from current product prices.
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var orderDate *time.Time
	if strings.TrimSpace(req.OrderDate) != "" {
		parsed, err := parseOptionalTime(req.OrderDate, false)
		if err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
		orderDate = parsed
	}

	order, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateOrderRequest{
		CustomerID: req.CustomerID,
		ProductIDs: req.ProductIDs,
		OrderDate:  orderDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"order": order}})
}

func (s *Server) ListOrders(c *gin.Context) {
	var query struct {
		option.Pagination
		TotalGte      string `form:"total_gte"`
		TotalLte      string `form:"total_lte"`
		OrderDateFrom string `form:"order_date_from"`
		OrderDateTo   string `form:"order_date_to"`
		CustomerName  string `form:"customer_name"`
		ProductName   string `form:"product_name"`
		ProductID     string `form:"product_id"`
		OrderBy       string `form:"order_by"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	totalGte, err := parseOptionalDecimal(query.TotalGte)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	totalLte, err := parseOptionalDecimal(query.TotalLte)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	orderDateFrom, err := parseOptionalTime(query.OrderDateFrom, false)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	orderDateTo, err := parseOptionalTime(query.OrderDateTo, true)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	productID, err := parseOptionalID(query.ProductID)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.List(c.Request.Context(), orderdomain.ListOrderRequest{
		Pagination: query.Pagination,
		Filter: orderdomain.Filter{
			TotalGte:      totalGte,
			TotalLte:      totalLte,
			OrderDateFrom: orderDateFrom,
			OrderDateTo:   orderDateTo,
			CustomerName:  strings.TrimSpace(query.CustomerName),
			ProductName:   strings.TrimSpace(query.ProductName),
			ProductID:     productID,
		},
		OrderBy: query.OrderBy,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
