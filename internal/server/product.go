package server

import (
	"net/http"
	"strings"

	productdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	product, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"product": product}})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		option.Pagination
		Name     string `form:"name"`
		PriceGte string `form:"price_gte"`
		PriceLte string `form:"price_lte"`
		StockGte string `form:"stock_gte"`
		StockLte string `form:"stock_lte"`
		LowStock bool   `form:"low_stock"`
		OrderBy  string `form:"order_by"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	priceGte, err := parseOptionalDecimal(query.PriceGte)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	priceLte, err := parseOptionalDecimal(query.PriceLte)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	stockGte, err := parseOptionalInt(query.StockGte)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	stockLte, err := parseOptionalInt(query.StockLte)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), productdomain.ListProductRequest{
		Pagination: query.Pagination,
		Filter: productdomain.Filter{
			Name:     strings.TrimSpace(query.Name),
			PriceGte: priceGte,
			PriceLte: priceLte,
			StockGte: stockGte,
			StockLte: stockLte,
			LowStock: query.LowStock,
		},
		OrderBy: query.OrderBy,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateLowStockProducts(c *gin.Context) {
	resp, err := s.productSvc.RestockLowStock(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
