package server

import (
	"net/http"
	"strings"

	customerdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/gin-gonic/gin"
)

type createCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type bulkCreateCustomersRequest struct {
	Customers []createCustomerRequest `json:"customers"`
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Create(c.Request.Context(), customerdomain.CreateCustomerRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) BulkCreateCustomers(c *gin.Context) {
	var req bulkCreateCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	input := make([]customerdomain.CreateCustomerRequest, 0, len(req.Customers))
	for _, in := range req.Customers {
		input = append(input, customerdomain.CreateCustomerRequest{
			Name:  in.Name,
			Email: in.Email,
			Phone: in.Phone,
		})
	}

	// Row failures are reported in the body, not as a call-level error; the
	// call itself succeeds even when every row fails.
	resp, err := s.customerSvc.BulkCreate(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
	var query struct {
		option.Pagination
		Name         string `form:"name"`
		Email        string `form:"email"`
		PhonePattern string `form:"phone_pattern"`
		CreatedFrom  string `form:"created_from"`
		CreatedTo    string `form:"created_to"`
		OrderBy      string `form:"order_by"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	createdFrom, err := parseOptionalTime(query.CreatedFrom, false)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	createdTo, err := parseOptionalTime(query.CreatedTo, true)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomerRequest{
		Pagination: query.Pagination,
		Filter: customerdomain.Filter{
			Name:         strings.TrimSpace(query.Name),
			Email:        strings.TrimSpace(query.Email),
			PhonePattern: strings.TrimSpace(query.PhonePattern),
			CreatedFrom:  createdFrom,
			CreatedTo:    createdTo,
		},
		OrderBy: query.OrderBy,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
