package server

import (
	"errors"
	"net/http"

	customerdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/domain"
	orderdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/order/domain"
	productdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware converts errors recorded on the context into a
// single JSON error payload. Raw store errors never reach the wire.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return ErrInvalidRequest
}

func mapError(err error) (int, errorPayload) {
	var notFoundProducts *orderdomain.ProductsNotFoundError
	switch {
	case errors.Is(err, customerdomain.ErrNameRequired),
		errors.Is(err, customerdomain.ErrEmailRequired):
		return http.StatusBadRequest, errorPayload{Type: "missing_field", Message: customerdomain.Message(err)}
	case errors.Is(err, customerdomain.ErrInvalidEmail),
		errors.Is(err, customerdomain.ErrInvalidPhone):
		return http.StatusBadRequest, errorPayload{Type: "invalid_format", Message: customerdomain.Message(err)}
	case errors.Is(err, customerdomain.ErrEmailExists):
		return http.StatusConflict, errorPayload{Type: "duplicate_key", Message: customerdomain.Message(err)}
	case errors.Is(err, productdomain.ErrNameRequired):
		return http.StatusBadRequest, errorPayload{Type: "missing_field", Message: "Product name is required."}
	case errors.Is(err, productdomain.ErrInvalidPrice):
		return http.StatusBadRequest, errorPayload{Type: "invalid_format", Message: "Price must be a positive number."}
	case errors.Is(err, productdomain.ErrInvalidStock):
		return http.StatusBadRequest, errorPayload{Type: "invalid_format", Message: "Stock cannot be negative."}
	case errors.Is(err, orderdomain.ErrNoProducts):
		return http.StatusBadRequest, errorPayload{Type: "empty_selection", Message: "At least one product must be selected."}
	case errors.Is(err, orderdomain.ErrCustomerNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: "Invalid customer ID."}
	case errors.As(err, &notFoundProducts):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: notFoundProducts.Error()}
	case errors.Is(err, option.ErrInvalidSortField):
		return http.StatusBadRequest, errorPayload{Type: "invalid_sort_field", Message: "Invalid sort field."}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: "Invalid request."}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: "Not found."}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "Unexpected error. Please try again."}
	}
}
