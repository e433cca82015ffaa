package domain

import (
	"context"
	"errors"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
)

// Filter narrows a customer listing. Absent fields impose no constraint;
// string matches are case-insensitive substring matches and the phone
// pattern is a prefix match (e.g. "+1").
type Filter struct {
	Name         string
	Email        string
	PhonePattern string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// SortFields is the allow-list of exposed sort fields for customers.
var SortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

type CreateCustomerRequest struct {
	Name  string
	Email string
	Phone string
}

type CreateCustomerResponse struct {
	Customer Customer `json:"customer"`
	Message  string   `json:"message"`
}

// BulkError describes one failed row of a bulk create, tagged with the
// 0-based input index so callers can correlate back to input position. The
// single boundary error for an empty input list carries index -1.
type BulkError struct {
	Index   int    `json:"index"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

type BulkCreateResponse struct {
	CreatedCustomers []Customer  `json:"createdCustomers"`
	Errors           []BulkError `json:"errors"`
	Message          string      `json:"message"`
}

type ListCustomerRequest struct {
	option.Pagination
	Filter
	OrderBy string
}

type ListCustomerResponse struct {
	Customers []Customer `json:"customers"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (CreateCustomerResponse, error)
	BulkCreate(context.Context, []CreateCustomerRequest) (BulkCreateResponse, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
}

var (
	ErrNameRequired  = errors.New("name_required")
	ErrEmailRequired = errors.New("email_required")
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrInvalidPhone  = errors.New("invalid_phone")
	ErrEmailExists   = errors.New("email_exists")
)

// Message returns the user-facing message for a customer validation error.
// These strings are part of the external contract and must not drift.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNameRequired):
		return "Name is required."
	case errors.Is(err, ErrEmailRequired):
		return "Email is required."
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email format."
	case errors.Is(err, ErrInvalidPhone):
		return "Invalid phone format. Use +1234567890 or 123-456-7890."
	case errors.Is(err, ErrEmailExists):
		return "Email already exists."
	default:
		return "Unexpected error."
	}
}
