package option

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidSortField rejects a sort directive naming a field outside the
// entity's allow-list. The whole query aborts; no partial result is returned.
var ErrInvalidSortField = errors.New("invalid_sort_field")

// Pagination carries offset pagination parameters bound from the query string.
type Pagination struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=25" validate:"gte=1,lte=250"` // Min 1, Max 250
}

func (p Pagination) normalized() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 25
	}
	if p.PageSize > 250 {
		p.PageSize = 250
	}
	return p
}

// Option mutates a gorm statement.
type Option interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type paginationOption struct {
	page Pagination
}

// ApplyPagination limits a list statement to the requested page.
func ApplyPagination(page Pagination) Option {
	return paginationOption{page: page.normalized()}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	return stmt.
		Offset((o.page.Page - 1) * o.page.PageSize).
		Limit(o.page.PageSize)
}

// SortClause translates a sort directive ("name" or "-name") into an ORDER BY
// clause, validating the field against the entity's allow-list of exposed
// field names mapped to columns. An empty directive yields the fallback.
func SortClause(directive string, allowed map[string]string, fallback string) (string, error) {
	directive = strings.TrimSpace(directive)
	if directive == "" {
		return fallback, nil
	}

	desc := strings.HasPrefix(directive, "-")
	field := strings.TrimPrefix(directive, "-")

	column, ok := allowed[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidSortField, field)
	}

	if desc {
		return column + " DESC", nil
	}
	return column + " ASC", nil
}
