package domain

import (
	"context"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order, productIDs []snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter Filter, order string, page option.Pagination) ([]*OrderView, error)
}
