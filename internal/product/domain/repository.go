package domain

import (
	"context"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]*Product, error)
	FindLowStock(ctx context.Context, db *gorm.DB) ([]*Product, error)
	UpdateStock(ctx context.Context, db *gorm.DB, id snowflake.ID, stock int) error
	List(ctx context.Context, db *gorm.DB, filter Filter, order string, page option.Pagination) ([]*Product, error)
}
