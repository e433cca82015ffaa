package domain

import (
	"context"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	EmailExists(ctx context.Context, db *gorm.DB, email string) (bool, error)
	List(ctx context.Context, db *gorm.DB, filter Filter, order string, page option.Pagination) ([]*Customer, error)
}
