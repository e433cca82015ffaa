package repository

import (
	"context"
	"strings"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, name, price, stock, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		product.ID,
		product.Name,
		product.Price,
		product.Stock,
		product.CreatedAt,
	).Error
}

func (r *repo) FindByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []*domain.Product
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) FindLowStock(ctx context.Context, db *gorm.DB) ([]*domain.Product, error) {
	var products []*domain.Product
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("stock < ?", domain.LowStockThreshold).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) UpdateStock(ctx context.Context, db *gorm.DB, id snowflake.ID, stock int) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET stock = ? WHERE id = ?`,
		stock,
		id,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.Filter, order string, page option.Pagination) ([]*domain.Product, error) {
	var products []*domain.Product
	stmt := db.WithContext(ctx).Model(&domain.Product{})
	if filter.Name != "" {
		stmt = stmt.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.PriceGte != nil {
		stmt = stmt.Where("price >= ?", *filter.PriceGte)
	}
	if filter.PriceLte != nil {
		stmt = stmt.Where("price <= ?", *filter.PriceLte)
	}
	if filter.StockGte != nil {
		stmt = stmt.Where("stock >= ?", *filter.StockGte)
	}
	if filter.StockLte != nil {
		stmt = stmt.Where("stock <= ?", *filter.StockLte)
	}
	if filter.LowStock {
		stmt = stmt.Where("stock < ?", domain.LowStockThreshold)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order(order).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
