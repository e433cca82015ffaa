package repository

import (
	"context"
	"strings"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/order/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order, productIDs []snowflake.ID) error {
	err := db.WithContext(ctx).Exec(
		`INSERT INTO orders (id, customer_id, order_date, total_amount, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		order.ID,
		order.CustomerID,
		order.OrderDate,
		order.TotalAmount,
		order.CreatedAt,
	).Error
	if err != nil {
		return err
	}

	for _, productID := range productIDs {
		err = db.WithContext(ctx).Exec(
			`INSERT INTO order_products (order_id, product_id) VALUES (?, ?)`,
			order.ID,
			productID,
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

type orderRow struct {
	ID            snowflake.ID    `gorm:"column:id"`
	CustomerID    snowflake.ID    `gorm:"column:customer_id"`
	OrderDate     time.Time       `gorm:"column:order_date"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	CustomerName  string          `gorm:"column:customer_name"`
	CustomerEmail string          `gorm:"column:customer_email"`
}

type productRow struct {
	OrderID snowflake.ID    `gorm:"column:order_id"`
	ID      snowflake.ID    `gorm:"column:id"`
	Name    string          `gorm:"column:name"`
	Price   decimal.Decimal `gorm:"column:price"`
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.Filter, order string, page option.Pagination) ([]*domain.OrderView, error) {
	stmt := db.WithContext(ctx).
		Table("orders o").
		Select("DISTINCT o.id, o.customer_id, o.order_date, o.total_amount, o.created_at, c.name AS customer_name, c.email AS customer_email").
		Joins("JOIN customers c ON c.id = o.customer_id")

	// To-many joins only when a product filter is present; DISTINCT keeps an
	// order from appearing once per matched product row.
	if filter.ProductName != "" || filter.ProductID != 0 {
		stmt = stmt.
			Joins("JOIN order_products op ON op.order_id = o.id").
			Joins("JOIN products p ON p.id = op.product_id")
	}

	if filter.TotalGte != nil {
		stmt = stmt.Where("o.total_amount >= ?", *filter.TotalGte)
	}
	if filter.TotalLte != nil {
		stmt = stmt.Where("o.total_amount <= ?", *filter.TotalLte)
	}
	if filter.OrderDateFrom != nil {
		stmt = stmt.Where("o.order_date >= ?", *filter.OrderDateFrom)
	}
	if filter.OrderDateTo != nil {
		stmt = stmt.Where("o.order_date <= ?", *filter.OrderDateTo)
	}
	if filter.CustomerName != "" {
		stmt = stmt.Where("LOWER(c.name) LIKE ?", "%"+strings.ToLower(filter.CustomerName)+"%")
	}
	if filter.ProductName != "" {
		stmt = stmt.Where("LOWER(p.name) LIKE ?", "%"+strings.ToLower(filter.ProductName)+"%")
	}
	if filter.ProductID != 0 {
		stmt = stmt.Where("p.id = ?", filter.ProductID)
	}

	stmt = option.ApplyPagination(page).Apply(stmt)

	var rows []orderRow
	if err := stmt.Order(order).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	orderIDs := make([]snowflake.ID, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	var productRows []productRow
	err := db.WithContext(ctx).Raw(
		`SELECT op.order_id, p.id, p.name, p.price
		 FROM order_products op
		 JOIN products p ON p.id = op.product_id
		 WHERE op.order_id IN ?
		 ORDER BY op.order_id, p.id`,
		orderIDs,
	).Scan(&productRows).Error
	if err != nil {
		return nil, err
	}

	productsByOrder := make(map[snowflake.ID][]domain.ProductSummary, len(rows))
	for _, row := range productRows {
		productsByOrder[row.OrderID] = append(productsByOrder[row.OrderID], domain.ProductSummary{
			ID:    row.ID,
			Name:  row.Name,
			Price: row.Price,
		})
	}

	views := make([]*domain.OrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &domain.OrderView{
			ID: row.ID,
			Customer: domain.CustomerSummary{
				ID:    row.CustomerID,
				Name:  row.CustomerName,
				Email: row.CustomerEmail,
			},
			Products:    productsByOrder[row.ID],
			OrderDate:   row.OrderDate,
			TotalAmount: row.TotalAmount,
			CreatedAt:   row.CreatedAt,
		})
	}

	return views, nil
}
