package service

import (
	"context"
	"strings"
	"time"

	customerdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/order/domain"
	productdomain "github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product/domain"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db/option"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	ProductRepo  productdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	customerRepo customerdomain.Repository
	productRepo  productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("order.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		productRepo:  p.ProductRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderView, error) {
	if len(req.ProductIDs) == 0 {
		return domain.OrderView{}, domain.ErrNoProducts
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.OrderView{}, domain.ErrCustomerNotFound
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.OrderView{}, err
	}
	if customer == nil {
		return domain.OrderView{}, domain.ErrCustomerNotFound
	}

	productIDs, invalid := parseProductIDs(req.ProductIDs)
	if len(invalid) > 0 {
		return domain.OrderView{}, &domain.ProductsNotFoundError{IDs: invalid}
	}

	products, err := s.productRepo.FindByIDs(ctx, s.db, productIDs)
	if err != nil {
		return domain.OrderView{}, err
	}

	found := make(map[snowflake.ID]*productdomain.Product, len(products))
	for _, product := range products {
		found[product.ID] = product
	}

	var missing []string
	for _, id := range productIDs {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return domain.OrderView{}, &domain.ProductsNotFoundError{IDs: missing}
	}

	// The total is always recomputed from current store prices; any
	// caller-supplied amount never reaches this point.
	total := decimal.Zero
	summaries := make([]domain.ProductSummary, 0, len(productIDs))
	for _, id := range productIDs {
		product := found[id]
		total = total.Add(product.Price)
		summaries = append(summaries, domain.ProductSummary{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		})
	}

	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = req.OrderDate.UTC()
	}

	order := domain.Order{
		ID:          s.genID.Generate(),
		CustomerID:  customer.ID,
		OrderDate:   orderDate,
		TotalAmount: total,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Insert(ctx, tx, &order, productIDs)
	})
	if err != nil {
		return domain.OrderView{}, err
	}

	return domain.OrderView{
		ID: order.ID,
		Customer: domain.CustomerSummary{
			ID:    customer.ID,
			Name:  customer.Name,
			Email: customer.Email,
		},
		Products:    summaries,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}, nil
}

func (s *Service) List(ctx context.Context, req domain.ListOrderRequest) (domain.ListOrderResponse, error) {
	order, err := option.SortClause(req.OrderBy, domain.SortFields, "o.order_date desc, o.id desc")
	if err != nil {
		return domain.ListOrderResponse{}, err
	}

	filter := req.Filter
	filter.CustomerName = strings.TrimSpace(filter.CustomerName)
	filter.ProductName = strings.TrimSpace(filter.ProductName)

	items, err := s.repo.List(ctx, s.db, filter, order, req.Pagination)
	if err != nil {
		return domain.ListOrderResponse{}, err
	}

	orders := make([]domain.OrderView, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		orders = append(orders, *item)
	}

	return domain.ListOrderResponse{
		Orders:   orders,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// parseProductIDs parses and de-duplicates the requested product IDs,
// preserving first-seen order. Unparseable IDs are reported as missing.
func parseProductIDs(raw []string) ([]snowflake.ID, []string) {
	ids := make([]snowflake.ID, 0, len(raw))
	seen := make(map[snowflake.ID]struct{}, len(raw))
	var invalid []string
	for _, value := range raw {
		value = strings.TrimSpace(value)
		id, err := snowflake.ParseString(value)
		if err != nil || id == 0 {
			invalid = append(invalid, value)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, invalid
}
